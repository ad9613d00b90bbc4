package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field — field card with polygon geometry and farmer-provided metadata.
// Analysis runs are NOT stored here; they live in the "analyses" collection
// (see models/analysis.go) keyed by field id and timestamp.
type Field struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID  primitive.ObjectID `bson:"ownerId"       json:"ownerId"`
	Name     string             `bson:"name"          json:"name"`
	Geometry map[string]any     `bson:"geometry"      json:"geometry"` // GeoJSON Polygon/MultiPolygon

	// Centroid of the polygon bounding box; the weather collaborator is
	// queried at this point.
	CenterLat float64 `bson:"centerLat" json:"centerLat"`
	CenterLng float64 `bson:"centerLng" json:"centerLng"`

	CreatedAt      time.Time  `bson:"createdAt"                json:"createdAt"`
	LastAnalyzedAt *time.Time `bson:"lastAnalyzedAt,omitempty" json:"lastAnalyzedAt,omitempty"`

	// Visual
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"` // URL to field avatar/photo

	// Farmer-facing metadata
	Meta *FieldMeta `bson:"meta,omitempty" json:"meta,omitempty"`
}

type FieldMeta struct {
	AreaHa *float64 `bson:"areaHa,omitempty" json:"areaHa,omitempty"` // area in hectares
	Notes  string   `bson:"notes,omitempty"  json:"notes,omitempty"`
	Crop   string   `bson:"crop,omitempty"   json:"crop,omitempty"` // crop type - grapevine | corn | wheat | etc.
}
