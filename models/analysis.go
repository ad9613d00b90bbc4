package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fieldvision/analysis"
)

// Analysis is one immutable analysis run for a field. Everything in it is
// recomputed from the snapshot and weather captured at CreatedAt; nothing is
// hand-edited after insertion.
type Analysis struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FieldID   primitive.ObjectID `bson:"fieldId"       json:"fieldId"`
	OwnerID   primitive.ObjectID `bson:"ownerId"       json:"ownerId"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`

	// Zones holds the vegetation index snapshot keyed "zone_<row>_<col>".
	Zones map[string]float64 `bson:"zones" json:"zones"`

	// Health is derived from Zones by the classifier; stored for the report
	// pages but always reproducible from the snapshot.
	Health map[string]analysis.HealthCategory `bson:"health" json:"health"`

	// Recommendations keep their order: most urgent first.
	Recommendations []analysis.Recommendation `bson:"recommendations" json:"recommendations"`

	Summary analysis.FieldSummary `bson:"summary" json:"summary"`

	// Irrigation is empty when no weather observation was available.
	Irrigation analysis.IrrigationPriority `bson:"irrigation,omitempty" json:"irrigation,omitempty"`

	// Weather is the observation the run was computed against, nil when the
	// weather collaborator was unreachable.
	Weather *analysis.WeatherObservation `bson:"weather,omitempty" json:"weather,omitempty"`
}
