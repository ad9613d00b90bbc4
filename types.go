package main

import "encoding/json"

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

type createFieldReq struct {
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry"`            // GeoJSON Polygon/MultiPolygon
	AreaHa   *float64        `json:"areaHa,omitempty"`    // stored under meta.areaHa
	Notes    string          `json:"notes,omitempty"`
	Crop     string          `json:"crop,omitempty"`
	Photo    string          `json:"photo,omitempty"`

	// Optional; derived from the geometry bounding box when absent.
	CenterLat *float64 `json:"centerLat,omitempty"`
	CenterLng *float64 `json:"centerLng,omitempty"`
}

// Payload we send to the zone statistics processor.
type zoneIndicesReq struct {
	Geometry map[string]any `json:"geometry"` // GeoJSON Polygon/MultiPolygon
	Index    string         `json:"index"`    // vegetation index, e.g. "ndvi"
}

// Response from the zone statistics processor: mean index value per grid
// cell, keyed "zone_<row>_<col>". Cells without usable pixels are omitted.
type zoneIndicesResp struct {
	Zones map[string]float64 `json:"zones"`
}
