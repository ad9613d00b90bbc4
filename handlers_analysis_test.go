package main

import (
	"testing"

	"fieldvision/analysis"
	"fieldvision/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildAnalysis(t *testing.T) {
	field := models.Field{
		ID:      primitive.NewObjectID(),
		OwnerID: primitive.NewObjectID(),
		Name:    "north plot",
	}
	snapshot := analysis.ParseSnapshot(map[string]float64{
		"zone_0_0": 0.71,
		"zone_1_1": 0.31,
		"zone_2_2": 0.05,
	})
	rain, humidity := 0.0, 30.0
	weather := &analysis.WeatherObservation{Rainfall: &rain, Humidity: &humidity}

	doc := buildAnalysis(field, snapshot, weather)

	if doc.FieldID != field.ID || doc.OwnerID != field.OwnerID {
		t.Error("analysis must carry the field and owner ids")
	}
	if doc.Health["zone_0_0"] != analysis.HealthExcellent {
		t.Errorf("zone_0_0 health = %s, want excellent", doc.Health["zone_0_0"])
	}
	if doc.Health["zone_2_2"] != analysis.HealthStressed {
		t.Errorf("zone_2_2 health = %s, want stressed", doc.Health["zone_2_2"])
	}
	if doc.Irrigation != analysis.PriorityHigh {
		t.Errorf("irrigation = %s, want high", doc.Irrigation)
	}
	if len(doc.Recommendations) == 0 {
		t.Fatal("expected recommendations for a field with a stressed zone")
	}
	if doc.Recommendations[0].Severity != analysis.SeverityCritical {
		t.Errorf("first record severity = %s, want critical", doc.Recommendations[0].Severity)
	}
	if doc.Summary.TotalZones != 3 {
		t.Errorf("summary total zones = %d, want 3", doc.Summary.TotalZones)
	}
}

func TestBuildAnalysisWithoutWeather(t *testing.T) {
	snapshot := analysis.ParseSnapshot(map[string]float64{"zone_0_0": 0.2})

	doc := buildAnalysis(models.Field{}, snapshot, nil)

	if doc.Irrigation != "" {
		t.Errorf("irrigation should be empty without weather, got %s", doc.Irrigation)
	}
	if doc.Weather != nil {
		t.Error("weather should stay nil when the observation is missing")
	}
	for _, rec := range doc.Recommendations {
		if rec.Zone == analysis.GeneralScope {
			t.Errorf("no irrigation record expected without weather, got %q", rec.Message)
		}
	}
}
