package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fieldvision/analysis"
	"fieldvision/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// handleAnalyzeField runs a full analysis for one field: fetch the zone
// vegetation snapshot from the imagery processor, fetch current weather,
// run the analysis core, persist the result.
func (a *App) handleAnalyzeField(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var field models.Field
	if err := a.fields.FindOne(ctx, bson.M{"_id": oid, "ownerId": uid}).Decode(&field); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	doc, err := a.analyzeAndStore(ctx, field)
	if err != nil {
		http.Error(w, "imagery unavailable", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(doc)
}

// analyzeAndStore is the shared pipeline behind the analyze endpoint and the
// background monitor. Imagery failure aborts the run; weather failure only
// degrades it, the stored analysis simply carries no irrigation record.
func (a *App) analyzeAndStore(ctx context.Context, field models.Field) (models.Analysis, error) {
	started := time.Now()

	raw, err := a.imagery.FetchZoneIndices(ctx, field.Geometry)
	if err != nil {
		analysesTotal.WithLabelValues("imagery_error").Inc()
		return models.Analysis{}, err
	}
	snapshot := analysis.ParseSnapshot(raw)

	weather, err := a.weather.Current(ctx, field.CenterLat, field.CenterLng)
	if err != nil {
		log.Printf("weather unavailable for field %s: %v", field.ID.Hex(), err)
		weather = nil
	}

	doc := buildAnalysis(field, snapshot, weather)

	res, err := a.analyses.InsertOne(ctx, &doc)
	if err != nil {
		analysesTotal.WithLabelValues("db_error").Inc()
		return models.Analysis{}, err
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)

	now := time.Now().UTC()
	if _, err := a.fields.UpdateOne(ctx,
		bson.M{"_id": field.ID},
		bson.M{"$set": bson.M{"lastAnalyzedAt": now}},
	); err != nil {
		log.Printf("update lastAnalyzedAt for field %s: %v", field.ID.Hex(), err)
	}

	analysesTotal.WithLabelValues("ok").Inc()
	analysisDuration.Observe(time.Since(started).Seconds())
	for _, rec := range doc.Recommendations {
		recommendationsTotal.WithLabelValues(string(rec.Severity)).Inc()
	}
	return doc, nil
}

// buildAnalysis runs the pure analysis core over one snapshot + observation.
func buildAnalysis(field models.Field, snapshot analysis.Snapshot, weather *analysis.WeatherObservation) models.Analysis {
	health := make(map[string]analysis.HealthCategory, len(snapshot))
	for id, category := range analysis.ClassifyAll(snapshot) {
		health[id.Key()] = category
	}

	doc := models.Analysis{
		FieldID:         field.ID,
		OwnerID:         field.OwnerID,
		CreatedAt:       time.Now().UTC(),
		Zones:           snapshot.StringMap(),
		Health:          health,
		Recommendations: analysis.Recommend(snapshot, weather),
		Summary:         analysis.Summarize(snapshot),
		Weather:         weather,
	}
	if weather != nil {
		doc.Irrigation = analysis.EstimatePriority(snapshot.Average(), *weather)
	}
	return doc
}

// handleListAnalyses returns a field's analysis history, newest first.
func (a *App) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	cur, err := a.analyses.Find(ctx,
		bson.M{"fieldId": oid, "ownerId": uid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var out []models.Analysis
	if err := cur.All(ctx, &out); err != nil {
		http.Error(w, "decode error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleLatestAnalysis returns the most recent analysis for a field.
func (a *App) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := a.latestAnalysis(ctx, oid, uid)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(doc)
}

// handleProblemZones ranks the underperforming zones of the latest analysis.
// Optional ?threshold= overrides the default cutoff.
func (a *App) handleProblemZones(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	threshold := analysis.DefaultProblemThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "bad threshold", http.StatusBadRequest)
			return
		}
		threshold = t
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc, err := a.latestAnalysis(ctx, oid, uid)
	if err != nil {
		http.Error(w, "no analyses for field", http.StatusNotFound)
		return
	}

	snapshot := analysis.ParseSnapshot(doc.Zones)
	out := analysis.RankProblemZones(snapshot, threshold)
	if out == nil {
		out = []analysis.ProblemZone{}
	}
	_ = json.NewEncoder(w).Encode(bson.M{
		"analysisId": doc.ID,
		"threshold":  threshold,
		"zones":      out,
	})
}

func (a *App) latestAnalysis(ctx context.Context, fieldID, ownerID primitive.ObjectID) (models.Analysis, error) {
	var doc models.Analysis
	err := a.analyses.FindOne(ctx,
		bson.M{"fieldId": fieldID, "ownerId": ownerID},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&doc)
	return doc, err
}
