package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"fieldvision/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	errInvalidGeometry = errors.New("invalid geometry json")
	errGeometryType    = errors.New("geometry.type must be Polygon or MultiPolygon")
)

// handleCreateField inserts a new field with basic GeoJSON validation.
func (a *App) handleCreateField(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)

	var req createFieldReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Geometry) == 0 {
		http.Error(w, "name and geometry are required", http.StatusBadRequest)
		return
	}

	geom, err := decodeGeometry(req.Geometry)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := models.Field{
		OwnerID:   uid,
		Name:      req.Name,
		Geometry:  geom,
		CreatedAt: time.Now(),
	}
	if req.CenterLat != nil && req.CenterLng != nil {
		f.CenterLat, f.CenterLng = *req.CenterLat, *req.CenterLng
	} else {
		f.CenterLat, f.CenterLng = geometryCenter(geom)
	}
	if req.AreaHa != nil || req.Notes != "" || req.Crop != "" {
		f.Meta = &models.FieldMeta{AreaHa: req.AreaHa, Notes: req.Notes, Crop: req.Crop}
	}
	if req.Photo != "" {
		f.Photo = req.Photo
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res, err := a.fields.InsertOne(ctx, &f)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	f.ID = res.InsertedID.(primitive.ObjectID)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(f)
}

// handleListFields returns the current user's fields.
func (a *App) handleListFields(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	cur, err := a.fields.Find(ctx, bson.M{"ownerId": uid}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer cur.Close(ctx)

	var out []models.Field
	if err := cur.All(ctx, &out); err != nil {
		http.Error(w, "decode error", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleGetField returns a single field by id (owned by the user).
func (a *App) handleGetField(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var f models.Field
	if err := a.fields.FindOne(ctx, bson.M{"_id": oid, "ownerId": uid}).Decode(&f); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(f)
}

// handleUpdateField updates name/geometry/meta if provided. A geometry
// change moves the weather query point, so the center is recomputed.
func (a *App) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	var req createFieldReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if len(req.Geometry) > 0 {
		geom, err := decodeGeometry(req.Geometry)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		set["geometry"] = geom
		if req.CenterLat != nil && req.CenterLng != nil {
			set["centerLat"], set["centerLng"] = *req.CenterLat, *req.CenterLng
		} else {
			lat, lng := geometryCenter(geom)
			set["centerLat"], set["centerLng"] = lat, lng
		}
	}
	if req.AreaHa != nil {
		set["meta.areaHa"] = req.AreaHa
	}
	if req.Crop != "" {
		set["meta.crop"] = req.Crop
	}
	if req.Notes != "" {
		set["meta.notes"] = req.Notes
	}
	if req.Photo != "" {
		set["photo"] = req.Photo
	}
	if len(set) == 0 {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	res := a.fields.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "ownerId": uid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var out models.Field
	if err := res.Decode(&out); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleDeleteField removes a field and its analysis history.
func (a *App) handleDeleteField(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := a.fields.DeleteOne(ctx, bson.M{"_id": oid, "ownerId": uid})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	_, _ = a.analyses.DeleteMany(ctx, bson.M{"fieldId": oid})
	_ = json.NewEncoder(w).Encode(bson.M{"ok": true})
}

// ---- helpers ----

// decodeGeometry validates the minimal GeoJSON contract (type + coordinates).
func decodeGeometry(raw json.RawMessage) (map[string]any, error) {
	var geom map[string]any
	if err := json.Unmarshal(raw, &geom); err != nil {
		return nil, errInvalidGeometry
	}
	gt, _ := geom["type"].(string)
	if gt != "Polygon" && gt != "MultiPolygon" {
		return nil, errGeometryType
	}
	if _, ok := geom["coordinates"]; !ok {
		return nil, errInvalidGeometry
	}
	return geom, nil
}

// geometryCenter returns the bounding-box center of a GeoJSON polygon as
// (lat, lng). GeoJSON positions are [lng, lat].
func geometryCenter(geom map[string]any) (float64, float64) {
	minLng, minLat := 180.0, 90.0
	maxLng, maxLat := -180.0, -90.0
	found := false

	var walk func(node any)
	walk = func(node any) {
		arr, ok := node.([]any)
		if !ok || len(arr) == 0 {
			return
		}
		// A position is a flat pair of numbers; anything else nests deeper.
		lng, lngOK := arr[0].(float64)
		if lngOK && len(arr) >= 2 {
			if lat, latOK := arr[1].(float64); latOK {
				found = true
				if lng < minLng {
					minLng = lng
				}
				if lng > maxLng {
					maxLng = lng
				}
				if lat < minLat {
					minLat = lat
				}
				if lat > maxLat {
					maxLat = lat
				}
				return
			}
		}
		for _, child := range arr {
			walk(child)
		}
	}
	walk(geom["coordinates"])

	if !found {
		return 0, 0
	}
	return (minLat + maxLat) / 2, (minLng + maxLng) / 2
}
