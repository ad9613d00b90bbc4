package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testGeometry() map[string]any {
	return map[string]any{
		"type": "Polygon",
		"coordinates": []any{[]any{
			[]any{11.30, 44.50}, []any{11.31, 44.50},
			[]any{11.31, 44.51}, []any{11.30, 44.51},
			[]any{11.30, 44.50},
		}},
	}
}

func TestImageryClientFetchZoneIndices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/zones" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req zoneIndicesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Index != "ndvi" {
			t.Errorf("index = %q, want ndvi", req.Index)
		}
		if req.Geometry["type"] != "Polygon" {
			t.Errorf("geometry type = %v", req.Geometry["type"])
		}
		json.NewEncoder(w).Encode(zoneIndicesResp{Zones: map[string]float64{
			"zone_0_0": 0.71,
			"zone_1_1": 0.31,
			"zone_2_2": 0.05,
		}})
	}))
	defer srv.Close()

	c := NewImageryClient(srv.URL)
	zones, err := c.FetchZoneIndices(context.Background(), testGeometry())
	if err != nil {
		t.Fatalf("FetchZoneIndices() error: %v", err)
	}
	if len(zones) != 3 {
		t.Fatalf("got %d zones, want 3", len(zones))
	}
	if zones["zone_2_2"] != 0.05 {
		t.Errorf("zone_2_2 = %v, want 0.05", zones["zone_2_2"])
	}
}

func TestImageryClientRetriesThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(zoneIndicesResp{Zones: map[string]float64{"zone_0_0": 0.5}})
	}))
	defer srv.Close()

	c := NewImageryClient(srv.URL)
	zones, err := c.FetchZoneIndices(context.Background(), testGeometry())
	if err != nil {
		t.Fatalf("FetchZoneIndices() error: %v", err)
	}
	if calls < 2 {
		t.Errorf("expected a retry, server saw %d call(s)", calls)
	}
	if zones["zone_0_0"] != 0.5 {
		t.Errorf("zone_0_0 = %v, want 0.5", zones["zone_0_0"])
	}
}

func TestImageryClientUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "processor down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := NewImageryClient(srv.URL)
	if _, err := c.FetchZoneIndices(ctx, testGeometry()); err == nil {
		t.Fatal("expected error when processor keeps failing")
	}
}

func TestImageryClientEmptyGeometry(t *testing.T) {
	c := NewImageryClient("http://example.invalid")
	if _, err := c.FetchZoneIndices(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty geometry")
	}
}
