package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// ImageryClient talks to the zone statistics processor: the upstream service
// that reduces satellite imagery over a field polygon into one mean
// vegetation index value per grid cell. Calls are retried with exponential
// backoff and guarded by a circuit breaker so a flapping processor does not
// pile up analyze requests.
type ImageryClient struct {
	base    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewImageryClient(base string) *ImageryClient {
	if base == "" || base == "local" {
		base = "http://127.0.0.1:8000"
	}
	return &ImageryClient{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 25 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "imagery",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// FetchZoneIndices calls POST {base}/zones with the field geometry and
// returns the per-zone vegetation index mapping. Missing zones are valid:
// the processor omits cells without usable pixels (clouds, no coverage).
func (c *ImageryClient) FetchZoneIndices(ctx context.Context, geometry map[string]any) (map[string]float64, error) {
	if len(geometry) == 0 {
		return nil, fmt.Errorf("empty geometry")
	}
	body, err := json.Marshal(zoneIndicesReq{Geometry: geometry, Index: "ndvi"})
	if err != nil {
		return nil, fmt.Errorf("marshal imagery req: %w", err)
	}

	var zones map[string]float64
	operation := func() error {
		out, err := c.breaker.Execute(func() (interface{}, error) {
			return c.postZones(ctx, body)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(err)
			}
			return err
		}
		zones = out.(map[string]float64)
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		upstreamRequests.WithLabelValues("imagery", "error").Inc()
		return nil, fmt.Errorf("imagery call failed: %w", err)
	}
	upstreamRequests.WithLabelValues("imagery", "ok").Inc()
	return zones, nil
}

func (c *ImageryClient) postZones(ctx context.Context, body []byte) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/zones", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagery request error: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("imagery non-2xx: %s, body: %s", resp.Status, string(data))
	}

	var out zoneIndicesResp
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode imagery resp: %w", err)
	}
	if out.Zones == nil {
		return nil, fmt.Errorf("imagery resp has no zones")
	}
	return out.Zones, nil
}
