package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fieldvision/analysis"
)

// WeatherClient fetches current conditions from the OpenWeather current
// weather endpoint and maps them to the analysis package's observation
// shape. A failed call is not fatal to an analysis run: the orchestrator
// proceeds without weather and the report simply carries no irrigation
// record.
type WeatherClient struct {
	base   string
	apiKey string
	client *http.Client
}

func NewWeatherClient(base, apiKey string) *WeatherClient {
	if base == "" {
		base = "https://api.openweathermap.org"
	}
	return &WeatherClient{
		base:   strings.TrimRight(base, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type owmCurrentResp struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current returns the observation at (lat, lng) in metric units.
func (c *WeatherClient) Current(ctx context.Context, lat, lng float64) (*analysis.WeatherObservation, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key not configured")
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("weather", "error").Inc()
		return nil, fmt.Errorf("weather request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamRequests.WithLabelValues("weather", "error").Inc()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("weather status %d: %s", resp.StatusCode, string(b))
	}

	var out owmCurrentResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		upstreamRequests.WithLabelValues("weather", "error").Inc()
		return nil, fmt.Errorf("decode weather resp: %w", err)
	}
	upstreamRequests.WithLabelValues("weather", "ok").Inc()

	obs := &analysis.WeatherObservation{
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		WindSpeed:   out.Wind.Speed,
	}
	if len(out.Weather) > 0 {
		obs.Description = out.Weather[0].Description
	}
	// OpenWeather omits the rain block entirely in dry conditions; that is
	// an observed 0mm, not missing data.
	rainfall := 0.0
	if out.Rain != nil && out.Rain.OneHour != nil {
		rainfall = *out.Rain.OneHour
	}
	obs.Rainfall = &rainfall

	return obs, nil
}
