package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendMixedField(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.71,
		"zone_1_1": 0.31,
		"zone_2_2": 0.05,
	})
	weather := &WeatherObservation{Rainfall: fptr(0), Humidity: fptr(35)}

	recs := Recommend(snapshot, weather)
	require.Len(t, recs, 4)

	// Worst zone first, then the field-wide irrigation record (average
	// ~0.357 with a dry, arid week scores high priority), then the moderate
	// zone, then the healthy summary.
	assert.Equal(t, "zone_2_2", recs[0].Zone)
	assert.Equal(t, SeverityCritical, recs[0].Severity)
	assert.Contains(t, recs[0].Actions, "Check irrigation system")
	assert.Contains(t, recs[0].Actions, "Inspect for pest/disease")

	assert.Equal(t, GeneralScope, recs[1].Zone)
	assert.Equal(t, SeverityCritical, recs[1].Severity)
	assert.Contains(t, recs[1].Actions, "Begin deep irrigation immediately")

	assert.Equal(t, "zone_1_1", recs[2].Zone)
	assert.Equal(t, SeverityWarning, recs[2].Severity)
	assert.Contains(t, recs[2].Actions, "Monitor over next 7 days")

	assert.Equal(t, "zone_0_0", recs[3].Zone)
	assert.Equal(t, SeveritySuccess, recs[3].Severity)
	assert.Equal(t, "Zone Northwest: Healthy ✓", recs[3].Message)
}

func TestRecommendAllHealthyNoWeather(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{"zone_0_0": 0.65})

	recs := Recommend(snapshot, nil)
	assert.Empty(t, recs)
}

func TestRecommendEmptySnapshot(t *testing.T) {
	t.Run("without weather", func(t *testing.T) {
		assert.Empty(t, Recommend(Snapshot{}, nil))
	})

	t.Run("with dry weather", func(t *testing.T) {
		// Average of an empty snapshot is 0, so a dry observation still
		// yields the single field-wide irrigation record.
		recs := Recommend(Snapshot{}, &WeatherObservation{Rainfall: fptr(0)})
		require.Len(t, recs, 1)
		assert.Equal(t, GeneralScope, recs[0].Zone)
		assert.Equal(t, SeverityCritical, recs[0].Severity)
	})
}

func TestRecommendDeterministic(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.12,
		"zone_0_1": 0.33,
		"zone_1_0": 0.55,
		"zone_1_2": 0.28,
		"zone_2_1": 0.72,
	})
	weather := &WeatherObservation{Rainfall: fptr(1.5), Humidity: fptr(38)}

	first := Recommend(snapshot, weather)
	second := Recommend(snapshot, weather)
	assert.Equal(t, first, second)
}

func TestRecommendSeverityOrdering(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.35, // moderate, emitted before the stressed zones
		"zone_0_1": 0.05,
		"zone_1_1": 0.38,
		"zone_2_0": 0.22,
		"zone_2_2": 0.66,
	})
	weather := &WeatherObservation{Rainfall: fptr(0), Humidity: fptr(30)}

	recs := Recommend(snapshot, weather)
	require.NotEmpty(t, recs)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t,
			severityRank[recs[i-1].Severity], severityRank[recs[i].Severity],
			"record %d (%s) must not outrank record %d (%s)", i, recs[i].Severity, i-1, recs[i-1].Severity)
	}

	// Equal severities keep insertion order: stressed zones stay row-major.
	assert.Equal(t, "zone_0_1", recs[0].Zone)
	assert.Equal(t, "zone_2_0", recs[1].Zone)
}

func TestRecommendHealthySummaryAggregates(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.65,
		"zone_0_1": 0.55,
		"zone_2_2": 0.15,
	})

	recs := Recommend(snapshot, nil)
	require.Len(t, recs, 2)
	assert.Equal(t, SeverityCritical, recs[0].Severity)
	assert.Equal(t, SeveritySuccess, recs[1].Severity)
	assert.Equal(t, GeneralScope, recs[1].Zone)
	assert.Equal(t, "Zones Northwest, North: Healthy ✓", recs[1].Message)
}
