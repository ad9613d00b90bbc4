package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.71,
		"zone_1_1": 0.31,
		"zone_2_2": 0.05,
	})

	got := Summarize(snapshot)

	assert.Equal(t, 3, got.TotalZones)
	assert.InDelta(t, 0.357, got.MeanNDVI, 1e-9)
	assert.InDelta(t, 0.31, got.MedianNDVI, 1e-9)
	assert.InDelta(t, 0.271, got.StdDevNDVI, 0.001)
	assert.InDelta(t, 0.05, got.MinNDVI, 1e-9)
	assert.InDelta(t, 0.71, got.MaxNDVI, 1e-9)
	assert.Equal(t, HealthModerate, got.OverallHealth)
	assert.Equal(t, 1, got.HealthyZones)
	assert.Equal(t, 1, got.StressedZones)
	assert.Equal(t, map[HealthCategory]int{
		HealthExcellent: 1,
		HealthModerate:  1,
		HealthStressed:  1,
	}, got.Distribution)
}

func TestSummarizeUniformField(t *testing.T) {
	snapshot := ParseSnapshot(map[string]float64{
		"zone_0_0": 0.55,
		"zone_0_1": 0.55,
		"zone_0_2": 0.55,
	})

	got := Summarize(snapshot)
	assert.InDelta(t, 100.0, got.Uniformity, 1e-9)
	assert.Equal(t, HealthGood, got.OverallHealth)
	assert.Equal(t, 3, got.HealthyZones)
	assert.Equal(t, 0, got.StressedZones)
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	got := Summarize(Snapshot{})
	assert.Equal(t, 0, got.TotalZones)
	assert.Equal(t, HealthStressed, got.OverallHealth)
	assert.Zero(t, got.MeanNDVI)
	assert.Empty(t, got.Distribution)
}
