package analysis

import "github.com/montanaflynn/stats"

// FieldSummary aggregates one snapshot for the dashboard: central tendency
// and spread of the zone values, a uniformity score, and zone counts per
// health category.
type FieldSummary struct {
	MeanNDVI   float64 `bson:"meanNdvi"   json:"mean_ndvi"`
	MedianNDVI float64 `bson:"medianNdvi" json:"median_ndvi"`
	StdDevNDVI float64 `bson:"stdDevNdvi" json:"std_dev_ndvi"`
	MinNDVI    float64 `bson:"minNdvi"    json:"min_ndvi"`
	MaxNDVI    float64 `bson:"maxNdvi"    json:"max_ndvi"`

	// Uniformity is 0-100; lower spread across zones scores higher.
	Uniformity float64 `bson:"uniformity" json:"uniformity"`

	OverallHealth HealthCategory         `bson:"overallHealth" json:"overall_health"`
	HealthyZones  int                    `bson:"healthyZones"  json:"healthy_zones"`
	StressedZones int                    `bson:"stressedZones" json:"stressed_zones"`
	TotalZones    int                    `bson:"totalZones"    json:"total_zones"`
	Distribution  map[HealthCategory]int `bson:"distribution"  json:"distribution"`
}

// Summarize computes field-level statistics over the zones present in the
// snapshot. An empty snapshot yields a zeroed summary classified stressed,
// consistent with Classify(0).
func Summarize(snapshot Snapshot) FieldSummary {
	summary := FieldSummary{
		TotalZones:    len(snapshot),
		OverallHealth: HealthStressed,
		Distribution:  make(map[HealthCategory]int),
	}
	values := snapshot.Values()
	if len(values) == 0 {
		return summary
	}

	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	stdDev, _ := stats.StandardDeviationPopulation(values)
	minVal, _ := stats.Min(values)
	maxVal, _ := stats.Max(values)

	summary.MeanNDVI = round3(mean)
	summary.MedianNDVI = round3(median)
	summary.StdDevNDVI = round3(stdDev)
	summary.MinNDVI = round3(minVal)
	summary.MaxNDVI = round3(maxVal)
	summary.OverallHealth = Classify(mean)

	uniformity := 100 - stdDev*200
	if uniformity < 0 {
		uniformity = 0
	}
	summary.Uniformity = round1(uniformity)

	for _, value := range values {
		summary.Distribution[Classify(value)]++
		if value > 0.5 {
			summary.HealthyZones++
		}
		if value < 0.3 {
			summary.StressedZones++
		}
	}
	return summary
}

func round3(v float64) float64 {
	out, _ := stats.Round(v, 3)
	return out
}

func round1(v float64) float64 {
	out, _ := stats.Round(v, 1)
	return out
}
