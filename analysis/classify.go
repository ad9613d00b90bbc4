package analysis

// HealthCategory is the discrete vegetation health classification, ordered
// low to high: stressed < moderate < good < excellent.
type HealthCategory string

const (
	HealthStressed  HealthCategory = "stressed"
	HealthModerate  HealthCategory = "moderate"
	HealthGood      HealthCategory = "good"
	HealthExcellent HealthCategory = "excellent"
)

// Classify maps a vegetation index value to a health category. The
// thresholds are fixed; report text and zone badge colors depend on them.
// Exactly 0.3 classifies as stressed. Out-of-range values fall through the
// same rules as any other value, so no bounds check is needed.
func Classify(value float64) HealthCategory {
	switch {
	case value > 0.6:
		return HealthExcellent
	case value > 0.4:
		return HealthGood
	case value > 0.3:
		return HealthModerate
	default:
		return HealthStressed
	}
}

// ClassifyAll classifies every zone present in the snapshot.
func ClassifyAll(snapshot Snapshot) map[ZoneID]HealthCategory {
	out := make(map[ZoneID]HealthCategory, len(snapshot))
	for id, value := range snapshot {
		out[id] = Classify(value)
	}
	return out
}
