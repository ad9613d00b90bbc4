package analysis

import "sort"

// DefaultProblemThreshold is the vegetation index below which a zone counts
// as a problem zone.
const DefaultProblemThreshold = 0.3

// ProblemZone is one underperforming zone, worst first in a ranked list.
type ProblemZone struct {
	Zone     string  `bson:"zone"     json:"zone"`
	Value    float64 `bson:"value"    json:"value"`
	Severity string  `bson:"severity" json:"severity"` // "critical" below 0.1, "moderate" otherwise
}

// RankProblemZones returns the zones whose value falls below threshold,
// sorted ascending by value so the worst zone comes first. An empty
// snapshot yields an empty list.
func RankProblemZones(snapshot Snapshot, threshold float64) []ProblemZone {
	var out []ProblemZone
	for _, id := range GridZones() {
		value, ok := snapshot[id]
		if !ok || value >= threshold {
			continue
		}
		severity := "moderate"
		if value < 0.1 {
			severity = "critical"
		}
		out = append(out, ProblemZone{Zone: id.Key(), Value: value, Severity: severity})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
