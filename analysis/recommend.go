package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Severity tags a recommendation for the report UI. The rank drives the
// "most urgent first" ordering of the final list.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
	SeveritySuccess:  3,
}

// GeneralScope marks a recommendation that applies to the whole field
// rather than a single zone.
const GeneralScope = "general"

// Recommendation is one actionable item surfaced to the farmer.
type Recommendation struct {
	Zone     string   `bson:"zone"              json:"zone"` // zone key or GeneralScope
	Severity Severity `bson:"severity"          json:"severity"`
	Message  string   `bson:"message"           json:"message"`
	Actions  []string `bson:"actions,omitempty" json:"actions,omitempty"`
}

var categoryActions = map[HealthCategory][]string{
	HealthStressed: {
		"Inspect for pest/disease",
		"Check irrigation system",
		"Consider soil test",
	},
	HealthModerate: {
		"Monitor over next 7 days",
		"Evaluate nutrient levels",
	},
}

var irrigationActions = map[IrrigationPriority][]string{
	PriorityHigh: {
		"Begin deep irrigation immediately",
		"Apply 25-30mm water per session",
		"Monitor soil moisture daily",
	},
	PriorityMedium: {
		"Increase irrigation frequency by 20-30%",
		"Monitor soil moisture daily",
	},
}

// Recommend produces the ordered recommendation list for one analysis run.
// Zones are visited in row-major order; the result is stable-sorted by
// severity, so identical inputs always yield an identical list. A nil
// weather observation drops the field-wide irrigation record and nothing
// else: the engine degrades to fewer records, it never fails.
func Recommend(snapshot Snapshot, weather *WeatherObservation) []Recommendation {
	var recs []Recommendation
	var healthy []ZoneID

	for _, id := range GridZones() {
		value, ok := snapshot[id]
		if !ok {
			continue
		}
		switch category := Classify(value); category {
		case HealthStressed:
			recs = append(recs, zoneRecommendation(id, value, category, SeverityCritical))
		case HealthModerate:
			recs = append(recs, zoneRecommendation(id, value, category, SeverityWarning))
		default:
			// Good and excellent zones are folded into one summary record
			// below so the list stays scannable.
			healthy = append(healthy, id)
		}
	}

	if weather != nil {
		switch priority := EstimatePriority(snapshot.Average(), *weather); priority {
		case PriorityHigh:
			recs = append(recs, irrigationRecommendation(priority, SeverityCritical))
		case PriorityMedium:
			recs = append(recs, irrigationRecommendation(priority, SeverityWarning))
		}
	}

	// The healthy summary only rides along with actionable records; an
	// all-healthy field with nothing else to say yields an empty list.
	if len(recs) > 0 && len(healthy) > 0 {
		recs = append(recs, healthySummary(healthy))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return severityRank[recs[i].Severity] < severityRank[recs[j].Severity]
	})
	return recs
}

func zoneRecommendation(id ZoneID, value float64, category HealthCategory, severity Severity) Recommendation {
	return Recommendation{
		Zone:     id.Key(),
		Severity: severity,
		Message:  fmt.Sprintf("%s zone (%s): NDVI %.2f indicates %s vegetation", id.Name(), id.Key(), value, category),
		Actions:  categoryActions[category],
	}
}

func irrigationRecommendation(priority IrrigationPriority, severity Severity) Recommendation {
	return Recommendation{
		Zone:     GeneralScope,
		Severity: severity,
		Message:  fmt.Sprintf("Field-wide irrigation priority is %s based on vegetation levels and current weather", priority),
		Actions:  irrigationActions[priority],
	}
}

func healthySummary(healthy []ZoneID) Recommendation {
	names := make([]string, len(healthy))
	for i, id := range healthy {
		names[i] = id.Name()
	}
	zone := GeneralScope
	label := "Zones"
	if len(healthy) == 1 {
		zone = healthy[0].Key()
		label = "Zone"
	}
	return Recommendation{
		Zone:     zone,
		Severity: SeveritySuccess,
		Message:  fmt.Sprintf("%s %s: Healthy ✓", label, strings.Join(names, ", ")),
	}
}
