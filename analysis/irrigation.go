package analysis

// WeatherObservation carries the current conditions relevant to an analysis
// run. Pointer fields distinguish "not reported" from an observed zero; a
// nil field simply skips its aggravating-factor check in EstimatePriority.
type WeatherObservation struct {
	Temperature *float64 `bson:"temperature,omitempty" json:"temperature,omitempty"` // °C
	Humidity    *float64 `bson:"humidity,omitempty"    json:"humidity,omitempty"`    // %
	Rainfall    *float64 `bson:"rainfall,omitempty"    json:"rainfall,omitempty"`    // mm, recent accumulation
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	WindSpeed   *float64 `bson:"windSpeed,omitempty"   json:"wind_speed,omitempty"` // m/s
}

// IrrigationPriority is the watering urgency derived from vegetation health
// and weather. It is recomputed on every run, never stored as its own state.
type IrrigationPriority string

const (
	PriorityLow    IrrigationPriority = "low"
	PriorityMedium IrrigationPriority = "medium"
	PriorityHigh   IrrigationPriority = "high"
)

// EstimatePriority scores irrigation urgency from the field-wide average
// vegetation index and current weather. Vegetation stress is the dominant
// signal; a dry spell (< 2mm recent rainfall) and low humidity (< 40%) only
// aggravate it, so healthy vegetation never triggers on weather alone.
func EstimatePriority(averageIndex float64, weather WeatherObservation) IrrigationPriority {
	score := 1
	switch {
	case averageIndex < 0.3:
		score = 3
	case averageIndex < 0.5:
		score = 2
	}
	if weather.Rainfall != nil && *weather.Rainfall < 2 {
		score += 2
	}
	if weather.Humidity != nil && *weather.Humidity < 40 {
		score++
	}
	switch {
	case score >= 5:
		return PriorityHigh
	case score >= 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
