package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestEstimatePriority(t *testing.T) {
	tests := []struct {
		name    string
		average float64
		weather WeatherObservation
		want    IrrigationPriority
	}{
		{
			name:    "healthy field, wet week",
			average: 0.65,
			weather: WeatherObservation{Rainfall: fptr(12), Humidity: fptr(70)},
			want:    PriorityLow, // 1
		},
		{
			name:    "stressed field, dry and arid",
			average: 0.25,
			weather: WeatherObservation{Rainfall: fptr(0), Humidity: fptr(30)},
			want:    PriorityHigh, // 3+2+1
		},
		{
			name:    "moderate field, dry and arid",
			average: 0.357,
			weather: WeatherObservation{Rainfall: fptr(0), Humidity: fptr(35)},
			want:    PriorityHigh, // 2+2+1
		},
		{
			name:    "stressed field, no weather signals",
			average: 0.25,
			weather: WeatherObservation{},
			want:    PriorityMedium, // 3
		},
		{
			name:    "moderate field, no weather signals",
			average: 0.45,
			weather: WeatherObservation{},
			want:    PriorityLow, // 2
		},
		{
			name:    "moderate field, low humidity only",
			average: 0.45,
			weather: WeatherObservation{Humidity: fptr(35)},
			want:    PriorityMedium, // 2+1
		},
		{
			name:    "healthy field never triggers on weather alone",
			average: 0.7,
			weather: WeatherObservation{Rainfall: fptr(0), Humidity: fptr(20)},
			want:    PriorityMedium, // 1+2+1 caps at medium
		},
		{
			name:    "missing rainfall skips the dryness bonus",
			average: 0.25,
			weather: WeatherObservation{Humidity: fptr(55)},
			want:    PriorityMedium, // 3
		},
		{
			name:    "rainfall boundary at 2mm does not count as dry",
			average: 0.45,
			weather: WeatherObservation{Rainfall: fptr(2), Humidity: fptr(35)},
			want:    PriorityMedium, // 2+1
		},
		{
			name:    "humidity boundary at 40% does not count as arid",
			average: 0.45,
			weather: WeatherObservation{Rainfall: fptr(0), Humidity: fptr(40)},
			want:    PriorityMedium, // 2+2
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimatePriority(tt.average, tt.weather))
		})
	}
}
