// Package analysis turns per-zone vegetation index values and current
// weather into health classifications, irrigation priorities and ranked
// farmer-facing recommendations. Every function is pure: inputs are owned by
// the caller, outputs are freshly built, and identical inputs always produce
// identical results.
package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// GridRows and GridCols fix the spatial decomposition of a field polygon
// into analysis zones. Zone ids are stable across runs, so per-zone history
// of the same field stays comparable.
const (
	GridRows = 3
	GridCols = 3
)

// ZoneID addresses one cell of the 3x3 analysis grid.
type ZoneID struct {
	Row int
	Col int
}

// Key returns the wire format used by the imagery processor, e.g. "zone_1_2".
func (z ZoneID) Key() string {
	return fmt.Sprintf("zone_%d_%d", z.Row, z.Col)
}

var zoneNames = [GridRows][GridCols]string{
	{"Northwest", "North", "Northeast"},
	{"West", "Center", "East"},
	{"Southwest", "South", "Southeast"},
}

// Name returns the compass name shown to farmers ("Northwest", "Center", ...).
func (z ZoneID) Name() string {
	if z.Row < 0 || z.Row >= GridRows || z.Col < 0 || z.Col >= GridCols {
		return z.Key()
	}
	return zoneNames[z.Row][z.Col]
}

// GridZones returns all nine zone ids in row-major order. Row-major order is
// the canonical iteration order everywhere in this package, which is what
// makes the outputs deterministic.
func GridZones() []ZoneID {
	out := make([]ZoneID, 0, GridRows*GridCols)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			out = append(out, ZoneID{Row: row, Col: col})
		}
	}
	return out
}

// ParseZoneKey parses a "zone_<row>_<col>" key into a ZoneID. Keys that do
// not address a grid cell are rejected.
func ParseZoneKey(key string) (ZoneID, bool) {
	parts := strings.Split(key, "_")
	if len(parts) != 3 || parts[0] != "zone" {
		return ZoneID{}, false
	}
	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return ZoneID{}, false
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return ZoneID{}, false
	}
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return ZoneID{}, false
	}
	return ZoneID{Row: row, Col: col}, true
}

// Snapshot maps grid zones to their vegetation index value for a single
// analysis run. A sparse snapshot is valid: zones without an entry carry no
// data. The caller must not mutate a snapshot after handing it over.
type Snapshot map[ZoneID]float64

// ParseSnapshot converts the imagery collaborator's string-keyed mapping
// into a Snapshot. Keys that do not address a grid cell are dropped, so a
// snapshot never grows past nine entries.
func ParseSnapshot(raw map[string]float64) Snapshot {
	snap := make(Snapshot, len(raw))
	for key, value := range raw {
		if id, ok := ParseZoneKey(key); ok {
			snap[id] = value
		}
	}
	return snap
}

// StringMap renders the snapshot back into the "zone_<row>_<col>" wire keys.
func (s Snapshot) StringMap() map[string]float64 {
	out := make(map[string]float64, len(s))
	for id, value := range s {
		out[id.Key()] = value
	}
	return out
}

// Values returns the present zone values in row-major order.
func (s Snapshot) Values() []float64 {
	out := make([]float64, 0, len(s))
	for _, id := range GridZones() {
		if value, ok := s[id]; ok {
			out = append(out, value)
		}
	}
	return out
}

// Average returns the mean vegetation index over present zones, 0 when the
// snapshot is empty.
func (s Snapshot) Average() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range s {
		sum += value
	}
	return sum / float64(len(s))
}
