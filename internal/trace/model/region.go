package model

import (
	"math/rand/v2"
	"strings"
)

// Position is a geographic coordinate in degrees.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds is a latitude/longitude box.
type Bounds struct {
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
}

// WorldBounds covers the whole map.
var WorldBounds = Bounds{MinLatitude: -60, MaxLatitude: 70, MinLongitude: -180, MaxLongitude: 180}

var regionBounds = map[string]Bounds{
	"NORTH_AMERICA": {MinLatitude: 30, MaxLatitude: 50, MinLongitude: -120, MaxLongitude: -75},
	"EUROPE":        {MinLatitude: 40, MaxLatitude: 58, MinLongitude: -5, MaxLongitude: 30},
	"SOUTH_AMERICA": {MinLatitude: -35, MaxLatitude: 0, MinLongitude: -70, MaxLongitude: -40},
	"ASIA_PACIFIC":  {MinLatitude: 0, MaxLatitude: 40, MinLongitude: 75, MaxLongitude: 125},
	"JAPAN":         {MinLatitude: 33, MaxLatitude: 41, MinLongitude: 131, MaxLongitude: 141},
	"AUSTRALIA":     {MinLatitude: -38, MaxLatitude: -20, MinLongitude: 115, MaxLongitude: 150},
	"AFRICA":        {MinLatitude: -30, MaxLatitude: 30, MinLongitude: -10, MaxLongitude: 40},
}

// BoundsForRegion resolves a region name to its sampling box, defaulting to the whole map.
func BoundsForRegion(name string) Bounds {
	key := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(name)))
	if b, ok := regionBounds[key]; ok {
		return b
	}
	return WorldBounds
}

// Region is created once from static data and never changes.
type Region struct {
	ID     RegionID
	Name   string
	Bounds Bounds
}

// NewRegion builds a region with bounds derived from its name.
func NewRegion(id RegionID, name string) *Region {
	return &Region{ID: id, Name: name, Bounds: BoundsForRegion(name)}
}

// SamplePosition draws a uniform position inside the region bounds.
func (r *Region) SamplePosition(rng *rand.Rand) Position {
	b := r.Bounds
	return Position{
		Latitude:  b.MinLatitude + rng.Float64()*(b.MaxLatitude-b.MinLatitude),
		Longitude: b.MinLongitude + rng.Float64()*(b.MaxLongitude-b.MinLongitude),
	}
}

// PositionSampler places a newly created node inside its region.
type PositionSampler interface {
	Sample(region *Region) Position
}

// SeededSampler samples positions from a deterministic PCG stream.
type SeededSampler struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeededSampler returns a sampler producing the same positions for the same seed and call order.
func NewSeededSampler(seed uint64) *SeededSampler {
	s := &SeededSampler{seed: seed}
	s.Reset()
	return s
}

// Reset rewinds the stream to its seed.
func (s *SeededSampler) Reset() {
	s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
}

// Sample implements PositionSampler.
func (s *SeededSampler) Sample(region *Region) Position {
	return region.SamplePosition(s.rng)
}
