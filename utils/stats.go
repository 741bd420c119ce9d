package utils

import (
	"time"

	"github.com/google/uuid"
)

// Stats summarizes one simulation run
type Stats struct {
	RunID             string
	StartTime         time.Time
	Elapsed           time.Duration
	TotalGenerations  int
	Cells             int
	FinalPopulation   int
	PeakPopulation    int
	AveragePopulation float64
}

// NewStats starts a run summary for a grid with the given number of cells
func NewStats(cells int) *Stats {
	return &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
		Cells:     cells,
	}
}

// Update records the population of one more generation
func (s *Stats) Update(generation int, population int) {
	if generation <= 0 {
		return
	}
	s.TotalGenerations = generation
	s.FinalPopulation = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.Elapsed = time.Since(s.StartTime)

	// running mean
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation)
}

// Density returns the final population as a percentage of the grid
func (s *Stats) Density() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.FinalPopulation) / float64(s.Cells) * 100
}
