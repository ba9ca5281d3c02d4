package utils

import (
	"fmt"
	"io"
	"time"
)

// Stats for run monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	FramesWritten        int
	FramesFailed         int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordFrame counts a frame handed to the image sink
func (s *Stats) RecordFrame(err error) {
	if err != nil {
		s.FramesFailed++
		return
	}
	s.FramesWritten++
}

// Summary prints the final run figures
func (s *Stats) Summary(w io.Writer) {
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
		s.TotalGenerations, time.Since(s.StartTime).Seconds())
	fmt.Fprintf(w, "Frames: %d written, %d failed | Avg Pop: %.1f\n",
		s.FramesWritten, s.FramesFailed, s.AveragePopulation)
}
