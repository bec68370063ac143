package statistics

import (
	"fmt"
	"math"
	"sort"
)

// Result is one observation: a whole estimation trial, or a single round of
// a game for one player.
type Result struct {
	Value float64 // Pi estimate for a trial, points scored for a round
	Hits  int     // Darts classified inside the target
	Darts int     // Darts thrown for this observation
	Seed  int64   // RNG seed that produced it (for replay)
}

// Statistics accumulates observations and derives summary figures.
type Statistics struct {
	Count  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	TotalHits  int
	TotalDarts int

	Min float64
	Max float64
}

// Add incorporates a new observation.
func (s *Statistics) Add(result Result) {
	v := result.Value
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)

	s.TotalHits += result.Hits
	s.TotalDarts += result.Darts
}

// Mean returns the arithmetic mean of all values
func (s *Statistics) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of all values
func (s *Statistics) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
	if v < 0 {
		// rounding on identical values
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// HitRate is the fraction of all darts that landed inside the target.
func (s *Statistics) HitRate() float64 {
	if s.TotalDarts == 0 {
		return 0
	}
	return float64(s.TotalHits) / float64(s.TotalDarts)
}

// PooledPi treats every dart across all observations as one big run.
func (s *Statistics) PooledPi() float64 {
	return s.HitRate() * 4
}

// Median returns the median value
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks the accumulated counters are consistent
func (s *Statistics) Validate() error {
	if s.Count <= 0 {
		return fmt.Errorf("invalid observation count: %d", s.Count)
	}

	if len(s.Values) != s.Count {
		return fmt.Errorf("values array length (%d) does not match count (%d)",
			len(s.Values), s.Count)
	}

	if s.TotalHits < 0 || s.TotalHits > s.TotalDarts {
		return fmt.Errorf("total hits (%d) outside [0, %d]", s.TotalHits, s.TotalDarts)
	}

	return nil
}
