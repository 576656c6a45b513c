package axionfield

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SweepPoint is one sample of a probability curve.
type SweepPoint struct {
	Mass        float64 // eV
	Probability float64
}

// ProbabilitySweep evaluates the closed-form conversion probability at
// every mass in the grid, in input order. Samples are distributed over
// a fixed pool of workers; workers <= 0 uses GOMAXPROCS. The field and
// its gas are read concurrently, so the state must not change while
// the sweep runs.
func (f *Field) ProbabilitySweep(masses []float64, workers int) []SweepPoint {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(masses) {
		workers = len(masses)
	}

	points := make([]SweepPoint, len(masses))

	var (
		wg   sync.WaitGroup
		next atomic.Int64
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(masses) {
					return
				}
				points[i] = SweepPoint{
					Mass:        masses[i],
					Probability: f.Probability(masses[i], 0, 0),
				}
			}
		}()
	}
	wg.Wait()

	return points
}

// MassGrid returns n evenly spaced masses covering [min, max].
// It returns nil unless n >= 2 and max > min.
func MassGrid(min, max float64, n int) []float64 {
	if n < 2 || max <= min {
		return nil
	}
	masses := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range masses {
		masses[i] = min + float64(i)*step
	}
	return masses
}
