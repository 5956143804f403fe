package sort_analyzer

import (
	"fmt"
	"log"
	"time"

	cp "github.com/jinzhu/copier"
	"nickandperla.net/sorting"
)

var ErrEmptyDataset error = fmt.Errorf("Dataset is empty")

// SortResult is the outcome of a single harness run. Passes is only
// meaningful when HasPasses is set, which is the case for the bubble family.
type SortResult struct {
	Algorithm Algorithm
	Sorted    []int
	Elapsed   time.Duration
	Passes    int
	HasPasses bool
}

// Seconds is the elapsed time in seconds.
func (r *SortResult) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// MaxPasses is the pass count a classic bubble sort needs for this result's
// input size.
func (r *SortResult) MaxPasses() int {
	if len(r.Sorted) <= 1 {
		return 0
	}
	return len(r.Sorted) - 1
}

// EarlyExit reports whether a bubble run stopped before its pass budget.
func (r *SortResult) EarlyExit() bool {
	return r.HasPasses && r.Passes < r.MaxPasses()
}

// Clone returns a deep copy so callers can keep a result around (for a later
// export, say) without sharing the sorted slice.
func (r *SortResult) Clone() (*SortResult, error) {
	clone := &SortResult{}
	if err := cp.CopyWithOption(clone, r, cp.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("Failed to clone %s result: %w", r.Algorithm, err)
	}
	return clone, nil
}

// Sort runs alg over a private copy of data and times the algorithm call
// alone. data is never modified.
func Sort(alg Algorithm, data []int) (*SortResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint(alg))
	}

	start := time.Now()
	sorted, passes := run(alg, data)
	elapsed := time.Since(start)

	if DEBUG {
		log.Printf("%s sorted %d values in %v", alg, len(data), elapsed)
	}

	return &SortResult{
		Algorithm: alg,
		Sorted:    sorted,
		Elapsed:   elapsed,
		Passes:    passes,
		HasPasses: alg.CountsPasses(),
	}, nil
}

func run(alg Algorithm, data []int) ([]int, int) {
	switch alg {
	case BubbleClassic:
		return sorting.Bubble(data)
	case BubbleOptimized:
		return sorting.BubbleOptimized(data)
	case Insertion:
		return sorting.Insertion(data), 0
	case Merge:
		return sorting.Merge(data), 0
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint(alg)))
}
