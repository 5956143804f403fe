package sort_analyzer

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrAlgorithmCount error = fmt.Errorf("Comparison needs between %d and %d algorithms", MinCompareAlgorithms, MaxCompareAlgorithms)
var ErrDuplicateAlgorithm error = fmt.Errorf("Algorithm listed more than once")

// RankingReport orders a batch of results fastest first and carries the
// derived gap statistics. Speedup and PercentDifference are 0 when the
// fastest run measured 0.
type RankingReport struct {
	ID                uuid.UUID
	Results           []*SortResult
	Fastest           *SortResult
	Slowest           *SortResult
	Speedup           float64
	TimeDelta         time.Duration
	PercentDifference float64
	PassesSaved       int
	HasPassesSaved    bool

	runOrder []*SortResult
}

// Compare runs each algorithm over data one after another and ranks them.
// Runs never overlap.
func Compare(algs []Algorithm, data []int) (*RankingReport, error) {
	if len(algs) < MinCompareAlgorithms || len(algs) > MaxCompareAlgorithms {
		return nil, fmt.Errorf("%w: got %d", ErrAlgorithmCount, len(algs))
	}
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	seen := make(map[Algorithm]bool, len(algs))
	for _, a := range algs {
		if !a.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint(a))
		}
		if seen[a] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAlgorithm, a)
		}
		seen[a] = true
	}

	results := make([]*SortResult, 0, len(algs))
	for _, a := range algs {
		r, err := Sort(a, data)
		if err != nil {
			return nil, fmt.Errorf("%s failed: %w", a, err)
		}
		results = append(results, r)
	}

	report, err := Rank(results)
	if err != nil {
		return nil, err
	}
	if DEBUG {
		log.Printf("Comparison %s: fastest %s (%v), slowest %s (%v)",
			report.ID, report.Fastest.Algorithm, report.Fastest.Elapsed,
			report.Slowest.Algorithm, report.Slowest.Elapsed)
	}
	return report, nil
}

// Rank builds a report from results that were already produced, in the
// order they were run. Equal timings keep that order. An empty batch
// returns ErrEmptyDataset.
func Rank(results []*SortResult) (*RankingReport, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no results to rank", ErrEmptyDataset)
	}
	for i, r := range results {
		if r == nil {
			return nil, fmt.Errorf("%w: result %d is nil", ErrEmptyDataset, i)
		}
	}

	runOrder := make([]*SortResult, len(results))
	copy(runOrder, results)

	ranked := make([]*SortResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Elapsed < ranked[j].Elapsed
	})

	report := &RankingReport{
		ID:       uuid.New(),
		Results:  ranked,
		Fastest:  ranked[0],
		Slowest:  ranked[len(ranked)-1],
		runOrder: runOrder,
	}

	report.TimeDelta = report.Slowest.Elapsed - report.Fastest.Elapsed
	if report.Fastest.Elapsed > 0 {
		report.Speedup = report.Slowest.Seconds() / report.Fastest.Seconds()
		report.PercentDifference = report.TimeDelta.Seconds() / report.Slowest.Seconds() * 100
	}

	classic, optimized := report.Find(BubbleClassic), report.Find(BubbleOptimized)
	if classic != nil && optimized != nil {
		report.PassesSaved = classic.Passes - optimized.Passes
		report.HasPassesSaved = true
	}

	return report, nil
}

// Find returns the result for alg, or nil when alg was not part of the run.
func (rr *RankingReport) Find(alg Algorithm) *SortResult {
	for _, r := range rr.Results {
		if r.Algorithm == alg {
			return r
		}
	}
	return nil
}

// Last is the result of the algorithm that ran last. The shells export it
// as the comparison's sorted output.
func (rr *RankingReport) Last() *SortResult {
	if len(rr.runOrder) == 0 {
		return rr.Slowest
	}
	return rr.runOrder[len(rr.runOrder)-1]
}

// RunOrder returns the results in the order the algorithms ran.
func (rr *RankingReport) RunOrder() []*SortResult {
	out := make([]*SortResult, len(rr.runOrder))
	copy(out, rr.runOrder)
	return out
}
