package sort_analyzer

import (
	"errors"
	"math/rand"
	mop "reflect"
	test "testing"
)

func randomInput(r *rand.Rand, n int) []int {
	in := make([]int, n)
	for i := range in {
		in[i] = r.Intn(2001) - 1000
	}
	return in
}

func isDescending(data []int) bool {
	for i := 0; i+1 < len(data); i++ {
		if data[i] < data[i+1] {
			return false
		}
	}
	return true
}

func counts(data []int) map[int]int {
	m := make(map[int]int)
	for _, v := range data {
		m[v]++
	}
	return m
}

func TestSortExample(t *test.T) {
	in := []int{4, 2, 9, 1, 9, 3}
	want := []int{9, 9, 4, 3, 2, 1}

	for _, alg := range AllAlgorithms {
		r, err := Sort(alg, in)
		if err != nil {
			t.Fatalf("Sort(%s) returned error: %v", alg, err)
		}
		if !mop.DeepEqual(r.Sorted, want) {
			t.Errorf("Sort(%s) = %v, want %v", alg, r.Sorted, want)
		}
		if r.Algorithm != alg {
			t.Errorf("Result carries %s, expected %s", r.Algorithm, alg)
		}
		if r.Elapsed < 0 || r.Seconds() < 0 {
			t.Errorf("Negative elapsed time for %s: %v", alg, r.Elapsed)
		}
	}

	if !mop.DeepEqual(in, []int{4, 2, 9, 1, 9, 3}) {
		t.Errorf("Sort mutated the caller's data: %v", in)
	}
}

func TestSortProperties(t *test.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 30; round++ {
		in := randomInput(r, r.Intn(300)+1)
		var first []int

		for _, alg := range AllAlgorithms {
			res, err := Sort(alg, in)
			if err != nil {
				t.Fatalf("Sort(%s) returned error: %v", alg, err)
			}

			if len(res.Sorted) != len(in) {
				t.Fatalf("%s changed length %d -> %d", alg, len(in), len(res.Sorted))
			}
			if !mop.DeepEqual(counts(res.Sorted), counts(in)) {
				t.Fatalf("%s output is not a permutation of its input", alg)
			}
			if !isDescending(res.Sorted) {
				t.Fatalf("%s output is not descending: %v", alg, res.Sorted)
			}

			again, err := Sort(alg, res.Sorted)
			if err != nil {
				t.Fatalf("Sort(%s) on sorted data returned error: %v", alg, err)
			}
			if !mop.DeepEqual(again.Sorted, res.Sorted) {
				t.Fatalf("%s is not idempotent", alg)
			}

			if first == nil {
				first = res.Sorted
			} else if !mop.DeepEqual(first, res.Sorted) {
				t.Fatalf("%s disagrees with %s", alg, AllAlgorithms[0])
			}
		}
	}
}

func TestSortPassCounts(t *test.T) {
	n := 40
	asc := make([]int, n)
	desc := make([]int, n)
	for i := 0; i < n; i++ {
		asc[i] = i
		desc[i] = n - i
	}

	classic, _ := Sort(BubbleClassic, desc)
	if !classic.HasPasses || classic.Passes != n-1 {
		t.Errorf("Classic bubble reported %d passes (has=%v), want %d", classic.Passes, classic.HasPasses, n-1)
	}
	if classic.EarlyExit() {
		t.Errorf("Classic bubble cannot exit early")
	}

	best, _ := Sort(BubbleOptimized, desc)
	if best.Passes != 1 || !best.EarlyExit() {
		t.Errorf("Optimized bubble on sorted input reported %d passes", best.Passes)
	}

	worst, _ := Sort(BubbleOptimized, asc)
	if worst.Passes != n-1 {
		t.Errorf("Optimized bubble on ascending input reported %d passes, want %d", worst.Passes, n-1)
	}

	for _, alg := range []Algorithm{Insertion, Merge} {
		r, _ := Sort(alg, asc)
		if r.HasPasses || r.Passes != 0 {
			t.Errorf("%s should not report passes", alg)
		}
	}

	single, _ := Sort(BubbleClassic, []int{3})
	if single.Passes != 0 || single.MaxPasses() != 0 {
		t.Errorf("Single element classic bubble reported %d passes", single.Passes)
	}
}

func TestSortMergeTies(t *test.T) {
	r, err := Sort(Merge, []int{5, 3, 5, 1})
	if err != nil {
		t.Fatalf("Sort(Merge) returned error: %v", err)
	}
	if !mop.DeepEqual(r.Sorted, []int{5, 5, 3, 1}) {
		t.Errorf("Sort(Merge, [5 3 5 1]) = %v", r.Sorted)
	}
}

func TestSortPreconditions(t *test.T) {
	if _, err := Sort(Merge, nil); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Sort(Merge, Dataset{}); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Expected ErrEmptyDataset for empty Dataset, got %v", err)
	}
	if _, err := Sort(Algorithm(0), []int{1}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := Sort(Algorithm(99), []int{1}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestSortResultClone(t *test.T) {
	r, _ := Sort(BubbleOptimized, []int{1, 2, 3})
	clone, err := r.Clone()
	if err != nil {
		t.Fatalf("Clone returned error: %v", err)
	}

	if !mop.DeepEqual(clone, r) {
		t.Fatalf("Clone differs: %+v vs %+v", clone, r)
	}

	clone.Sorted[0] = 100
	if r.Sorted[0] == 100 {
		t.Errorf("Clone shares its sorted slice with the source result")
	}
}
