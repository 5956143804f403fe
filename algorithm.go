package sort_analyzer

import (
	"fmt"
	"strconv"
	str "strings"

	"github.com/xrash/smetrics"
)

var ErrUnknownAlgorithm error = fmt.Errorf("Unknown sorting algorithm")

// Algorithm is the closed set of sorting variants the harness can run.
type Algorithm uint

type algorithmInfo struct {
	key        string
	name       string
	complexity string
	passes     bool
}

var algorithmTable = map[Algorithm]algorithmInfo{
	BubbleClassic:   {key: "bubble", name: "Classic Bubble Sort", complexity: "O(n²)", passes: true},
	BubbleOptimized: {key: "bubble-optimized", name: "Optimized Bubble Sort", complexity: "O(n²)", passes: true},
	Insertion:       {key: "insertion", name: "Insertion Sort", complexity: "O(n²)"},
	Merge:           {key: "merge", name: "Merge Sort", complexity: "O(n log n)"},
}

func (a Algorithm) Valid() bool {
	_, ok := algorithmTable[a]
	return ok
}

func (a Algorithm) String() string {
	if info, ok := algorithmTable[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Algorithm(%d)", uint(a))
}

// Key is the short name accepted on the command line and in config files.
func (a Algorithm) Key() string {
	return algorithmTable[a].key
}

func (a Algorithm) Complexity() string {
	return algorithmTable[a].complexity
}

// CountsPasses reports whether results of a carry a pass count.
func (a Algorithm) CountsPasses() bool {
	return algorithmTable[a].passes
}

// ParseAlgorithm resolves a key ("merge"), a display name ("Merge Sort") or
// a menu number ("4") to an Algorithm. Unknown input yields an error wrapping
// ErrUnknownAlgorithm, with the closest key suggested when one is near.
func ParseAlgorithm(s string) (Algorithm, error) {
	needle := str.ToLower(str.TrimSpace(s))

	if n, err := strconv.Atoi(needle); err == nil {
		if a := Algorithm(n); n > 0 && a.Valid() {
			return a, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	for _, a := range AllAlgorithms {
		if needle == a.Key() || needle == str.ToLower(a.String()) {
			return a, nil
		}
	}

	if suggestion, ok := suggestAlgorithm(needle); ok {
		return 0, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownAlgorithm, s, suggestion.Key())
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseAlgorithms splits a comma separated list and resolves each entry.
func ParseAlgorithms(list string) ([]Algorithm, error) {
	var algs []Algorithm
	for _, field := range str.Split(list, ",") {
		if str.TrimSpace(field) == "" {
			continue
		}
		a, err := ParseAlgorithm(field)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}

func suggestAlgorithm(needle string) (Algorithm, bool) {
	var best Algorithm
	bestDistance := -1
	for _, a := range AllAlgorithms {
		d := smetrics.WagnerFischer(needle, a.Key(), 1, 1, 2)
		if bestDistance == -1 || d < bestDistance {
			best, bestDistance = a, d
		}
	}
	if bestDistance > maxSuggestionDistance {
		return 0, false
	}
	return best, true
}
