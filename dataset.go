package sort_analyzer

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	str "strings"
)

var ErrNoValues error = fmt.Errorf("No valid numbers found")

// Dataset is a loaded list of integers. Front-ends own it; the harness only
// ever reads it.
type Dataset []int

// ParseDataset pulls every integer token out of text. Commas count as
// whitespace and a token may carry a single leading '-'. Anything else is
// skipped.
func ParseDataset(text string) (Dataset, error) {
	var data Dataset
	for _, token := range str.Fields(str.ReplaceAll(text, ",", " ")) {
		if !isIntegerToken(token) {
			continue
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse %q: %w", token, err)
		}
		data = append(data, v)
	}

	if len(data) == 0 {
		return nil, ErrNoValues
	}
	return data, nil
}

func isIntegerToken(token string) bool {
	digits := str.TrimPrefix(token, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// LoadDataset reads and parses the file at path.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", path, err)
	}
	data, err := ParseDataset(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

func (d Dataset) Len() int {
	return len(d)
}

func (d Dataset) Clone() Dataset {
	return slices.Clone(d)
}

// Limit returns a copy holding the first n values. When n <= 0 or the
// dataset is shorter than n the whole dataset is returned and applied is
// false.
func (d Dataset) Limit(n int) (limited Dataset, applied bool) {
	if n <= 0 || len(d) < n {
		return d.Clone(), false
	}
	return slices.Clone(d[:n]), true
}

// ParseSize turns a size option such as "10,000" into a count. "All" and
// the empty string mean no limit and return 0.
func ParseSize(option string) (int, error) {
	option = str.TrimSpace(option)
	if option == "" || str.EqualFold(option, "all") {
		return 0, nil
	}
	n, err := strconv.Atoi(str.ReplaceAll(option, ",", ""))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("Invalid dataset size %q", option)
	}
	return n, nil
}

// RandomDataset builds n values drawn uniformly from [lo, hi]. Any int
// range is accepted, including [math.MinInt, math.MaxInt].
func RandomDataset(n, lo, hi int) Dataset {
	if hi < lo {
		lo, hi = hi, lo
	}
	// wraps to 0 for the full range, which Uint64n treats as unbounded
	span := uint64(hi) - uint64(lo) + 1
	data := make(Dataset, n)
	for i := range data {
		data[i] = int(uint64(lo) + rng.Uint64n(span))
	}
	return data
}
