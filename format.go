package sort_analyzer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	str "strings"
	"time"
)

const rule = "============================================================"

func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var sb str.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sign + sb.String()
}

// FormatDataset lays values out perLine to a row, comma separated.
func FormatDataset(data []int, perLine int) string {
	if perLine <= 0 {
		perLine = DefaultItemsPerLine
	}

	lines := make([]string, 0, len(data)/perLine+1)
	for i := 0; i < len(data); i += perLine {
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		cells := make([]string, end-i)
		for k, v := range data[i:end] {
			cells[k] = strconv.Itoa(v)
		}
		lines = append(lines, str.Join(cells, ", "))
	}
	return str.Join(lines, "\n")
}

// FormatPreview shows the first n values, with a trailing "..." when the
// data is longer.
func FormatPreview(data []int, n int) string {
	if n <= 0 {
		n = DefaultPreviewCount
	}
	if len(data) <= n {
		return fmt.Sprint(data)
	}
	return fmt.Sprint(data[:n]) + "..."
}

// FormatResult writes the block shown after a single algorithm run.
func FormatResult(w io.Writer, r *SortResult, previewCount int) {
	fmt.Fprintf(w, "\n%s Result (%s):\n", r.Algorithm, r.Algorithm.Complexity())
	fmt.Fprintln(w, str.Repeat("-", len(rule)))
	fmt.Fprintf(w, "Sorted Data: %s\n", FormatPreview(r.Sorted, previewCount))
	fmt.Fprintf(w, "Time Taken: %s seconds\n", FormatSeconds(r.Elapsed))
	if r.HasPasses {
		fmt.Fprintf(w, "Passes: %d out of %d maximum\n", r.Passes, r.MaxPasses())
	}
	fmt.Fprintf(w, "Dataset size: %s numbers\n", FormatCount(len(r.Sorted)))
	fmt.Fprintln(w, str.Repeat("-", len(rule)))
}

// FormatReport writes the comparison summary: every result in run order,
// the ranking and the gap analysis.
func FormatReport(w io.Writer, rr *RankingReport) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PERFORMANCE COMPARISON")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Dataset size: %s numbers\n\n", FormatCount(len(rr.Fastest.Sorted)))

	for _, r := range rr.RunOrder() {
		fmt.Fprintf(w, "%s (%s):\n", r.Algorithm, r.Algorithm.Complexity())
		fmt.Fprintf(w, "  Time: %s seconds\n", FormatSeconds(r.Elapsed))
		if r.HasPasses {
			fmt.Fprintf(w, "  Passes: %d out of %d maximum\n", r.Passes, r.MaxPasses())
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PERFORMANCE RANKING (Fastest to Slowest)")
	fmt.Fprintln(w, rule)
	for rank, r := range rr.Results {
		fmt.Fprintf(w, "%d. %s: %s seconds (%s)\n", rank+1, r.Algorithm, FormatSeconds(r.Elapsed), r.Algorithm.Complexity())
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PERFORMANCE GAP ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Fastest: %s\n", rr.Fastest.Algorithm)
	fmt.Fprintf(w, "Slowest: %s\n", rr.Slowest.Algorithm)
	fmt.Fprintf(w, "Speedup: %.2fx faster\n", rr.Speedup)
	fmt.Fprintf(w, "Time difference: %ss (%.2f%%)\n", FormatSeconds(rr.TimeDelta), rr.PercentDifference)
	if rr.HasPassesSaved {
		classic, optimized := rr.Find(BubbleClassic), rr.Find(BubbleOptimized)
		fmt.Fprintln(w, bubbleVerdict(classic.Elapsed, optimized.Elapsed))
		fmt.Fprintf(w, "Passes saved: %d\n", rr.PassesSaved)
		if optimized.EarlyExit() {
			fmt.Fprintf(w, "Early exit occurred after %d passes\n", optimized.Passes)
		} else {
			fmt.Fprintln(w, "No early exit (data required full sorting)")
		}
	}
	fmt.Fprintln(w, rule)
}

// bubbleVerdict says which bubble variant won, as a percentage of the
// classic run's time.
func bubbleVerdict(classic, optimized time.Duration) string {
	diff := classic - optimized
	percent := 0.0
	if classic > 0 {
		percent = math.Abs(diff.Seconds() / classic.Seconds() * 100)
	}

	switch {
	case optimized < classic:
		return fmt.Sprintf("Optimized was %.2f%% faster (saved %ss)", percent, FormatSeconds(diff))
	case optimized > classic:
		return fmt.Sprintf("Classic was %.2f%% faster (difference %ss)", percent, FormatSeconds(-diff))
	}
	return "Both took the same time"
}
