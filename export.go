package sort_analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	str "strings"
)

var ErrNothingToExport error = fmt.Errorf("No sorted data available. Run a sorting algorithm first")

// WriteValues writes one integer per line, each newline terminated.
func WriteValues(w io.Writer, data []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range data {
		if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ExportPath applies the export naming rules: an empty name becomes
// sorted_data.txt and names without the .txt extension get it appended.
func ExportPath(name string) string {
	name = str.TrimSpace(name)
	if name == "" {
		return DefaultExportFilename
	}
	if !str.HasSuffix(name, ExportExtension) {
		name += ExportExtension
	}
	return name
}

// Export writes r's sorted values to the file named by ExportPath(name) and
// returns the path it wrote.
func Export(name string, r *SortResult) (string, error) {
	if r == nil {
		return "", ErrNothingToExport
	}

	path := ExportPath(name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("Failed to create %s: %w", path, err)
	}

	if err := WriteValues(f, r.Sorted); err != nil {
		f.Close()
		return "", fmt.Errorf("Failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("Failed to close %s: %w", path, err)
	}
	return path, nil
}
