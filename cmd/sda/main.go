package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	str "strings"
	"time"

	sa "nickandperla.net/sort_analyzer"
)

var toolConfigPath *string = flag.String("config", sa.DefaultConfigPath, "The config file for sort_analyzer tools to use. Defaults to './config.toml'")
var dataPath *string = flag.String("file", "", "A .txt file to load on start. Prompted for when empty")

const rule = "============================================================"

// session is everything the menu remembers between choices. The last result
// lives here, not in the sort_analyzer package.
type session struct {
	in     *bufio.Reader
	out    io.Writer
	config *sa.ToolConfig

	full      sa.Dataset
	data      sa.Dataset
	sizeLimit int

	last      *sa.SortResult
	lastLabel string
}

func main() {
	flag.Parse()

	toolConfig, err := sa.ResolveToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load sort_analyzer config: %v", err)
	}

	s := &session{
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		config:    toolConfig,
		sizeLimit: toolConfig.SizeLimit,
	}

	if err := s.run(*dataPath); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("%v", err)
	}
}

func (s *session) run(initialPath string) error {
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Welcome to SDA! (Sorting in Descending Algorithms)")
	fmt.Fprintln(s.out, rule)

	if initialPath != "" {
		if err := s.load(initialPath); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			initialPath = ""
		}
	}
	if initialPath == "" {
		if err := s.promptLoad(); err != nil {
			return err
		}
	}

	for {
		s.menu()
		choice, err := s.readLine("\nEnter your choice (0-9): ")
		if err != nil {
			return err
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.out, "\nThank you for using our program!\nGoodbye!")
			return nil
		case "1", "2", "3", "4":
			alg, _ := sa.ParseAlgorithm(choice)
			s.single(alg)
		case "5":
			s.compare("Bubble Variants", []sa.Algorithm{sa.BubbleClassic, sa.BubbleOptimized})
		case "6":
			algs, err := s.config.AlgorithmSet()
			if err != nil || len(algs) < sa.MinCompareAlgorithms {
				algs = []sa.Algorithm{sa.BubbleClassic, sa.Insertion, sa.Merge}
			}
			s.compare("All Algorithms", algs)
		case "7":
			if err := s.promptSize(); err != nil {
				return err
			}
		case "8":
			if err := s.download(); err != nil {
				return err
			}
		case "9":
			if err := s.promptLoad(); err != nil {
				return err
			}
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Please enter a number between 0 and 9.")
		}
	}
}

func (s *session) menu() {
	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintln(s.out, "MENU")
	fmt.Fprintln(s.out, rule)
	for _, a := range sa.AllAlgorithms {
		fmt.Fprintf(s.out, "%d. %s\n", uint(a), a)
	}
	fmt.Fprintln(s.out, "5. Compare Bubble Variants")
	fmt.Fprintln(s.out, "6. Run All Algorithms")
	fmt.Fprintf(s.out, "7. Set Dataset Size (current: %s)\n", s.sizeLabel())
	fmt.Fprintln(s.out, "8. Download Sorted Data")
	fmt.Fprintln(s.out, "9. Load New File")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprintln(s.out, rule)
}

func (s *session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return str.TrimSpace(line), nil
}

func (s *session) promptLoad() error {
	for {
		path, err := s.readLine("Enter the name or path to your .txt file: ")
		if err != nil {
			return err
		}
		if err := s.load(path); err != nil {
			fmt.Fprintf(s.out, "Error: %v. Please try again.\n\n", err)
			continue
		}
		return nil
	}
}

func (s *session) load(path string) error {
	full, err := sa.LoadDataset(path)
	if err != nil {
		return err
	}
	s.full = full
	s.applySize()

	fmt.Fprintf(s.out, "\nSuccessfully loaded %s numbers from %s.\n", sa.FormatCount(full.Len()), path)
	fmt.Fprintf(s.out, "Using %s numbers for sorting\n", sa.FormatCount(s.data.Len()))
	fmt.Fprintf(s.out, "Preview: %s\n", sa.FormatPreview(s.data, s.config.PreviewCount))
	return nil
}

func (s *session) applySize() {
	var applied bool
	s.data, applied = s.full.Limit(s.sizeLimit)
	if s.sizeLimit > 0 && !applied {
		fmt.Fprintf(s.out, "File contains only %s numbers. Using all available data.\n", sa.FormatCount(s.full.Len()))
	}
}

func (s *session) sizeLabel() string {
	if s.sizeLimit <= 0 {
		return "All"
	}
	return sa.FormatCount(s.sizeLimit)
}

func (s *session) promptSize() error {
	fmt.Fprintf(s.out, "\nAvailable sizes: %s\n", str.Join(sa.SizeOptions, " | "))
	option, err := s.readLine("Enter a dataset size (or All): ")
	if err != nil {
		return err
	}
	n, err := sa.ParseSize(option)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	s.sizeLimit = n
	s.applySize()
	fmt.Fprintf(s.out, "\nDataset size changed to: %s\n", s.sizeLabel())
	fmt.Fprintf(s.out, "Using %s numbers for sorting\n", sa.FormatCount(s.data.Len()))
	return nil
}

// background runs work on its own goroutine and prints a dot per progress
// tick until it returns. The sort itself stays single threaded.
func (s *session) background(label string, work func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- work()
	}()

	ticker := time.NewTicker(s.config.ProgressInterval())
	defer ticker.Stop()

	fmt.Fprintf(s.out, "\nLoading... (Running %s)", label)
	for {
		select {
		case err := <-done:
			fmt.Fprintln(s.out)
			return err
		case <-ticker.C:
			fmt.Fprint(s.out, ".")
		}
	}
}

func (s *session) single(alg sa.Algorithm) {
	var result *sa.SortResult
	err := s.background(alg.String(), func() (err error) {
		result, err = sa.Sort(alg, s.data)
		return err
	})
	if err != nil {
		fmt.Fprintf(s.out, "\nError: %v\n", err)
		return
	}

	sa.FormatResult(s.out, result, s.config.PreviewCount)
	s.last = result
	s.lastLabel = alg.String()
	s.showSorted(alg.String() + " Result")
}

func (s *session) compare(label string, algs []sa.Algorithm) {
	var report *sa.RankingReport
	err := s.background(label, func() (err error) {
		report, err = sa.Compare(algs, s.data)
		return err
	})
	if err != nil {
		fmt.Fprintf(s.out, "\nError: %v\n", err)
		return
	}

	sa.FormatReport(s.out, report)
	last, err := report.Last().Clone()
	if err != nil {
		fmt.Fprintf(s.out, "\nError: %v\n", err)
		return
	}
	s.last = last
	s.lastLabel = label
	s.showSorted("Comparison Complete")
}

// showSorted prints the complete last result, ItemsPerLine values a row.
func (s *session) showSorted(heading string) {
	if s.last == nil {
		return
	}
	fmt.Fprintf(s.out, "\n%s\n", heading)
	fmt.Fprintf(s.out, "Descending Order (%s numbers)\n\n", sa.FormatCount(len(s.last.Sorted)))
	fmt.Fprintln(s.out, sa.FormatDataset(s.last.Sorted, s.config.ItemsPerLine))
}

func (s *session) download() error {
	if s.last == nil {
		fmt.Fprintf(s.out, "\n%v.\n", sa.ErrNothingToExport)
		return nil
	}

	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintln(s.out, "DOWNLOAD SORTED DATA")
	fmt.Fprintln(s.out, rule)

	name, err := s.readLine(fmt.Sprintf("Enter filename (default: %s): ", s.config.ExportPath))
	if err != nil {
		return err
	}
	if name == "" {
		name = s.config.ExportPath
	}

	path, err := sa.Export(name, s.last)
	if err != nil {
		fmt.Fprintf(s.out, "\nError saving file: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "\nSuccessfully saved %s numbers to '%s'\n", sa.FormatCount(len(s.last.Sorted)), path)
	fmt.Fprintf(s.out, "  Algorithm used: %s\n", s.lastLabel)
	fmt.Fprintln(s.out, rule)
	return nil
}
