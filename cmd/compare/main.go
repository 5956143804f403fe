package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	sa "nickandperla.net/sort_analyzer"
)

var toolConfigPath = flag.String("config", sa.DefaultConfigPath, "The config file for sort_analyzer tools to use")
var dataPath = flag.String("file", "", "The .txt file holding the integers to sort")
var algoList = flag.String("algos", "", "Comma separated algorithms to compare (2 to 4). Defaults to the config's algorithms")
var sizeOption = flag.String("size", "", "Use only the first N numbers (e.g. 10,000)")
var outPath = flag.String("out", "", "Write the sorted output of the last algorithm run to this file")
var showData = flag.Bool("show-data", false, "Print the complete sorted dataset after the report")

func main() {
	flag.Parse()

	toolConfig, err := sa.ResolveToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load sort_analyzer config: %v", err)
	}

	if *dataPath == "" {
		log.Fatalf("No data file given. Use -file <path>")
	}

	var algs []sa.Algorithm
	if *algoList != "" {
		algs, err = sa.ParseAlgorithms(*algoList)
	} else {
		algs, err = toolConfig.AlgorithmSet()
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	full, err := sa.LoadDataset(*dataPath)
	if err != nil {
		log.Fatalf("Unable to load dataset: %v", err)
	}

	limit := toolConfig.SizeLimit
	if *sizeOption != "" {
		if limit, err = sa.ParseSize(*sizeOption); err != nil {
			log.Fatalf("%v", err)
		}
	}
	data, applied := full.Limit(limit)
	if limit > 0 && !applied {
		log.Printf("File contains only %s numbers. Using all available data.", sa.FormatCount(full.Len()))
	}

	log.Printf("Comparing %d algorithms over %s numbers", len(algs), sa.FormatCount(data.Len()))
	report, err := sa.Compare(algs, data)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}
	log.Printf("Comparison %s complete", report.ID)

	sa.FormatReport(os.Stdout, report)

	last := report.Last()
	if *showData {
		fmt.Printf("\nDescending Order (%s numbers)\n\n", sa.FormatCount(len(last.Sorted)))
		fmt.Println(sa.FormatDataset(last.Sorted, toolConfig.ItemsPerLine))
	}

	if *outPath != "" {
		path, err := sa.Export(*outPath, last)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Printf("Saved %s numbers to %s (algorithm used: %s)", sa.FormatCount(len(last.Sorted)), path, last.Algorithm)
	}
}
