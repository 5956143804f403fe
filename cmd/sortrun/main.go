package main

import (
	"flag"
	"log"
	"os"

	sa "nickandperla.net/sort_analyzer"
)

var toolConfigPath *string = flag.String("config", sa.DefaultConfigPath, "The config file for sort_analyzer tools to use. Defaults to './config.toml'")

var dataPath *string = flag.String("file", "", "The .txt file holding the integers to sort")
var algoName *string = flag.String("algo", "merge", "The algorithm to run: bubble, bubble-optimized, insertion or merge")
var sizeOption *string = flag.String("size", "", "Use only the first N numbers (e.g. 10,000). Overrides size_limit from the config")
var outPath *string = flag.String("out", "", "Write the sorted numbers to this file, one per line")

func main() {
	flag.Parse()

	toolConfig, err := sa.ResolveToolConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load sort_analyzer config: %v", err)
	}

	if *dataPath == "" {
		log.Fatalf("No data file given. Use -file <path>")
	}

	alg, err := sa.ParseAlgorithm(*algoName)
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
	log.Printf("Loaded %s numbers, sorting %s with %s", sa.FormatCount(full.Len()), sa.FormatCount(data.Len()), alg)

	result, err := sa.Sort(alg, data)
	if err != nil {
		log.Fatalf("Sort failed: %v", err)
	}

	sa.FormatResult(os.Stdout, result, toolConfig.PreviewCount)

	if *outPath != "" {
		path, err := sa.Export(*outPath, result)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Printf("Saved %s numbers to %s", sa.FormatCount(len(result.Sorted)), path)
	}
}
