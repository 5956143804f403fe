package main

import (
	"flag"
	"log"
	"os"

	sa "nickandperla.net/sort_analyzer"
)

/*
	Write a random dataset for the other tools to load.

	Values are drawn uniformly from [min, max] and written one per line.
	A fixed -seed reproduces the same file.
*/

var count *int = flag.Int("n", 10000, "How many numbers to generate")
var lower *int = flag.Int("min", -100000, "Smallest value")
var upper *int = flag.Int("max", 100000, "Largest value")
var seed *int64 = flag.Int64("seed", 0, "Random seed. 0 picks one from the clock")
var outPath *string = flag.String("out", "dataset.txt", "The file to write")

func main() {
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("-n must be positive, got %d", *count)
	}

	sa.InitRNG(*seed)
	data := sa.RandomDataset(*count, *lower, *upper)

	outfile, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Unable to create %s: %v", *outPath, err)
	}

	if err := sa.WriteValues(outfile, data); err != nil {
		outfile.Close()
		log.Fatalf("Failed to write dataset: %v", err)
	}
	if err := outfile.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *outPath, err)
	}

	log.Printf("Wrote %s numbers to %s", sa.FormatCount(data.Len()), *outPath)
}
