package sort_analyzer

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// lockedRand guards a single *rand.Rand.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Uint64n returns a value in [0, n). n == 0 means the whole uint64 range.
func (lr *lockedRand) Uint64n(n uint64) uint64 {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if n == 0 {
		return lr.r.Uint64()
	}
	if n <= math.MaxInt64 {
		return uint64(lr.r.Int63n(int64(n)))
	}
	for {
		if v := lr.r.Uint64(); v < n {
			return v
		}
	}
}

var rng *lockedRand = newLockedRand(time.Now().UnixNano())

// InitRNG seeds the package-level rng used by RandomDataset. If seed is 0,
// the current time is used (non-deterministic).
func InitRNG(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = newLockedRand(seed)
}

const (
	DEBUG = false

	DefaultExportFilename = "sorted_data.txt"
	ExportExtension       = ".txt"
	DefaultPreviewCount   = 20
	DefaultItemsPerLine   = 10
	DefaultConfigPath     = "./config.toml"

	MinCompareAlgorithms = 2
	MaxCompareAlgorithms = 4

	// smetrics.WagnerFischer distance above which no suggestion is offered
	maxSuggestionDistance = 4
)

const (
	BubbleClassic Algorithm = iota + 1
	BubbleOptimized
	Insertion
	Merge
)

// AllAlgorithms lists every variant in menu order.
var AllAlgorithms = []Algorithm{
	BubbleClassic,
	BubbleOptimized,
	Insertion,
	Merge,
}

// SizeOptions are the dataset size filters offered by the front-ends.
var SizeOptions = []string{"All", "1,000", "5,000", "10,000", "20,000", "50,000", "100,000"}
