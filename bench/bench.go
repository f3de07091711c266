// Package bench times B-tree workloads over random data. It is a smoke test for
// performance, not a statistically careful benchmark; see bench_test.go for those.
package bench

import (
	"cmp"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/go-faker/faker/v4"

	"btree/btree"
)

// Report holds the wall time of each phase of a run.
type Report struct {
	Degree  int
	Records int
	Height  int
	Insert  time.Duration
	Search  time.Duration
	Delete  time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf("degree=%d records=%d height=%d insert=%s search=%s delete=%s",
		r.Degree, r.Records, r.Height, r.Insert, r.Search, r.Delete)
}

// Pair is one generated record.
type Pair[K cmp.Ordered, V any] struct {
	Key K
	Val V
}

// Permutation returns 1..n in uniformly random order.
func Permutation(n int, rng *rand.Rand) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

// Words returns n records with distinct keys built from faker words.
func Words(n int) []Pair[string, string] {
	pairs := make([]Pair[string, string], 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; len(pairs) < n; i++ {
		k := faker.Word() + faker.Word()
		if _, dup := seen[k]; dup {
			// the word list is small, so disambiguate instead of retrying forever
			k += strconv.Itoa(i)
			if _, dup := seen[k]; dup {
				continue
			}
		}
		seen[k] = struct{}{}
		pairs = append(pairs, Pair[string, string]{Key: k, Val: faker.Word() + faker.Word()})
	}
	return pairs
}

// Run inserts a random permutation of 1..n, looks every key up, then deletes them all in another random order.
func Run(degree, n int, rng *rand.Rand, logger btree.Logger) (Report, error) {
	pairs := make([]Pair[int, int], n)
	for i, k := range Permutation(n, rng) {
		pairs[i] = Pair[int, int]{Key: k, Val: k * 10}
	}
	order := Permutation(n, rng)
	return measure(degree, pairs, order, logger)
}

// RunWords is Run over string records, deleted in reverse insertion order.
func RunWords(degree int, pairs []Pair[string, string], logger btree.Logger) (Report, error) {
	order := make([]string, len(pairs))
	for i, p := range pairs {
		order[len(pairs)-1-i] = p.Key
	}
	return measure(degree, pairs, order, logger)
}

func measure[K cmp.Ordered, V any](degree int, pairs []Pair[K, V], deleteOrder []K, logger btree.Logger) (Report, error) {
	if logger == nil {
		logger = btree.DiscardLogger{}
	}
	tree, err := btree.New[K, V](degree, btree.WithLogger(logger))
	if err != nil {
		return Report{}, err
	}
	report := Report{Degree: degree, Records: len(pairs)}

	start := time.Now()
	for _, p := range pairs {
		tree.Insert(p.Key, p.Val)
	}
	report.Insert = time.Since(start)
	report.Height = tree.Height()
	logger.Info("bench phase done", "phase", "insert", "records", len(pairs), "elapsed", report.Insert)

	if err := tree.Verify(); err != nil {
		return report, fmt.Errorf("after insert: %w", err)
	}

	start = time.Now()
	for _, p := range pairs {
		if !tree.Contains(p.Key) {
			return report, fmt.Errorf("search %v: %w", p.Key, btree.ErrKeyNotFound)
		}
	}
	report.Search = time.Since(start)
	logger.Info("bench phase done", "phase", "search", "records", len(pairs), "elapsed", report.Search)

	start = time.Now()
	for _, k := range deleteOrder {
		if _, ok := tree.Delete(k); !ok {
			return report, fmt.Errorf("delete %v: %w", k, btree.ErrKeyNotFound)
		}
	}
	report.Delete = time.Since(start)
	logger.Info("bench phase done", "phase", "delete", "records", len(deleteOrder), "elapsed", report.Delete)

	if tree.Len() != 0 {
		return report, fmt.Errorf("%d keys left after deleting all", tree.Len())
	}
	return report, tree.Verify()
}
