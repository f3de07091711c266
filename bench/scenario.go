package bench

import (
	"errors"
	"fmt"
	"math/rand"

	"btree/btree"
)

// ErrScenario marks a failed Comprehensive check.
var ErrScenario = errors.New("scenario failed")

/*
Comprehensive drives one map tree through the full life cycle and stops at the first failed check:
 1. insert 1..n with value 10*k and check every key is present
 2. overwrite the middle key and check the new value
 3. delete a low key, which lives in an internal node once the tree has a few levels
 4. delete every other key in random order, checking each one is gone
 5. check the tree is back to a single empty leaf
*/
func Comprehensive(degree, n int, rng *rand.Rand, logger btree.Logger) error {
	if n < 1 {
		return fmt.Errorf("%w: need at least one record, got %d", ErrScenario, n)
	}
	if logger == nil {
		logger = btree.DiscardLogger{}
	}
	tree, err := btree.New[int, int](degree, btree.WithLogger(logger))
	if err != nil {
		return err
	}

	for k := 1; k <= n; k++ {
		tree.Insert(k, k*10)
	}
	for k := 1; k <= n; k++ {
		if v, ok := tree.Search(k); !ok || v != k*10 {
			return fmt.Errorf("%w: key %d missing after insertion", ErrScenario, k)
		}
	}
	logger.Info("scenario step passed", "step", "insert", "records", n)

	mid := (n + 1) / 2
	if old, replaced := tree.Insert(mid, 9999); !replaced || old != mid*10 {
		return fmt.Errorf("%w: overwrite of %d reported (%d, %t)", ErrScenario, mid, old, replaced)
	}
	if v, _ := tree.Search(mid); v != 9999 {
		return fmt.Errorf("%w: key %d holds %d after overwrite", ErrScenario, mid, v)
	}
	logger.Info("scenario step passed", "step", "overwrite", "key", mid)

	internal := min(10, n)
	tree.Delete(internal)
	if tree.Contains(internal) {
		return fmt.Errorf("%w: key %d still present after delete", ErrScenario, internal)
	}
	logger.Info("scenario step passed", "step", "internal delete", "key", internal)

	for _, k := range Permutation(n, rng) {
		if k == internal {
			continue
		}
		tree.Delete(k)
		if tree.Contains(k) {
			return fmt.Errorf("%w: key %d still present after delete", ErrScenario, k)
		}
	}
	if err := tree.Verify(); err != nil {
		return fmt.Errorf("%w: %w", ErrScenario, err)
	}
	logger.Info("scenario step passed", "step", "random delete", "records", n-1)

	if tree.Len() != 0 || tree.Height() != 1 || tree.Contains(1) {
		return fmt.Errorf("%w: tree not empty: %s", ErrScenario, tree)
	}
	logger.Info("scenario step passed", "step", "empty")
	return nil
}
