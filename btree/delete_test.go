package btree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sevenKeys builds L0: [3 6], L1: [1 2] [4 5] [7] with degree 2.
func sevenKeys(t *testing.T) (*Tree[int, int], *Visualizer[int, int]) {
	t.Helper()
	tree := newIntTree(t, 2)
	for _, k := range sequence(1, 7) {
		tree.Insert(k, k*10)
	}
	v := &Visualizer[int, int]{Tree: tree}
	require.Equal(t, "L0: [3 6]\nL1: [1 2] [4 5] [7]\n", v.Visualize())
	return tree, v
}

func TestDeleteAbsentKeyIsNoop(t *testing.T) {
	t.Parallel()

	tree, v := sevenKeys(t)
	before := v.Visualize()

	_, ok := tree.Delete(42)
	assert.False(t, ok)
	assert.Equal(t, before, v.Visualize())
	assert.Equal(t, 7, tree.Len())

	// deleting twice is the same as deleting once
	val, ok := tree.Delete(4)
	assert.True(t, ok)
	assert.Equal(t, 40, val)
	after := v.Visualize()

	_, ok = tree.Delete(4)
	assert.False(t, ok)
	assert.Equal(t, after, v.Visualize())
	assert.Equal(t, 6, tree.Len())
	assert.NoError(t, tree.Verify())
}

func TestDeleteFromEmptyTree(t *testing.T) {
	t.Parallel()

	tree := newIntTree(t, 2)
	_, ok := tree.Delete(1)
	assert.False(t, ok)
	assert.NoError(t, tree.Verify())
}

func TestDeleteLowKeysInOrder(t *testing.T) {
	t.Parallel()

	tree, v := sevenKeys(t)

	// plain leaf removal
	_, ok := tree.Delete(1)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [3 6]\nL1: [2] [4 5] [7]\n", v.Visualize())

	// leaf underflows and borrows from its right sibling
	_, ok = tree.Delete(2)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [4 6]\nL1: [3] [5] [7]\n", v.Visualize())

	// right sibling can't lend, so the two merge around the separator
	_, ok = tree.Delete(3)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [6]\nL1: [4 5] [7]\n", v.Visualize())

	assert.False(t, tree.Contains(1))
	assert.Equal(t, []int{4, 5, 6, 7}, tree.keys())
}

func TestDeleteBorrowAndMergeLeft(t *testing.T) {
	t.Parallel()

	tree, v := sevenKeys(t)

	// rightmost leaf has no right sibling, so it borrows from the left
	_, ok := tree.Delete(7)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [3 5]\nL1: [1 2] [4] [6]\n", v.Visualize())

	// now the left sibling can't lend and gets merged in front
	_, ok = tree.Delete(6)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [3]\nL1: [1 2] [4 5]\n", v.Visualize())
	assert.Equal(t, 3, tree.live, "the absorbed sibling is released")
}

func TestDeleteInternalKeyUsesPredecessor(t *testing.T) {
	t.Parallel()

	tree, v := sevenKeys(t)

	val, ok := tree.Delete(6)
	require.True(t, ok)
	assert.Equal(t, 60, val, "the removed value is the internal entry's, not the replacement's")
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [3 5]\nL1: [1 2] [4] [7]\n", v.Visualize())

	// the replacement carries its own value up
	got, err := tree.Find(5)
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	val, ok = tree.Delete(3)
	require.True(t, ok)
	assert.Equal(t, 30, val)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [2 5]\nL1: [1] [4] [7]\n", v.Visualize())
}

func TestDeleteInternalKeyWithUnderflow(t *testing.T) {
	t.Parallel()

	tree, v := sevenKeys(t)
	tree.Delete(5)
	require.Equal(t, "L0: [3 6]\nL1: [1 2] [4] [7]\n", v.Visualize())

	// predecessor 4 leaves its leaf empty; [7] can't lend, so [1 2] does
	_, ok := tree.Delete(6)
	require.True(t, ok)
	require.NoError(t, tree.Verify())
	assert.Equal(t, "L0: [2 4]\nL1: [1] [3] [7]\n", v.Visualize())
}

func TestDeleteCollapsesRoot(t *testing.T) {
	t.Parallel()

	tree := newIntTree(t, 2)
	for _, k := range sequence(1, 4) {
		tree.Insert(k, k)
	}
	require.Equal(t, 2, tree.Height())

	tree.Delete(1)
	tree.Delete(2)

	require.NoError(t, tree.Verify())
	assert.Equal(t, 1, tree.Height())
	assert.True(t, tree.root.isLeaf())
	assert.Equal(t, []int{3, 4}, keysOf(tree.root))
	assert.Equal(t, 1, tree.live)
}

func TestDeleteCascadingMerges(t *testing.T) {
	t.Parallel()

	tree := newIntTree(t, 2)
	for _, k := range sequence(1, 100) {
		tree.Insert(k, k)
	}
	height := tree.Height()
	require.Greater(t, height, 3)

	// removing from the front keeps forcing merges that reach the root
	for _, k := range sequence(1, 99) {
		_, ok := tree.Delete(k)
		require.True(t, ok)
		require.NoError(t, tree.Verify(), "after deleting %d", k)
		assert.LessOrEqual(t, tree.Height(), height)
	}
	assert.Equal(t, []int{100}, tree.keys())
	assert.Equal(t, 1, tree.Height())
}

func TestDeleteShrinksToEmpty(t *testing.T) {
	t.Parallel()

	for _, degree := range []int{2, 5} {
		for _, n := range []int{0, 1, degree, degree + 1, 1000} {
			degree, n := degree, n
			t.Run(fmt.Sprintf("degree=%d/n=%d", degree, n), func(t *testing.T) {
				t.Parallel()

				tree := newIntTree(t, degree)
				keys := sequence(1, n)

				for _, k := range shuffled(keys, int64(n)) {
					tree.Insert(k, k)
				}
				require.NoError(t, tree.Verify())
				require.Equal(t, n, tree.Len())

				for _, k := range shuffled(keys, int64(n)+1) {
					_, ok := tree.Delete(k)
					require.True(t, ok, "key %d", k)
					require.NoError(t, tree.Verify(), "after deleting %d", k)
					require.False(t, tree.Contains(k))
				}

				assert.Equal(t, 0, tree.Len())
				assert.Equal(t, 1, tree.Height())
				assert.True(t, tree.root.isLeaf())
				assert.Empty(t, tree.root.items)
				assert.Equal(t, 1, tree.live, "every other node was released")
			})
		}
	}
}

func TestDeleteRandomWorkload(t *testing.T) {
	t.Parallel()

	for _, degree := range []int{2, 3, 4, 7} {
		degree := degree
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			t.Parallel()

			tree := newIntTree(t, degree, WithFreeListSize(4))
			rng := rand.New(rand.NewSource(int64(degree) * 7919))
			want := make(map[int]int)

			for i := 0; i < 5000; i++ {
				k := rng.Intn(300)
				if rng.Intn(3) == 0 {
					val, ok := tree.Delete(k)
					expected, present := want[k]
					require.Equal(t, present, ok, "delete %d", k)
					if present {
						require.Equal(t, expected, val)
					}
					delete(want, k)
				} else {
					tree.Insert(k, i)
					want[k] = i
				}
				require.NoError(t, tree.Verify(), "step %d", i)
			}

			assert.Equal(t, len(want), tree.Len())
			for k, v := range want {
				got, ok := tree.Search(k)
				require.True(t, ok)
				assert.Equal(t, v, got)
			}
		})
	}
}
