package btree

import (
	"math/rand"
	"os"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newIntTree(t *testing.T, degree int, opts ...Option) *Tree[int, int] {
	t.Helper()
	tree, err := New[int, int](degree, opts...)
	require.NoError(t, err)
	return tree
}

// keys reconstructs the key sequence through a full in-order traversal.
func (t *Tree[K, V]) keys() []K {
	var keys []K
	t.ascend(func(it item[K, V]) bool {
		keys = append(keys, it.key)
		return true
	})
	return keys
}

func sequence(from, to int) []int {
	keys := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func shuffled(keys []int, seed int64) []int {
	out := append([]int(nil), keys...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger keeps every call for later assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (r *recordingLogger) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, logEntry{level: level, msg: msg, args: args})
}

func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg, args) }

func (r *recordingLogger) Warn(msg string, args ...any) { r.record("warn", msg, args) }

func (r *recordingLogger) Info(msg string, args ...any) { r.record("info", msg, args) }

func (r *recordingLogger) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := make([]string, len(r.entries))
	for i, e := range r.entries {
		msgs[i] = e.msg
	}
	return msgs
}
