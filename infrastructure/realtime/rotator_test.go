package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexRecorder collects onChange callbacks for assertions.
type indexRecorder struct {
	mu      sync.Mutex
	indexes []int
}

func (rec *indexRecorder) record(index int) {
	rec.mu.Lock()
	rec.indexes = append(rec.indexes, index)
	rec.mu.Unlock()
}

func (rec *indexRecorder) snapshot() []int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]int, len(rec.indexes))
	copy(out, rec.indexes)
	return out
}

func (rec *indexRecorder) waitFor(t *testing.T, n int, timeout time.Duration) []int {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		got := rec.snapshot()
		if len(got) >= n {
			return got
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d ticks, got %v", n, rec.snapshot())
	return nil
}

func TestRotator_TicksWrapAround(t *testing.T) {
	rec := &indexRecorder{}
	r := NewRotator(15*time.Millisecond, rec.record)
	defer r.Stop()

	r.Reset(3)
	got := rec.waitFor(t, 4, 2*time.Second)

	assert.Equal(t, []int{1, 2, 0, 1}, got[:4])
}

func TestRotator_EmptyListArmsNoTimer(t *testing.T) {
	rec := &indexRecorder{}
	r := NewRotator(5*time.Millisecond, rec.record)
	defer r.Stop()

	r.Reset(0)
	assert.False(t, r.Running())

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 0, r.Next())
	assert.Equal(t, 0, r.Prev())
}

func TestRotator_ManualNavigation(t *testing.T) {
	r := NewRotator(time.Hour, nil)
	defer r.Stop()

	r.Reset(4)
	require.Equal(t, 0, r.Index())

	assert.Equal(t, 1, r.Next())
	assert.Equal(t, 2, r.Next())
	assert.Equal(t, 1, r.Prev())
	assert.Equal(t, 0, r.Prev())
	assert.Equal(t, 3, r.Prev()) // wraps backwards
	assert.Equal(t, 2, r.Jump(6))
	assert.Equal(t, 3, r.Jump(-1))
}

func TestRotator_ManualNavRestartsInterval(t *testing.T) {
	rec := &indexRecorder{}
	r := NewRotator(300*time.Millisecond, rec.record)
	defer r.Stop()

	r.Reset(5)
	// keep stepping faster than the interval; no tick should fire in between
	for i := 0; i < 5; i++ {
		r.Next()
		time.Sleep(10 * time.Millisecond)
	}

	got := rec.snapshot()
	assert.Equal(t, []int{1, 2, 3, 4, 0}, got)
}

func TestRotator_StopIsIdempotent(t *testing.T) {
	r := NewRotator(10*time.Millisecond, nil)
	r.Reset(3)
	require.True(t, r.Running())

	r.Stop()
	assert.False(t, r.Running())
	r.Stop()
	assert.False(t, r.Running())
}

func TestRotator_ResetRewindsToZero(t *testing.T) {
	r := NewRotator(time.Hour, nil)
	defer r.Stop()

	r.Reset(5)
	r.Jump(4)
	require.Equal(t, 4, r.Index())

	r.Reset(2)
	assert.Equal(t, 0, r.Index())
	assert.True(t, r.Running())
}

func TestRotator_StaleLoopDoesNotAdvance(t *testing.T) {
	rec := &indexRecorder{}
	r := NewRotator(20*time.Millisecond, rec.record)
	defer r.Stop()

	r.Reset(3)
	r.Stop()
	before := len(rec.snapshot())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, before, len(rec.snapshot()))
	assert.Equal(t, 0, r.Index())
}
