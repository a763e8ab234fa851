package remote

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRemote struct {
	mu       sync.Mutex
	pushed   []string
	failOn   string
	inFlight atomic.Int32
	peak     atomic.Int32
	block    chan struct{}
}

func (r *recordingRemote) Push(ctx context.Context, file string) error {
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if r.block != nil {
		<-r.block
	}

	if file == r.failOn {
		return fmt.Errorf("upload %s failed", file)
	}
	r.mu.Lock()
	r.pushed = append(r.pushed, file)
	r.mu.Unlock()
	return nil
}

func (r *recordingRemote) Remove(context.Context, string) error { return nil }

func (r *recordingRemote) LockExists(context.Context) (bool, error) { return false, nil }

func (r *recordingRemote) PushMarker(context.Context, string) error { return nil }

func TestExtend_PushesEveryFile(t *testing.T) {
	r := &recordingRemote{}
	files := []string{"/r/a", "/r/b", "/r/c", "/r/d"}

	require.NoError(t, Extend(context.Background(), r, files, 2))

	sort.Strings(r.pushed)
	assert.Equal(t, files, r.pushed)
}

func TestExtend_RespectsJobLimit(t *testing.T) {
	r := &recordingRemote{block: make(chan struct{})}
	files := make([]string, 8)
	for i := range files {
		files[i] = fmt.Sprintf("/r/%d", i)
	}

	done := make(chan error, 1)
	go func() { done <- Extend(context.Background(), r, files, 3) }()
	for range files {
		r.block <- struct{}{}
	}

	require.NoError(t, <-done)
	assert.LessOrEqual(t, r.peak.Load(), int32(3))
	assert.Len(t, r.pushed, len(files))
}

func TestExtend_ReturnsFirstError(t *testing.T) {
	r := &recordingRemote{failOn: "/r/bad"}

	err := Extend(context.Background(), r, []string{"/r/ok", "/r/bad"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/r/bad")
}

func TestExtend_CancelledContext(t *testing.T) {
	r := &recordingRemote{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Extend(ctx, r, []string{"/r/a"}, 0)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, r.pushed)
}

func TestExtend_NoFiles(t *testing.T) {
	assert.NoError(t, Extend(context.Background(), &recordingRemote{}, nil, 4))
}

var _ Remote = (*MegaCmd)(nil)
