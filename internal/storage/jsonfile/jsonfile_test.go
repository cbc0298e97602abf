package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salamtec/inventory-service/internal/storage"
)

type testDoc struct {
	Counter int      `json:"counter"`
	Items   []string `json:"items"`
}

func newStore(t *testing.T, timeout time.Duration) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir, timeout)
	require.NoError(t, err)
	return s, dir
}

func TestLoadMissingCollectionLeavesDefault(t *testing.T) {
	s, _ := newStore(t, time.Second)
	doc := testDoc{Counter: 7, Items: []string{"keep"}}
	require.NoError(t, s.Load(context.Background(), "nothing", &doc))
	assert.Equal(t, 7, doc.Counter)
	assert.Equal(t, []string{"keep"}, doc.Items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, dir := newStore(t, time.Second)
	ctx := context.Background()

	in := testDoc{Counter: 3, Items: []string{"a", "b"}}
	require.NoError(t, s.Save(ctx, "doc", &in))

	var out testDoc
	require.NoError(t, s.Load(ctx, "doc", &out))
	assert.Equal(t, in, out)

	// Written pretty-printed, no temp file left behind.
	raw, err := os.ReadFile(filepath.Join(dir, "doc.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "\n    \"counter\": 3"))
	_, err = os.Stat(filepath.Join(dir, "doc.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateTimesOutWithBusy(t *testing.T) {
	s, _ := newStore(t, 50*time.Millisecond)
	ctx := context.Background()

	held := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = s.Update(ctx, "doc", func(ctx context.Context) error {
			close(held)
			<-done
			return nil
		})
	}()
	<-held
	defer close(done)

	err := s.Update(ctx, "doc", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, storage.ErrBusy)
}

func TestLocksArePerCollection(t *testing.T) {
	s, _ := newStore(t, 50*time.Millisecond)
	ctx := context.Background()

	held := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = s.Update(ctx, "products", func(ctx context.Context) error {
			close(held)
			<-done
			return nil
		})
	}()
	<-held
	defer close(done)

	// A writer on a different collection is not blocked.
	err := s.Update(ctx, "notifications", func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}

func TestConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	s, _ := newStore(t, 5*time.Second)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			err := s.Update(ctx, "doc", func(ctx context.Context) error {
				var doc testDoc
				if err := s.Load(ctx, "doc", &doc); err != nil {
					return err
				}
				doc.Counter++
				return s.Save(ctx, "doc", &doc)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var doc testDoc
	require.NoError(t, s.Load(ctx, "doc", &doc))
	assert.Equal(t, writers, doc.Counter)
}
