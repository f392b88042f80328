package fs

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/myeongjunhyun/daygo/pkg/core"
)

func TestWatchEmitsOnExternalModification(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.SaveAll(context.Background(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Give the watcher a moment to arm before the external write.
	time.Sleep(100 * time.Millisecond)

	// Simulate another process rewriting the document.
	require.NoError(t, os.WriteFile(repo.documentPath(), []byte("[]"), 0644))

	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed early")
		require.Equal(t, core.EventModify, e.Type)
		require.Equal(t, DefaultDocument, e.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("no event received for external modification")
	}
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(repo.Path+"/notes.txt", []byte("hi"), 0644))

	select {
	case e := <-events:
		t.Fatalf("unexpected event for unrelated file: %v", e)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// Drain a possible straggler, then expect closure.
			select {
			case _, ok = <-events:
				require.False(t, ok)
			case <-time.After(5 * time.Second):
				t.Fatal("events channel not closed after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}
