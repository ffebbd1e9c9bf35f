package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpString(t *testing.T) {
	ops := map[Op]string{
		Create: "Create",
		Write:  "Write",
		Remove: "Remove",
		Rename: "Rename",
		Op(99): "Unknown",
	}
	for op, want := range ops {
		if op.String() != want {
			t.Errorf("Op(%d).String() = %s, want %s", op, op.String(), want)
		}
	}
}

func TestWatcherEmitsDebouncedEvent(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{".git"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	path := filepath.Join(dir, "sample.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-events:
		if evt.Path != path {
			t.Errorf("event path = %s, want %s", evt.Path, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestWatcherShutdownDuringDebounce(t *testing.T) {
	// Cancelling right as a debounce timer fires must not crash the
	// emitting callback; the event channel stays open until every
	// in-flight callback has finished.
	dir := t.TempDir()

	for i := 0; i < 25; i++ {
		w := New(dir, nil)
		ctx, cancel := context.WithCancel(context.Background())

		events, err := w.Start(ctx)
		if err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(dir, "sample.py")
		if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
			t.Fatal(err)
		}

		time.Sleep(debounceWindow - time.Millisecond)
		cancel()

		// Drain until the loop closes the channel; a send after close
		// would panic here instead.
		for range events {
		}

		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w := New(t.TempDir(), nil)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
