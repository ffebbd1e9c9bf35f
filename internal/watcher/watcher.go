// Package watcher emits debounced file system change events for watch mode.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op represents the type of file system operation.
type Op int

const (
	Create Op = iota
	Write
	Remove
	Rename
)

// String returns the string representation of Op.
func (op Op) String() string {
	switch op {
	case Create:
		return "Create"
	case Write:
		return "Write"
	case Remove:
		return "Remove"
	case Rename:
		return "Rename"
	default:
		return "Unknown"
	}
}

// Event represents a file system change event.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

const debounceWindow = 100 * time.Millisecond

// Watcher watches a directory tree for changes and emits debounced events.
// Editors produce bursts of writes per save; debouncing collapses each
// burst into one event per path.
type Watcher struct {
	root       string
	ignoreDirs map[string]bool

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	closed bool
}

// New creates a watcher for the given root directory. Directories whose
// base name appears in ignoreDirs are not descended into.
func New(root string, ignoreDirs []string) *Watcher {
	ignored := make(map[string]bool, len(ignoreDirs))
	for _, d := range ignoreDirs {
		ignored[d] = true
	}
	return &Watcher{
		root:       root,
		ignoreDirs: ignored,
	}
}

// Start begins watching and returns a channel of debounced events. The
// channel is closed when the context is cancelled or the watcher is closed.
func (w *Watcher) Start(ctx context.Context) (<-chan Event, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return nil, err
	}

	out := make(chan Event, 100)
	go w.eventLoop(ctx, fsw, out)
	return out, nil
}

// Close shuts down the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && w.ignoreDirs[info.Name()] {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) eventLoop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- Event) {
	var mu sync.Mutex
	pending := make(map[string]*time.Timer)

	// Every scheduled timer holds one inFlight slot until its callback
	// finishes or the timer is stopped before firing. The channel is
	// closed only after all slots are released, so a callback mid-send
	// can never race the close.
	var inFlight sync.WaitGroup

	defer func() {
		mu.Lock()
		for _, t := range pending {
			if t.Stop() {
				inFlight.Done()
			}
		}
		mu.Unlock()
		inFlight.Wait()
		close(out)
	}()

	emit := func(evt Event) {
		select {
		case out <- evt:
		case <-ctx.Done():
		}
	}

	schedule := func(evt Event) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := pending[evt.Path]; ok {
			if t.Stop() {
				inFlight.Done()
			}
		}
		inFlight.Add(1)
		pending[evt.Path] = time.AfterFunc(debounceWindow, func() {
			defer inFlight.Done()
			mu.Lock()
			delete(pending, evt.Path)
			mu.Unlock()
			emit(evt)
		})
	}

	for {
		select {
		case <-ctx.Done():
			return

		case fsEvent, ok := <-fsw.Events:
			if !ok {
				return
			}

			op, valid := convertOp(fsEvent.Op)
			if !valid {
				continue
			}

			// Newly created directories need watches of their own.
			if op == Create {
				if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
					if !w.ignoreDirs[info.Name()] {
						_ = w.addRecursive(fsEvent.Name)
					}
					continue
				}
			}

			schedule(Event{Path: fsEvent.Name, Op: op, Time: time.Now()})

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
			// Transient watch errors are ignored; watching continues.
		}
	}
}

func convertOp(op fsnotify.Op) (Op, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return Create, true
	case op.Has(fsnotify.Write):
		return Write, true
	case op.Has(fsnotify.Remove):
		return Remove, true
	case op.Has(fsnotify.Rename):
		return Rename, true
	default:
		return 0, false
	}
}
