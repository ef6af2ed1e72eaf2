// Package watch monitors a directory tree for source file changes and
// debounces bursts of editor writes into single notifications.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/connerohnesorge/docscribe/internal/discovery"
)

// defaultDebounce is the default debounce duration for file events.
// Editors often perform multiple writes in rapid succession.
const defaultDebounce = 150 * time.Millisecond

// Watcher monitors a directory tree using fsnotify with debouncing. It
// re-adds newly created subdirectories as they appear so a later
// `docscribe extract --watch` run also picks up files added after
// startup.
type Watcher struct {
	watcher    *fsnotify.Watcher
	root       string
	extensions map[string]bool
	events     chan string
	errors     chan error
	done       chan struct{}
	debounce   time.Duration
	mu         sync.Mutex
	closed     bool
}

// New creates a Watcher over root (a file or directory), notifying only
// for files whose extension (without the leading dot, case-insensitive)
// appears in extensions. A nil/empty extensions set matches every file.
func New(root string, extensions []string) (*Watcher, error) {
	return NewWithDebounce(root, extensions, defaultDebounce)
}

// NewWithDebounce is New with an explicit debounce window.
func NewWithDebounce(root string, extensions []string, debounce time.Duration) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	w := &Watcher{
		watcher:    fsWatcher,
		root:       absRoot,
		extensions: extSet,
		events:     make(chan string, 16),
		errors:     make(chan error, 1),
		done:       make(chan struct{}),
		debounce:   debounce,
	}

	watchDir := absRoot
	if !info.IsDir() {
		watchDir = filepath.Dir(absRoot)
	}
	if err := w.addTree(watchDir); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	go w.loop()

	return w, nil
}

// addTree registers dir and every non-skipped subdirectory with fsnotify.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && discovery.ShouldSkipDirectory(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Events returns a channel that receives the changed file's path each
// time a matching file is created or written, debounced so a burst of
// writes to the same file collapses to one notification.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors returns a channel that receives errors from the underlying
// fsnotify watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources. Safe to call multiple
// times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	pending := make(map[string]*time.Timer)

	fire := make(chan string, 16)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, pending, fire)

		case path := <-fire:
			delete(pending, path)
			w.sendEvent(path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, pending map[string]*time.Timer, fire chan<- string) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if !w.matches(event.Name) {
		return
	}

	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		_ = w.addTree(event.Name)
		return
	}

	if t, ok := pending[event.Name]; ok {
		if !t.Stop() {
			select {
			case <-t.C:
			default:
			}
		}
		t.Reset(w.debounce)
		return
	}

	path := event.Name
	pending[path] = time.AfterFunc(w.debounce, func() {
		fire <- path
	})
}

func (w *Watcher) matches(path string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return w.extensions[ext]
}

func (w *Watcher) sendEvent(path string) {
	select {
	case w.events <- path:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
