package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with freshly loaded settings after the watched
// file changes. A load failure keeps the previous settings and the
// handler is not called.
type Handler func(Settings)

// Watcher reloads a settings file when it changes on disk. Writes are
// debounced so an editor's save sequence triggers a single reload.
type Watcher struct {
	mu sync.RWMutex

	path     string
	dir      string
	debounce time.Duration
	handlers []Handler

	fw      *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a change is delivered.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for the settings file at path. The
// parent directory is watched rather than the file itself so the
// watch survives editors replacing the file on save.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// OnReload registers a handler for reloaded settings.
func (w *Watcher) OnReload(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins watching. It is a no-op if the watcher is running.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return err
	}

	w.fw = fw
	w.done = make(chan struct{})
	w.running = true

	w.wg.Add(1)
	go w.loop(fw, w.done)
	return nil
}

// Stop stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	w.fw.Close()
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// loop consumes filesystem events, debouncing bursts into one reload.
func (w *Watcher) loop(fw *fsnotify.Watcher, done chan struct{}) {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-done:
			return

		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			w.reload()

		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// reload loads the file and fans out to handlers on success.
func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		return
	}

	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, handler := range handlers {
		handler(s)
	}
}
