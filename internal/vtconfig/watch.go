package vtconfig

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/vtmux/internal/vtlog"
)

// watchDebounce coalesces bursts of filesystem events (editors often write
// a file via a temp-file-then-rename) into a single reload.
const watchDebounce = 150 * time.Millisecond

// Watcher reloads a config file when it changes on disk, grounded on the
// teacher's internal/app.stateWatcher debounce pattern.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	dir  string

	onChange func(*Config)

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching path's directory (so create-via-rename is caught)
// and invokes onChange with the freshly loaded Config whenever path is
// written. The returned Watcher must be closed by the caller.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, path: filepath.Clean(path), dir: dir, onChange: onChange}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(watchDebounce, w.fire)
	} else {
		w.timer.Reset(watchDebounce)
	}
}

func (w *Watcher) fire() {
	cfg, err := Load(w.path)
	if err != nil {
		vtlog.WithError(err, "config reload failed: "+w.path)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
