// Package shaderwatch reports edits to shader source files so pipelines can
// be rebuilt while a tutorial is running.
package shaderwatch

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"

	"gltutorials/logging"
)

// Watcher collects change notifications for a fixed set of files. Events
// arrive on a background goroutine; Changed is meant to be polled from the
// render thread.
type Watcher struct {
	fs    *fsnotify.Watcher
	files map[string]bool

	mu      sync.Mutex
	pending map[string]bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New starts watching the directories that contain paths. Only events for
// the listed files are reported; editors that save by rename are covered
// because the directory, not the file, is watched.
func New(paths []string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("shaderwatch: no files to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		files:   make(map[string]bool, len(paths)),
		pending: make(map[string]bool),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("shaderwatch: %w", err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("shaderwatch: watch %q: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.loop()
	logging.Logger().Debug("watching shader sources", "files", len(w.files), "dirs", len(dirs))
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[name] {
				continue
			}
			w.mu.Lock()
			w.pending[name] = true
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Logger().Warn("shader watcher error", "err", err)
		}
	}
}

// Changed returns the files modified since the previous call, sorted. It
// never blocks.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for name := range w.pending {
		out = append(out, name)
	}
	clear(w.pending)
	sort.Strings(out)
	return out
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
