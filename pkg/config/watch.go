package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the global configuration when the config file changes
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching the given config file. onReload is invoked after
// every reload attempt with the reload result.
func Watch(path string, onReload func(error)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", path, err)
	}

	w := &Watcher{
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go w.run(onReload)

	return w, nil
}

func (w *Watcher) run(onReload func(error)) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				onReload(Reload())
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
