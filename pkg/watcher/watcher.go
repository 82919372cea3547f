// Package watcher triggers rebuild callbacks when watched mesh files
// change on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches files for changes and invokes a callback per file.
// Rapid event bursts (editors often write a file several times in a
// row) are collapsed by a debounce window
type Watcher struct {
	fs        *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// New creates a watcher with the given debounce window
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fs:        fs,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers files; the callback runs whenever one of them is
// written or recreated
func (w *Watcher) Watch(files []string, callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := w.fs.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		w.callbacks[absPath] = callback
	}

	return nil
}

// Start begins delivering change events in a background goroutine
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					w.fileChanged(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// fileChanged schedules the debounced callback for a changed file
func (w *Watcher) fileChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}
