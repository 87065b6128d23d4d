package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// settleDelay lets a burst of writes to one file land before converting it.
const settleDelay = 100 * time.Millisecond

// ConvertFunc receives the outcome of every conversion made while watching.
type ConvertFunc func(report tt.Report, err error)

// StartWatching converts source files under dirs whenever they are written.
func (e *Engine) StartWatching(dirs []string, notify ConvertFunc) error {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()

	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		if _, err := e.watchTree(watcher, dir); err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = watcher
	e.isWatching = true
	e.done = make(chan struct{})
	go e.watchLoop(watcher, e.done, notify)
	return nil
}

// StopWatching stops the watcher and waits for its loop to exit.
func (e *Engine) StopWatching() error {
	e.watchMu.Lock()
	defer e.watchMu.Unlock()

	if !e.isWatching {
		e.logger.Warn("not watching")
		return nil
	}

	e.isWatching = false
	err := e.watcher.Close()
	<-e.done
	return err
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher, done chan struct{}, notify ConvertFunc) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(watcher, event, notify)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("watch error", zap.Error(err))
		}
	}
}

// watchTree adds dir and every directory below it to watcher and returns
// the source files already present.
func (e *Engine) watchTree(watcher *fsnotify.Watcher, dir string) ([]string, error) {
	var sources []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		if e.isWatchedSource(path) {
			sources = append(sources, path)
		}
		return nil
	})
	return sources, err
}

func (e *Engine) isWatchedSource(path string) bool {
	return HasSourceExtension(path) && !e.IsOutput(path)
}

func (e *Engine) handleFileEvent(watcher *fsnotify.Watcher, event fsnotify.Event, notify ConvertFunc) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	// a new directory may already hold sources written before its watch was added
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			sources, err := e.watchTree(watcher, event.Name)
			if err != nil {
				e.logger.Error("error watching new directory", zap.String("path", event.Name), zap.Error(err))
			}
			time.Sleep(settleDelay)
			for _, path := range sources {
				e.convertWatched(path, notify)
			}
			return
		}
	}

	if !e.isWatchedSource(event.Name) {
		return
	}
	time.Sleep(settleDelay)
	e.convertWatched(event.Name, notify)
}

func (e *Engine) convertWatched(path string, notify ConvertFunc) {
	report, err := e.Run(path)
	if err != nil {
		e.logger.Error("conversion failed", zap.String("path", path), zap.Error(err))
	} else {
		e.logger.Info("converted",
			zap.String("path", path),
			zap.String("output", report.Output),
			zap.Bool("cached", report.Cached),
		)
	}
	if notify != nil {
		notify(report, err)
	}
}
