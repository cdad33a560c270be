package keymap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay is how long Watch waits for a burst of writes to settle
// before reloading.
const DefaultWatchDelay = 100 * time.Millisecond

// ReloadFunc receives the result of each reload. Exactly one of km and err
// is non-nil.
type ReloadFunc func(km *Keymap, err error)

// Watch reloads the keymap at path whenever it changes and passes the result
// to fn. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temporary file are handled.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	return WatchWithDelay(ctx, path, DefaultWatchDelay, fn)
}

// WatchWithDelay is Watch with an explicit settle delay.
func WatchWithDelay(ctx context.Context, path string, delay time.Duration, fn ReloadFunc) error {
	if _, err := FormatFromPath(path); err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	timer := time.NewTimer(delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != absPath {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(delay)

		case <-timer.C:
			km, err := Load(absPath)
			if err != nil {
				fn(nil, err)
				continue
			}
			km.Name = path
			fn(km, nil)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watching %s: %w", path, err))
		}
	}
}
