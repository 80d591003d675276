// SPDX-License-Identifier: MIT
package arith

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatch is returned when a file can't be watched.
var ErrWatch = errors.New("failed to watch")

// Watch lexes the file at path, then again whenever it is written, passing each Result to fn.
//
// The parent directory is watched as editors tend to replace files on save.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, cfg *Config, path string, fn func(Result)) (err error) {
	if cfg == nil {
		cfg = DefConfig()
	}
	cfg.Validate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrWatch, path, err)
		return
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrWatch, path, err)
		return
	}

	fn(lexFile(ctx, cfg, path))

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			cfg.Logger.WithField("file", path).Debugf("watch event: %s", ev.Op)
			fn(lexFile(ctx, cfg, path))
		case werr, ok := <-watcher.Errors:
			if !ok {
				return
			}
			cfg.Logger.WithError(werr).Warn("watch failure")
		}
	}
}

func lexFile(ctx context.Context, cfg *Config, path string) Result {
	src, err := readSource(path)
	if err != nil {
		return Result{Source: Source{Filename: path}, Err: err}
	}

	return lex(ctx, cfg, src)
}
