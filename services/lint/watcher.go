// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lint

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

// watchDebounce is how long the watcher waits after the last filesystem
// event before re-running the check. Editors fire bursts of events per
// save; one run per burst is enough.
const watchDebounce = 300 * time.Millisecond

// Watcher re-checks a path whenever its JavaScript sources change.
//
// Description:
//
//	Wraps fsnotify over a file or directory tree. Events on files with a
//	configured extension arm a debounce timer; when it fires the full
//	path is re-checked and the report is delivered to the callback.
//	Directories created under the root are added to the watch as they
//	appear.
//
// Thread Safety: Run is single-use. Create a new Watcher per run.
type Watcher struct {
	service *Service
	root    string
	opts    naming.Options
}

// NewWatcher creates a watcher over root with the given rule options.
func NewWatcher(service *Service, root string, opts naming.Options) *Watcher {
	return &Watcher{service: service, root: root, opts: opts}
}

// Run watches until the context is canceled, delivering each report to
// onReport. An initial check runs before the first event.
//
// Inputs:
//
//	ctx      - Context for cancellation. Run returns ctx.Err() on cancel.
//	onReport - Called after every completed check, including the initial
//	           one. Must not be nil. Called from the watch goroutine.
//
// Outputs:
//
//	error - ctx.Err() on cancellation, or a watcher setup failure.
func (w *Watcher) Run(ctx context.Context, onReport func(*Report)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addWatchTargets(fsw); err != nil {
		return err
	}

	runCheck := func() {
		report, err := w.service.CheckPath(ctx, w.root, w.opts)
		if err != nil {
			if ctx.Err() == nil {
				slog.Warn("watch check failed",
					slog.String("root", w.root),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		onReport(report)
	}

	runCheck()

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	armed := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := fsw.Add(event.Name); err != nil {
						slog.Warn("failed to watch new directory",
							slog.String("path", event.Name),
							slog.String("error", err.Error()),
						)
					}
				}
			}
			if !w.service.matchesExtension(event.Name) {
				continue
			}
			if armed && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(watchDebounce)
			armed = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			slog.Warn("watcher error", slog.String("error", err.Error()))

		case <-debounce.C:
			armed = false
			runCheck()
		}
	}
}

// addWatchTargets registers the root and, for a directory root, every
// subdirectory. fsnotify watches directories, not globs.
func (w *Watcher) addWatchTargets(fsw *fsnotify.Watcher) error {
	info, err := os.Stat(w.root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", w.root, err)
	}
	if !info.IsDir() {
		if err := fsw.Add(filepath.Dir(w.root)); err != nil {
			return fmt.Errorf("watching %s: %w", w.root, err)
		}
		return nil
	}

	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
