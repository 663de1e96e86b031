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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

var serviceTracer = otel.Tracer("aleutian.lint.service")

// ServiceConfig configures the lint service.
type ServiceConfig struct {
	// Options are the default rule options; per-request overrides win.
	Options naming.Options

	// MaxFileSize is the largest source file accepted, in bytes.
	MaxFileSize int

	// WorkerCount bounds concurrent file checks in path runs.
	WorkerCount int

	// Extensions lists the file extensions treated as JavaScript.
	Extensions []string
}

// DefaultServiceConfig returns a config with the standard defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Options:     naming.DefaultOptions(),
		MaxFileSize: 10 * 1024 * 1024,
		WorkerCount: 4,
		Extensions:  []string{".js", ".mjs", ".cjs", ".jsx"},
	}
}

// Service orchestrates parsing and checking of JavaScript sources.
//
// Description:
//
//	The service owns a parser and the default rule options. Single-source
//	checks run inline; path checks walk the tree and fan out across a
//	bounded worker group. Each checked tree is closed before the call
//	returns, so no C allocations outlive a run.
//
// Thread Safety: Safe for concurrent use.
type Service struct {
	config ServiceConfig
	parser *ast.JavaScriptParser
}

// NewService creates a lint service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultServiceConfig().WorkerCount
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultServiceConfig().MaxFileSize
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultServiceConfig().Extensions
	}
	cfg.Options = cfg.Options.Normalize()

	return &Service{
		config: cfg,
		parser: ast.NewJavaScriptParser(ast.WithMaxFileSize(cfg.MaxFileSize)),
	}
}

// Options returns the service's default rule options.
func (s *Service) Options() naming.Options {
	return s.config.Options
}

// CheckSource checks one in-memory source with the service defaults.
func (s *Service) CheckSource(ctx context.Context, content []byte, filePath string) (FileReport, error) {
	return s.CheckSourceWithOptions(ctx, content, filePath, s.config.Options)
}

// CheckSourceWithOptions checks one in-memory source.
//
// Description:
//
//	Parses the content, runs the naming engine over the tree, and closes
//	the tree before returning. Parse failures are returned as errors, not
//	folded into the report; callers decide how to surface them.
//
// Inputs:
//
//	ctx      - Context for cancellation.
//	content  - Raw JavaScript source bytes.
//	filePath - Label for violation locations. Defaults to "<input>".
//	opts     - Rule options for this check.
//
// Outputs:
//
//	FileReport - Per-file result with violations in source order.
//	error      - Non-nil on parse failure or cancellation.
//
// Thread Safety: This method is safe for concurrent use.
func (s *Service) CheckSourceWithOptions(ctx context.Context, content []byte, filePath string, opts naming.Options) (FileReport, error) {
	if filePath == "" {
		filePath = "<input>"
	}

	ctx, span := serviceTracer.Start(ctx, "lint.check_source",
		trace.WithAttributes(
			attribute.String("file.path", filePath),
			attribute.Int("file.bytes", len(content)),
		))
	defer span.End()

	start := time.Now()

	tree, err := s.parser.Parse(ctx, content, filePath)
	if err != nil {
		fileErrorsTotal.Inc()
		return FileReport{}, fmt.Errorf("checking %s: %w", filePath, err)
	}
	defer tree.Close()

	engine := naming.NewEngine(opts)
	violations, err := engine.Run(ctx, tree)
	if err != nil {
		fileErrorsTotal.Inc()
		return FileReport{}, err
	}

	filesCheckedTotal.Inc()
	checkDurationSeconds.Observe(time.Since(start).Seconds())
	for _, v := range violations {
		violationsTotal.WithLabelValues(v.Role).Inc()
	}

	if violations == nil {
		violations = []naming.Violation{}
	}
	span.SetAttributes(attribute.Int("violations.count", len(violations)))

	return FileReport{
		FilePath:   filePath,
		Hash:       tree.Hash,
		Violations: violations,
	}, nil
}

// CheckFile checks a single file on disk.
func (s *Service) CheckFile(ctx context.Context, path string, opts naming.Options) (FileReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		fileErrorsTotal.Inc()
		return FileReport{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.CheckSourceWithOptions(ctx, content, path, opts)
}

// CheckPath checks a file or directory tree.
//
// Description:
//
//	Walks the path collecting files with configured extensions, then
//	checks them across a bounded worker group. Per-file failures are
//	recorded in the report rather than aborting the run; only walk
//	failures and cancellation return an error. Results are ordered by
//	file path regardless of completion order.
//
// Inputs:
//
//	ctx  - Context for cancellation. Cancels in-flight file checks.
//	root - A file or directory path.
//	opts - Rule options for this run.
//
// Outputs:
//
//	*Report - The aggregate report. Never nil on success.
//	error   - Non-nil on walk failure or cancellation.
//
// Thread Safety: This method is safe for concurrent use.
func (s *Service) CheckPath(ctx context.Context, root string, opts naming.Options) (*Report, error) {
	runID := uuid.NewString()

	ctx, span := serviceTracer.Start(ctx, "lint.check_path",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("root", root),
		))
	defer span.End()

	start := time.Now()
	logger := slog.With(slog.String("run_id", runID))

	files, err := s.collectFiles(root)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		reports = make([]FileReport, 0, len(files))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.WorkerCount)

	for _, path := range files {
		g.Go(func() error {
			report, err := s.CheckFile(gctx, path, opts)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// Unparseable files stay in the report so the caller sees
				// what was skipped.
				report = FileReport{
					FilePath:   path,
					Violations: []naming.Violation{},
					Error:      err.Error(),
				}
			}
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check run %s: %w", runID, err)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].FilePath < reports[j].FilePath
	})

	total := 0
	checked := 0
	for _, r := range reports {
		total += len(r.Violations)
		if r.Error == "" {
			checked++
		}
	}

	elapsed := time.Since(start)
	logger.Info("check run complete",
		slog.String("root", root),
		slog.Int("files", checked),
		slog.Int("violations", total),
		slog.Duration("elapsed", elapsed),
	)
	span.SetAttributes(
		attribute.Int("files.checked", checked),
		attribute.Int("violations.count", total),
	)

	return &Report{
		RunID:          runID,
		Files:          reports,
		FilesChecked:   checked,
		ViolationCount: total,
		DurationMillis: elapsed.Milliseconds(),
	}, nil
}

// collectFiles returns the source files under root with a configured
// extension. A root that is itself a file is returned as-is.
func (s *Service) collectFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// node_modules trees are third-party code, not lint targets.
			if d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if s.matchesExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// matchesExtension reports whether the path carries a configured extension.
func (s *Service) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.config.Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
