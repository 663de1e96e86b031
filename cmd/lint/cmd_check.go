// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianLint/services/lint"
	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

var (
	checkJSON       bool
	checkWatch      bool
	checkProperties string
	checkPropStyle  string
	checkIgnoreDest bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check JavaScript files for camel-case naming",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheckCommand,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit the report as JSON")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false, "Re-check on file changes (single path only)")
	checkCmd.Flags().StringVar(&checkProperties, "properties", "", "Property checking: always or never")
	checkCmd.Flags().StringVar(&checkPropStyle, "properties-style", "", "Property casing: all, lower, or upper")
	checkCmd.Flags().BoolVar(&checkIgnoreDest, "ignore-destructuring", false, "Skip self-bound destructuring names")
}

// Styles for human-readable output. Color is dropped when stdout is not a
// terminal so piped output stays clean.
var (
	locStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func runCheckCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := cfg.ToOptions()
	if cmd.Flags().Changed("properties") {
		opts.Properties = naming.PropertiesMode(checkProperties)
	}
	if cmd.Flags().Changed("properties-style") {
		opts.PropertiesStyle = naming.PropertyStyle(checkPropStyle)
	}
	if cmd.Flags().Changed("ignore-destructuring") {
		opts.IgnoreDestructuring = checkIgnoreDest
	}
	opts = opts.Normalize()

	shutdown, err := setupCLITelemetry()
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	service := lint.NewService(lint.ServiceConfig{
		Options:     opts,
		MaxFileSize: cfg.Engine.MaxFileSizeBytes,
		WorkerCount: cfg.Engine.WorkerCount,
		Extensions:  cfg.Engine.Extensions,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if checkWatch {
		if len(args) != 1 {
			return fmt.Errorf("--watch takes exactly one path")
		}
		watcher := lint.NewWatcher(service, args[0], opts)
		err := watcher.Run(ctx, func(report *lint.Report) {
			printReport(report)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	total := 0
	for _, path := range args {
		report, err := service.CheckPath(ctx, path, opts)
		if err != nil {
			return err
		}
		printReport(report)
		total += report.ViolationCount
	}

	if total > 0 {
		os.Exit(1)
	}
	return nil
}

// printReport renders a report as JSON or styled text.
func printReport(report *lint.Report) {
	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "encoding report: %v\n", err)
		}
		return
	}

	styled := isatty.IsTerminal(os.Stdout.Fd())
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	for _, file := range report.Files {
		if file.Error != "" {
			fmt.Printf("%s %s\n",
				render(dimStyle, file.FilePath+":"),
				render(nameStyle, file.Error))
			continue
		}
		for _, v := range file.Violations {
			loc := fmt.Sprintf("%s:%d:%d", file.FilePath, v.Location.StartLine, v.Location.StartCol)
			fmt.Printf("%s %s %s %s\n",
				render(locStyle, loc),
				render(nameStyle, v.Name),
				v.Message,
				render(dimStyle, "["+v.Role+"]"))
		}
	}

	summary := fmt.Sprintf("%d file(s) checked, %d violation(s)",
		report.FilesChecked, report.ViolationCount)
	if report.ViolationCount == 0 {
		fmt.Println(render(okStyle, summary))
	} else {
		fmt.Println(summary)
	}
}

// setupCLITelemetry wires the tracer provider; spans go to stderr only
// with --trace-debug.
func setupCLITelemetry() (func(context.Context) error, error) {
	var out *os.File
	if traceDebug {
		out = os.Stderr
	}
	if out == nil {
		return lint.SetupTelemetry(context.Background(), nil)
	}
	return lint.SetupTelemetry(context.Background(), out)
}
