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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filesCheckedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aleutian",
		Subsystem: "lint",
		Name:      "files_checked_total",
		Help:      "Total source files parsed and checked.",
	})

	fileErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aleutian",
		Subsystem: "lint",
		Name:      "file_errors_total",
		Help:      "Total files that failed to parse or read.",
	})

	violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aleutian",
		Subsystem: "lint",
		Name:      "violations_total",
		Help:      "Total naming violations reported, by identifier role.",
	}, []string{"role"})

	checkDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "aleutian",
		Subsystem: "lint",
		Name:      "check_duration_seconds",
		Help:      "Parse plus check duration per file.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	})
)
