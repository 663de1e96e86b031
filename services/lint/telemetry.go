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
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SetupTelemetry installs the global tracer provider and W3C propagator.
//
// Description:
//
//	When debugOut is non-nil, spans are exported as pretty-printed JSON to
//	that writer; otherwise spans are recorded but not exported, which
//	keeps span contexts flowing through logs without output noise.
//	The returned shutdown function flushes pending spans and must be
//	called on exit.
//
// Inputs:
//
//	ctx      - Context for exporter construction and shutdown.
//	debugOut - Destination for exported spans. Nil disables export.
//
// Outputs:
//
//	func(context.Context) error - Shutdown function. Never nil on success.
//	error - Non-nil if the exporter could not be constructed.
func SetupTelemetry(ctx context.Context, debugOut io.Writer) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	var opts []sdktrace.TracerProviderOption
	if debugOut != nil {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(debugOut),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("creating trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
