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
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

// Handlers holds the HTTP handlers for the lint service.
type Handlers struct {
	service *Service
}

// NewHandlers creates handlers backed by the given service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// getOrCreateRequestID returns the request ID from the X-Request-ID header,
// generating one when absent.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return requestID
}

// HandleCheck handles POST /v1/lint/check.
//
// Description:
//
//	Checks a single in-memory source for naming violations. Request
//	options override the server's configured rule options when present.
//
// Response:
//
//	200 OK: FileReport
//	400 Bad Request: Missing content or invalid body
//	413 Request Entity Too Large: Content exceeds the size limit
//	422 Unprocessable Entity: Content is not valid UTF-8
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleCheck(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleCheck")

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "content is required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	opts := h.service.Options()
	if req.Options != nil {
		opts = req.Options.ToOptions()
	}

	report, err := h.service.CheckSourceWithOptions(c.Request.Context(), []byte(req.Content), req.FilePath, opts)
	if err != nil {
		switch {
		case errors.Is(err, ast.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "content exceeds maximum size",
				Code:  "CONTENT_TOO_LARGE",
			})
		case errors.Is(err, ast.ErrInvalidContent):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error: "content is not valid UTF-8",
				Code:  "INVALID_CONTENT",
			})
		default:
			logger.Error("check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "check failed",
				Code:  "CHECK_FAILED",
			})
		}
		return
	}

	logger.Info("source checked",
		slog.String("file", report.FilePath),
		slog.Int("violations", len(report.Violations)),
	)
	c.JSON(http.StatusOK, report)
}

// HandleCheckPath handles POST /v1/lint/check_path.
//
// Description:
//
//	Checks a file or directory tree on the server host. Per-file parse
//	failures appear inside the report; only a bad path fails the request.
//
// Response:
//
//	200 OK: Report
//	400 Bad Request: Missing path or invalid body
//	404 Not Found: Path does not exist
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleCheckPath(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleCheckPath")

	var req CheckPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "path is required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	opts := h.service.Options()
	if req.Options != nil {
		opts = req.Options.ToOptions()
	}

	report, err := h.service.CheckPath(c.Request.Context(), req.Path, opts)
	if err != nil {
		logger.Warn("path check failed",
			slog.String("path", req.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "path could not be checked: " + err.Error(),
			Code:  "PATH_CHECK_FAILED",
		})
		return
	}

	logger.Info("path checked",
		slog.String("path", req.Path),
		slog.String("run_id", report.RunID),
		slog.Int("files", report.FilesChecked),
		slog.Int("violations", report.ViolationCount),
	)
	c.JSON(http.StatusOK, report)
}

// HandleRules handles GET /v1/lint/rules.
func (h *Handlers) HandleRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules": []RuleDescriptor{
			{
				Name:        "camelcase",
				Description: "Requires camel-case identifiers; leading and trailing underscores are ignored and all-uppercase constant names are exempt.",
				Options:     []string{"properties", "properties_style", "ignore_destructuring"},
			},
		},
	})
}

// HandleHealth handles GET /v1/lint/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// HandleReady handles GET /v1/lint/ready.
//
// Description:
//
//	Readiness covers the parser grammar: a trivial source must parse. A
//	failure here means the tree-sitter runtime is unusable.
func (h *Handlers) HandleReady(c *gin.Context) {
	_, err := h.service.CheckSource(c.Request.Context(), []byte("var ready = true;"), "<ready>")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
