// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	logger        *slog.Logger
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if writer == nil {
		writer = io.Discard
	}

	handlerLevel := slog.LevelInfo
	if level == ObservabilityDebug {
		handlerLevel = slog.LevelDebug
	}

	return &StandardObserver{
		level:  level,
		writer: writer,
		logger: slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: handlerLevel})),
	}
}

// Level returns the configured observability level
func (o *StandardObserver) Level() ObservabilityLevel {
	if o == nil {
		return ObservabilityOff
	}
	return o.level
}

// Logger exposes the underlying structured logger
func (o *StandardObserver) Logger() *slog.Logger {
	return o.logger
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, target string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			Target:     target,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}

		o.LogOperation(data)
	}
}

// StartSummary returns a function that logs an aggregate operation, such as
// one input file, at info level so it is visible at metrics level
func (o *StandardObserver) StartSummary(component, operation, target string) func(success bool, recordCount int, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, recordCount int, metadata map[string]interface{}) {
		o.logAt(slog.LevelInfo, StandardObservabilityData{
			Component:   component,
			Operation:   operation,
			Target:      target,
			DurationMs:  time.Since(start).Milliseconds(),
			Success:     success,
			RecordCount: recordCount,
			Metadata:    metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	// Per-operation records are debug output; failures surface at metrics level too
	logLevel := slog.LevelDebug
	if !data.Success {
		logLevel = slog.LevelWarn
	}
	o.logAt(logLevel, data)
}

func (o *StandardObserver) logAt(level slog.Level, data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")
	o.logger.LogAttrs(context.Background(), level, data.Operation, data.attrs()...)
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component   string                 `json:"component"`
	Operation   string                 `json:"operation"`
	RequestID   string                 `json:"request_id"`
	Target      string                 `json:"target,omitempty"`
	DurationMs  int64                  `json:"duration_ms,omitempty"`
	Success     bool                   `json:"success"`
	Error       string                 `json:"error,omitempty"`
	InputLength int                    `json:"input_length,omitempty"`
	RecordCount int                    `json:"record_count,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (d StandardObservabilityData) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("component", d.Component),
		slog.String("request_id", d.RequestID),
		slog.Bool("success", d.Success),
	}
	if d.Target != "" {
		attrs = append(attrs, slog.String("target", d.Target))
	}
	if d.DurationMs > 0 {
		attrs = append(attrs, slog.Int64("duration_ms", d.DurationMs))
	}
	if d.Error != "" {
		attrs = append(attrs, slog.String("error", d.Error))
	}
	if d.InputLength > 0 {
		attrs = append(attrs, slog.Int("input_length", d.InputLength))
	}
	if d.RecordCount > 0 {
		attrs = append(attrs, slog.Int("record_count", d.RecordCount))
	}
	if len(d.Metadata) > 0 {
		attrs = append(attrs, slog.Any("metadata", d.Metadata))
	}
	return attrs
}
