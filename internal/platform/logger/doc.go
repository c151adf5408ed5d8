// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, an optional CI handler that enriches records with
// build metadata, context helpers, and buffers for asserting on logs in tests.
package logger
