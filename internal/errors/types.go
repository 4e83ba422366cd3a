// Package errors provides the structured error type shared by every tool in
// onestop. Hard precondition failures, transcoding failures and unexpected
// internal faults are all reported as *ToolError so callers can branch on the
// category with errors.As instead of matching message text.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeEncoding     ErrorType = "encoding"
	ErrorTypeIO           ErrorType = "io"
	ErrorTypeConfig       ErrorType = "config"
	ErrorTypeInternal     ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeEmptyInput      = "ERR_EMPTY_INPUT"
	ErrCodeInvalidBase64   = "ERR_INVALID_BASE64"
	ErrCodeInvalidUTF8     = "ERR_INVALID_UTF8"
	ErrCodeInvalidMode     = "ERR_INVALID_MODE"
	ErrCodeInvalidJSON     = "ERR_INVALID_JSON"
	ErrCodeSyntax          = "ERR_SYNTAX"
	ErrCodeInvalidArgument = "ERR_INVALID_ARGUMENT"
	ErrCodeInputTooLarge   = "ERR_INPUT_TOO_LARGE"
	ErrCodeToolNotFound    = "ERR_TOOL_NOT_FOUND"
	ErrCodeFileNotFound    = "ERR_FILE_NOT_FOUND"
	ErrCodeConfigInvalid   = "ERR_CONFIG_INVALID"
	ErrCodeInternalError   = "ERR_INTERNAL"
)

// ToolError is a structured error type with context.
type ToolError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
	Tool    string
	Line    int
	Column  int
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Tool != "" {
		parts = append(parts, "tool:"+e.Tool)
	}

	if e.Line > 0 {
		location := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			location += fmt.Sprintf(", column %d", e.Column)
		}
		parts = append(parts, location+":")
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ToolError) Is(target error) bool {
	var t *ToolError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ToolError) WithContext(key string, value interface{}) *ToolError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds a 1-based line and column to the error.
func (e *ToolError) WithLocation(line, column int) *ToolError {
	e.Line = line
	e.Column = column

	return e
}

// WithTool records which tool produced the error.
func (e *ToolError) WithTool(tool string) *ToolError {
	e.Tool = tool

	return e
}

// Error creation functions

// NewInvalidInput creates an error for input that fails a hard precondition.
func NewInvalidInput(code, message string) *ToolError {
	return &ToolError{
		Type:    ErrorTypeInvalidInput,
		Code:    code,
		Message: message,
	}
}

// NewEncoding creates an error for a failure while transcoding text.
func NewEncoding(code, message string, cause error) *ToolError {
	return &ToolError{
		Type:    ErrorTypeEncoding,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewIO creates an I/O error.
func NewIO(code, message string, cause error) *ToolError {
	return &ToolError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfig creates a configuration error.
func NewConfig(code, message string) *ToolError {
	return &ToolError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternal creates an internal error.
func NewInternal(code, message string, cause error) *ToolError {
	return &ToolError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsInvalidInput checks if an error is an invalid input error.
func IsInvalidInput(err error) bool {
	return hasType(err, ErrorTypeInvalidInput)
}

// IsEncoding checks if an error is an encoding error.
func IsEncoding(err error) bool {
	return hasType(err, ErrorTypeEncoding)
}

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool {
	return hasType(err, ErrorTypeInternal)
}

func hasType(err error, t ErrorType) bool {
	var te *ToolError
	if errors.As(err, &te) {
		return te.Type == t
	}

	return false
}

// ErrorHandler provides centralized error logging.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error at a level matching its category. Input errors are the
// caller's problem and are logged as warnings; everything else is an error.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var te *ToolError
	if !errors.As(err, &te) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch te.Type {
	case ErrorTypeInvalidInput, ErrorTypeEncoding:
		h.logger.Warn(ctx, err, "Tool rejected input",
			"type", te.Type,
			"code", te.Code,
			"tool", te.Tool)
	default:
		h.logger.Error(ctx, err, "Tool failed",
			"type", te.Type,
			"code", te.Code,
			"tool", te.Tool)
	}
}
