package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context, creating a ToolError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *ToolError {
	if err == nil {
		return nil
	}

	// Keep location and tool of an inner ToolError visible on the wrapper
	var te *ToolError
	if errors.As(err, &te) {
		return &ToolError{
			Type:    errType,
			Code:    code,
			Message: message,
			Cause:   te,
			Context: te.Context,
			Tool:    te.Tool,
			Line:    te.Line,
			Column:  te.Column,
		}
	}

	return &ToolError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *ToolError {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *ToolError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// WrapInternal wraps an error as an internal error
func WrapInternal(err error, code, message string) *ToolError {
	return Wrap(err, ErrorTypeInternal, code, message)
}

// Recover converts a panic into an internal ToolError stored in *errp. It must
// be called directly from a deferred statement:
//
//	defer errors.Recover("html-to-jsx", &err)
func Recover(tool string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	*errp = FromPanic(tool, r)
}

// FromPanic builds the internal error reported for a recovered panic value.
func FromPanic(tool string, r interface{}) *ToolError {
	cause, ok := r.(error)
	if !ok {
		cause = fmt.Errorf("%v", r)
	}

	return NewInternal(ErrCodeInternalError, "unexpected failure", cause).WithTool(tool)
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var te *ToolError
	if errors.As(err, &te) {
		return te.Error()
	}

	return err.Error()
}

// GetErrorContext extracts context information from a ToolError
func GetErrorContext(err error) map[string]interface{} {
	var te *ToolError
	if errors.As(err, &te) {
		context := make(map[string]interface{})
		for k, v := range te.Context {
			context[k] = v
		}
		if te.Tool != "" {
			context["tool"] = te.Tool
		}
		if te.Line > 0 {
			context["line"] = te.Line
			if te.Column > 0 {
				context["column"] = te.Column
			}
		}
		context["type"] = string(te.Type)
		context["code"] = te.Code
		return context
	}

	return map[string]interface{}{
		"message": err.Error(),
		"type":    "unknown",
	}
}

// ExtractCause extracts the root cause from a wrapped error
func ExtractCause(err error) error {
	for err != nil {
		var te *ToolError
		if !errors.As(err, &te) {
			return err
		}
		if te.Cause == nil {
			return te
		}
		err = te.Cause
	}
	return nil
}

// As is errors.As from the standard library, re-exported so callers that
// import this package under the name errors keep access to it.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
