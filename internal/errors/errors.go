// Package errors defines the structured error type shared by the export
// pipeline, together with the fixed taxonomy of fatal export failures.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeSecurity   ErrorType = "security"
	ErrorTypeTemplate   ErrorType = "template"
	ErrorTypeCompile    ErrorType = "compile"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Fixed error codes of the export taxonomy.
const (
	ErrCodeTemplateNotFound    = "ERR_TEMPLATE_NOT_FOUND"
	ErrCodeInvalidName         = "ERR_INVALID_NAME"
	ErrCodeCompilationFailed   = "ERR_COMPILATION_FAILED"
	ErrCodeArtifactMissing     = "ERR_ARTIFACT_MISSING"
	ErrCodeCompilerUnavailable = "ERR_COMPILER_UNAVAILABLE"
	ErrCodeListNotFound        = "ERR_LIST_NOT_FOUND"
	ErrCodeListInvalid         = "ERR_LIST_INVALID"
	ErrCodeConfigInvalid       = "ERR_CONFIG_INVALID"
	ErrCodeInternalError       = "ERR_INTERNAL"
)

// ExportError is a structured error with a category, a stable code and
// optional context fields. All fatal pipeline errors are of this type.
type ExportError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	var parts []string
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	parts = append(parts, e.Message)
	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}
	return result
}

// Unwrap returns the underlying cause error.
func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Is matches errors by type and code so callers can compare against the
// taxonomy helpers with errors.Is.
func (e *ExportError) Is(target error) bool {
	var t *ExportError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithContext adds a context field to the error.
func (e *ExportError) WithContext(key string, value interface{}) *ExportError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Taxonomy constructors

// TemplateNotFound reports that the named template does not exist in the
// template directory.
func TemplateNotFound(name string) *ExportError {
	return &ExportError{
		Type:    ErrorTypeTemplate,
		Code:    ErrCodeTemplateNotFound,
		Message: "template not found: " + name,
	}
}

// InvalidName reports an unsafe output base name. Raised before any
// filesystem effect.
func InvalidName(name, reason string) *ExportError {
	return &ExportError{
		Type:    ErrorTypeSecurity,
		Code:    ErrCodeInvalidName,
		Message: fmt.Sprintf("invalid output name %q: %s", name, reason),
	}
}

// CompilationFailed reports a non-zero compiler exit, carrying the pass
// number and the captured diagnostic output.
func CompilationFailed(pass int, output string, cause error) *ExportError {
	e := &ExportError{
		Type:    ErrorTypeCompile,
		Code:    ErrCodeCompilationFailed,
		Message: fmt.Sprintf("compilation failed on pass %d", pass),
		Cause:   cause,
	}
	return e.WithContext("pass", pass).WithContext("output", output)
}

// ArtifactMissing reports a zero compiler exit that produced no artifact.
func ArtifactMissing(path string) *ExportError {
	e := &ExportError{
		Type:    ErrorTypeCompile,
		Code:    ErrCodeArtifactMissing,
		Message: "compiler reported success but produced no artifact",
	}
	return e.WithContext("path", path)
}

// CompilerUnavailable reports that the external compiler binary is not on
// PATH.
func CompilerUnavailable(command string, cause error) *ExportError {
	return &ExportError{
		Type:    ErrorTypeCompile,
		Code:    ErrCodeCompilerUnavailable,
		Message: "compiler not found on PATH: " + command,
		Cause:   cause,
	}
}

// ListNotFound reports that no list source exists for the given identifier.
func ListNotFound(id string) *ExportError {
	return &ExportError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeListNotFound,
		Message: "question list not found: " + id,
	}
}

// ListInvalid reports a list source that parsed but failed shape validation.
func ListInvalid(id, reason string) *ExportError {
	return &ExportError{
		Type:    ErrorTypeValidation,
		Code:    ErrCodeListInvalid,
		Message: fmt.Sprintf("question list %q is invalid: %s", id, reason),
	}
}

// ConfigInvalid reports a configuration value that fails validation.
func ConfigInvalid(message string) *ExportError {
	return &ExportError{
		Type:    ErrorTypeConfig,
		Code:    ErrCodeConfigInvalid,
		Message: message,
	}
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *ExportError {
	return &ExportError{
		Type:    ErrorTypeInternal,
		Code:    ErrCodeInternalError,
		Message: message,
		Cause:   cause,
	}
}

// Predicates

// IsCode reports whether err is an ExportError carrying the given code.
func IsCode(err error, code string) bool {
	var e *ExportError
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CompilationPass extracts the failing pass number from a CompilationFailed
// error, or 0 when err is not one.
func CompilationPass(err error) int {
	var e *ExportError
	if errors.As(err, &e) && e.Code == ErrCodeCompilationFailed {
		if pass, ok := e.Context["pass"].(int); ok {
			return pass
		}
	}
	return 0
}

// CompilerOutput extracts the captured diagnostic output from a
// CompilationFailed error.
func CompilerOutput(err error) string {
	var e *ExportError
	if errors.As(err, &e) {
		if out, ok := e.Context["output"].(string); ok {
			return out
		}
	}
	return ""
}
