package types

import (
	"errors"
	"fmt"
)

// ErrorKind is a machine-stable classification carried by every core error.
type ErrorKind string

const (
	// KindValidation marks malformed or empty input.
	KindValidation ErrorKind = "validation"
	// KindDocumentParsing marks a structural extraction failure.
	KindDocumentParsing ErrorKind = "document_parsing"
	// KindConfiguration marks a missing or invalid weight table or prompt type.
	KindConfiguration ErrorKind = "configuration"
	// KindExternalService marks an unavailable collaborator.
	KindExternalService ErrorKind = "external_service"
)

// AnalysisError is the error type produced by all pipeline components. The
// scoring engine propagates the first sub-step failure verbatim, so Kind
// survives orchestration unchanged.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports malformed or empty input.
func NewValidationError(format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewDocumentParsingError reports a structural extraction failure.
func NewDocumentParsingError(format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: KindDocumentParsing, Message: fmt.Sprintf(format, args...)}
}

// NewConfigurationError reports a missing or invalid configuration entry.
func NewConfigurationError(format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NewExternalServiceError wraps a collaborator failure.
func NewExternalServiceError(cause error, format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: KindExternalService, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the ErrorKind from err, unwrapping as needed. Errors that
// did not originate in the core report KindExternalService.
func KindOf(err error) ErrorKind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindExternalService
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
