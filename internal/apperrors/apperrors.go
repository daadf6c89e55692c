package apperrors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Kind classifies an application error.
type Kind string

const (
	// KindValidation is bad user input, blocked before any mutation.
	KindValidation Kind = "validation"
	// KindTransport is a persistence or classifier call that failed;
	// the attempted operation left prior state unchanged.
	KindTransport Kind = "transport"
	// KindEmptyResult is a classifier call that succeeded but
	// identified nothing.
	KindEmptyResult Kind = "empty_result"
	// KindInformational is a user-facing notice; the operation was a
	// no-op.
	KindInformational Kind = "informational"
	// KindInternal is everything else.
	KindInternal Kind = "internal"
)

// AppError carries a kind, a user-presentable message and the wrapped
// cause.
type AppError struct {
	Kind     Kind
	Message  string
	Internal error
	Source   string
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Kind, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// LogFields returns structured logging fields for the error.
func (e *AppError) LogFields() []any {
	fields := []any{
		"error_kind", string(e.Kind),
		"error_message", e.Message,
		"source", e.Source,
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	return fields
}

// New creates an AppError of the given kind.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Source: caller()}
}

// Wrap wraps a cause into an AppError of the given kind.
func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Internal: err, Source: caller()}
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", file, line)
}

// KindOf returns the kind of err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// UserMessage returns the presentable message of err, or a generic one
// for plain errors.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}

// Log writes err at a severity matching its kind.
func Log(ctx context.Context, logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		logger.ErrorContext(ctx, "unhandled error", "error", err.Error())
		return
	}
	switch appErr.Kind {
	case KindValidation, KindInformational, KindEmptyResult:
		logger.WarnContext(ctx, "user-facing condition", appErr.LogFields()...)
	default:
		logger.ErrorContext(ctx, "operation failed", appErr.LogFields()...)
	}
}

// Convenience constructors mirroring the taxonomy.

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Source: caller()}
}

func NewTransport(err error, message string) *AppError {
	return &AppError{Kind: KindTransport, Message: message, Internal: err, Source: caller()}
}

func NewInformational(message string) *AppError {
	return &AppError{Kind: KindInformational, Message: message, Source: caller()}
}
