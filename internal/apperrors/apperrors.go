package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	// KindInvalidInput marks malformed or out-of-range caller input.
	KindInvalidInput Kind = "invalid_input"
	// KindNotFound marks a missing trip, member, expense, wallet or transaction.
	KindNotFound Kind = "not_found"
	// KindConflict marks a state-dependent refusal, e.g. insufficient balance
	// or editing a wallet-paid expense.
	KindConflict Kind = "conflict"
	// KindInternal marks unexpected storage or infrastructure failures.
	KindInternal Kind = "internal"
)

// Error carries an error kind plus a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Invalidf builds an InvalidInput error.
func Invalidf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internalf builds an Internal error.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
