package errs

import (
	"errors"
	"fmt"

	goerrs "github.com/nicolasparada/go-errs"
)

var (
	Unauthenticated = NewUnauthenticatedError("unauthenticated")
	Forbidden       = NewPermissionDeniedError("forbidden")

	ConversationNotFound = NewNotFoundError(CodeConversationNotFound, "conversation not found")
	JobPostingNotFound   = NewNotFoundError(CodeJobPostingNotFound, "job posting not found")
	CandidateNotFound    = NewNotFoundError(CodeCandidateNotFound, "candidate not found")

	MessageEmpty   = NewInvalidArgumentError(CodeMessageEmpty, "Body", "message body is required")
	MessageTooLong = NewInvalidArgumentError(CodeMessageTooLong, "Body", "message body is too long")
)

type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Field   *string
}

type Kind string

const (
	KindInvalidArgument  Kind = "invalid_argument"
	KindNotFound         Kind = "not_found"
	KindPermissionDenied Kind = "permission_denied"
	KindUnauthenticated  Kind = "unauthenticated"
	KindInternal         Kind = "internal"
)

// Code is the stable machine-readable identifier callers map to responses.
type Code string

const (
	CodeValidationFailed     Code = "VALIDATION_FAILED"
	CodeInvalidIdentity      Code = "INVALID_IDENTITY"
	CodeInvalidCursor        Code = "INVALID_CURSOR"
	CodeMessageEmpty         Code = "MESSAGE_EMPTY"
	CodeMessageTooLong       Code = "MESSAGE_TOO_LONG"
	CodeConversationNotFound Code = "CONVERSATION_NOT_FOUND"
	CodeJobPostingNotFound   Code = "JOB_POSTING_NOT_FOUND"
	CodeCandidateNotFound    Code = "CANDIDATE_NOT_FOUND"
	CodeForbidden            Code = "FORBIDDEN"
	CodeUnauthenticated      Code = "UNAUTHENTICATED"
	CodeInternal             Code = "INTERNAL"
)

func NewInvalidArgumentError(code Code, field, message string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Code:    code,
		Message: message,
		Field:   &field,
	}
}

func NewNotFoundError(code Code, message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    code,
		Message: message,
	}
}

func NewPermissionDeniedError(message string) *Error {
	return &Error{
		Kind:    KindPermissionDenied,
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *Error {
	return &Error{
		Kind:    KindUnauthenticated,
		Code:    CodeUnauthenticated,
		Message: message,
	}
}

func (e *Error) Error() string {
	if e.Field != nil {
		return fmt.Sprintf("%s (field: %s): %s", e.Code, *e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports errors with the same code as equal,
// so sentinels above can be used with [errors.Is].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Unwrap exposes the generic error of the same kind,
// which is what httperrs maps to a status code.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindInvalidArgument:
		return goerrs.InvalidArgumentError(e.Message)
	case KindNotFound:
		return goerrs.NotFound
	case KindPermissionDenied:
		return goerrs.PermissionDenied
	case KindUnauthenticated:
		return goerrs.Unauthenticated
	}
	return nil
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}
