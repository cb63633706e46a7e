// Package errors provides coded, recoverable domain errors for the tracker.
package errors

import stderrors "errors"

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	// User errors
	CodeUserExists         Code = "USER_EXISTS"
	CodeFriendLimitReached Code = "FRIEND_LIMIT_REACHED"
	CodeFriendNotFound     Code = "FRIEND_NOT_FOUND"

	// Goal errors
	CodeGoalProgressOutOfRange Code = "GOAL_PROGRESS_OUT_OF_RANGE"

	// Challenge errors
	CodeChallengeInactive Code = "CHALLENGE_INACTIVE"
	CodeChallengeFull     Code = "CHALLENGE_FULL"

	// Field errors
	CodeFieldTooLong Code = "FIELD_TOO_LONG"

	// Resource errors
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"

	// Session errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidToken       Code = "INVALID_TOKEN"
)

// Error is a tracker failure tagged with a Code. Two errors with the same
// code match under errors.Is regardless of message or metadata.
type Error struct {
	Code     Code
	Message  string            // logged, never shown in the transcript
	Metadata map[string]string // e.g. field, max, length for FIELD_TOO_LONG
	Cause    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New returns an error without metadata. Package-level sentinels are built with it.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata attaches key/value context, such as the rejected field name.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap tags a lower-level failure (a JWT parse error, say) with code.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the code of the first domain error in err's chain.
// It returns CodeUnknown when there is none.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsRuleViolation reports whether err is a recoverable business-rule
// violation, after which the caller continues with unchanged state.
func IsRuleViolation(err error) bool {
	switch GetCode(err) {
	case CodeUserExists, CodeFriendLimitReached, CodeFriendNotFound, CodeGoalProgressOutOfRange,
		CodeChallengeInactive, CodeChallengeFull, CodeFieldTooLong:
		return true
	}
	return false
}
