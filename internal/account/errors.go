package account

import "errors"

// Code categorizes auth operation failures.
type Code string

const (
	// CodeValidation marks malformed input: bad email syntax, short or
	// weak password, missing required field. Recoverable by re-input.
	CodeValidation Code = "validation"

	// CodeAuthorization marks a credential or provider mismatch: wrong
	// password, password sign-in on a federated account, missing current
	// password. No persisted state changes.
	CodeAuthorization Code = "authorization"

	// CodeNotFound marks an operation on an email with no stored account.
	CodeNotFound Code = "not_found"
)

// Error is an auth operation failure with a user-facing message. The
// message is shown as-is by the presentation layer, so it stays in the
// product language.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsValidation reports whether err is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeValidation
}

// IsAuthorization reports whether err is an authorization error.
func IsAuthorization(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeAuthorization
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeNotFound
}

func validationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func authorizationError(message string) *Error {
	return &Error{Code: CodeAuthorization, Message: message}
}

func notFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}
