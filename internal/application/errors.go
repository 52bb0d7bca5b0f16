package application

import "errors"

// Error kinds. Every error returned by a service that is not an internal
// failure wraps exactly one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrUserNotFound    = newError(ErrNotFound, "user not found")
	ErrProjectNotFound = newError(ErrNotFound, "project not found")
	ErrIssueNotFound   = newError(ErrNotFound, "issue not found")

	ErrNoProjectAccess   = newError(ErrForbidden, "user does not have access to this project")
	ErrAssigneeNotMember = newError(ErrForbidden, "assigned user is not a member of this project")

	ErrEmailTaken    = newError(ErrConflict, "email already exists")
	ErrAlreadyMember = newError(ErrConflict, "user is already a member of this project")

	ErrStorageDisabled = errors.New("attachment storage is not configured")
)

type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func validationError(msg string) error {
	return newError(ErrValidation, msg)
}
