// Package apperr defines the error type shared by the tracker packages
package apperr

import "fmt"

// Error is an application error. Package-level values act as templates:
// Fmt and Wrap derive new errors that still match the template with
// errors.Is.
type Error struct {
	Err     error
	tmpl    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with the format verbs in its message
// replaced by args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
		tmpl:    e.root(),
	}
}

// Wrap returns a copy of the error that records err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		tmpl:    e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is e or the template e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}
