package errors

import "fmt"

// Category classifies an error by where it was detected.
type Category string

const (
	CategoryFile    Category = "file"
	CategoryConfig  Category = "config"
	CategoryCompile Category = "compile"
)

// Error is a structured configuration error with a stable code.
type Error struct {
	// Code is the unique identifier, e.g. "C003".
	Code string

	// Category is the error class.
	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation, filled from the registry.
	Detail string

	// Hint suggests a fix.
	Hint string

	// Subject names the offending item (a key, language, or path).
	Subject string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Subject)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithSubject attaches the offending item to the error.
func (e *Error) WithSubject(subject string) *Error {
	e.Subject = subject
	return e
}

// WithHint overrides the registered fix hint.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// New creates an error from its registered code. Unknown codes yield a
// generic config error carrying the code, so a typo is visible instead of
// silent.
func New(code string) *Error {
	tmpl, ok := registry[code]
	if !ok {
		return &Error{
			Code:     code,
			Category: CategoryConfig,
			Message:  "unregistered error code",
		}
	}
	return &Error{
		Code:     code,
		Category: tmpl.Category,
		Message:  tmpl.Message,
		Detail:   tmpl.Detail,
		Hint:     tmpl.Hint,
	}
}

// Wrap creates a coded error around an underlying cause.
func Wrap(code string, err error) *Error {
	e := New(code)
	e.Wrapped = err
	return e
}
