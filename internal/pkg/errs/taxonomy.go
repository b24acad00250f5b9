package errs

// Caller-facing error classes. Use-case errors carry exactly one of these and
// the HTTP layer maps the class to a status code.
var (
	ErrValidation            = New("errs: validation failed")
	ErrNotFound              = New("errs: resource not found")
	ErrConflict              = New("errs: conflicting state")
	ErrUnauthorized          = New("errs: unauthorized")
	ErrDependencyUnavailable = New("errs: dependency unavailable")
	ErrInternal              = New("errs: internal failure")
)

type classified struct {
	cause error
	class error
}

func (e *classified) Error() string { return e.cause.Error() }

func (e *classified) Unwrap() error { return e.cause }

func (e *classified) Is(target error) bool { return target == e.class }

// Sentinel builds a named error that matches class under Is.
func Sentinel(msg string, class error) error {
	return &classified{cause: New(msg), class: class}
}

// WithClass attaches class to err while keeping err matchable.
func WithClass(err, class error) error {
	if err == nil {
		return nil
	}
	return &classified{cause: err, class: class}
}

// Validation reports a domain rule violation as caller input error.
func Validation(err error) error {
	return WithClass(err, ErrValidation)
}

// Class returns the taxonomy class of err, defaulting to ErrInternal.
func Class(err error) error {
	for _, class := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized, ErrDependencyUnavailable} {
		if Is(err, class) {
			return class
		}
	}
	return ErrInternal
}
