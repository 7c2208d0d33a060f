package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyBooked   = errors.New("email already booked for this event")
	ErrDuplicateSlug   = errors.New("an event with this slug already exists")
	ErrImageRequired   = errors.New("image file is required")
)

// ValidationError reports a single rejected field. It matches ErrInvalidInput with
// errors.Is and unwraps to Err when a more specific cause is known.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError returns a ValidationError for field with the given message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
