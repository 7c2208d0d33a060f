package domain

import (
	"context"
	"strings"
	"time"
)

// Booking associates one email with one event. At most one booking exists per pair.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId" validate:"required"`
	Email     string    `json:"email" validate:"required,rfc5322"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBooking returns a Booking for eventID with a normalized email. ID and timestamps are
// set by the repository on create.
func NewBooking(eventID, email string) *Booking {
	return &Booking{
		EventID: strings.TrimSpace(eventID),
		Email:   NormalizeEmail(email),
	}
}

// NormalizeEmail trims and lowercases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks required fields and the email format.
func (b *Booking) Validate() error {
	return validateStruct(b)
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	UpdateEventID(ctx context.Context, id, eventID string) (*Booking, error)
	// ListByEventID returns the bookings of an event, newest first.
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines booking operations. Every write that sets an event reference
// goes through ValidateEventExists first.
type BookingService interface {
	BookEvent(ctx context.Context, eventID, email string) (*Booking, error)
	ChangeBookingEvent(ctx context.Context, bookingID, eventID string) (*Booking, error)
	ListEventBookings(ctx context.Context, eventID string) ([]*Booking, error)
}
