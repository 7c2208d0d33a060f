package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"devevent/internal/domain"
)

type bookingService struct {
	eventRepo      domain.EventRepository
	bookingRepo    domain.BookingRepository
	emailService   domain.EmailService
	baseURL        string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. baseURL is used for event links in
// confirmation emails.
func NewBookingService(
	eventRepo domain.EventRepository,
	bookingRepo domain.BookingRepository,
	emailService domain.EmailService,
	baseURL string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		eventRepo:      eventRepo,
		bookingRepo:    bookingRepo,
		emailService:   emailService,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *bookingService) BookEvent(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking := domain.NewBooking(eventID, email)
	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateEventExists(ctx, s.eventRepo, booking.EventID); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking)
	return booking, nil
}

// ChangeBookingEvent moves a booking to another event. The existence check only runs when
// the reference actually changes.
func (s *bookingService) ChangeBookingEvent(ctx context.Context, bookingID, eventID string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, domain.ErrBookingNotFound
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, domain.NewValidationError("eventId", "eventId is required")
	}

	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if current.EventID == eventID {
		return current, nil
	}

	if err := domain.ValidateEventExists(ctx, s.eventRepo, eventID); err != nil {
		return nil, err
	}
	updated, err := s.bookingRepo.UpdateEventID(ctx, bookingID, eventID)
	if err != nil {
		return nil, fmt.Errorf("update booking event: %w", err)
	}
	return updated, nil
}

func (s *bookingService) ListEventBookings(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.ValidateEventExists(ctx, s.eventRepo, eventID); err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// sendConfirmation emails the attendee. A failure is logged; the booking stands.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.ErrorContext(ctx, "load event for booking confirmation", "booking_id", booking.ID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if s.baseURL != "" {
		data.EventURL = s.baseURL + "/#event-" + event.ID
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "send booking confirmation", "booking_id", booking.ID, "err", err)
	}
}
