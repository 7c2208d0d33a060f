package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"
)

// CreateBookingRequest is the body of POST /api/events/{eventID}/bookings.
type CreateBookingRequest struct {
	Email string `json:"email" example:"jane@example.com"`
}

// ChangeBookingEventRequest is the body of PATCH /api/bookings/{bookingID}.
type ChangeBookingEventRequest struct {
	EventID string `json:"eventId"`
}

// BookingResponse wraps a single booking with a status message.
type BookingResponse struct {
	Message string          `json:"message" example:"Booking Created Successfully"`
	Booking *domain.Booking `json:"booking"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{Logger: logger, Service: svc}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Books the event for the given email. The email is trimmed and lowercased. A confirmation email is sent when mail is configured.
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param booking body CreateBookingRequest true "Attendee email"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.MessageResponse "invalid email or unknown event"
// @Failure 409 {object} helpers.MessageResponse "Email already booked for this event"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/events/{eventID}/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.BookEvent(r.Context(), r.PathValue("eventID"), req.Email)
	if err != nil {
		c.writeBookingError(w, r, "Booking Creation Failed", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Message: "Booking Created Successfully", Booking: booking})
}

// ChangeBookingEvent godoc
// @Summary Move a booking to another event
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID (UUID)"
// @Param booking body ChangeBookingEventRequest true "Target event"
// @Success 200 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse "Booking not found"
// @Failure 409 {object} helpers.MessageResponse "Email already booked for this event"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/bookings/{bookingID} [patch]
func (c *BookingController) ChangeBookingEvent(w http.ResponseWriter, r *http.Request) {
	var req ChangeBookingEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.ChangeBookingEvent(r.Context(), r.PathValue("bookingID"), req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Booking not found")
			return
		}
		c.writeBookingError(w, r, "Booking Update Failed", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingResponse{Message: "Booking updated successfully", Booking: booking})
}

// ListEventBookings godoc
// @Summary List bookings for an event
// @Description Returns the event's bookings, newest first.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {array} domain.Booking
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/events/{eventID}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListEventBookings(r.Context(), r.PathValue("eventID"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.ReportError(r, err)
		helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to fetch bookings", err)
		return
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	helpers.WriteJSON(w, http.StatusOK, bookings)
}

func (c *BookingController) writeBookingError(w http.ResponseWriter, r *http.Request, failure string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrAlreadyBooked):
		helpers.WriteMessage(w, http.StatusConflict, "Email already booked for this event")
	case errors.As(err, &verr):
		helpers.WriteMessage(w, http.StatusBadRequest, verr.Message)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.ReportError(r, err)
		helpers.WriteFailure(w, http.StatusInternalServerError, failure, err)
	}
}
