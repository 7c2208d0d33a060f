package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"devevent/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events      []*domain.Event
	bySlug      map[string]*domain.Event
	listErr     error
	getErr      error
	createErr   error
	imageURL    string
	createCalls int
	lastEvent   *domain.Event
	lastImage   []byte
}

func (f *fakeEventService) ListEvents(_ context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventService) GetEventBySlug(_ context.Context, slug string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.bySlug[slug]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event, image *domain.ImageUpload) error {
	f.createCalls++
	f.lastEvent = event
	if image != nil && image.Body != nil {
		f.lastImage, _ = io.ReadAll(image.Body)
	}
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "0b6c7c4e-52d4-4b3e-9a57-3f1d2c7b9e10"
	event.Image = f.imageURL
	event.CreatedAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	event.UpdatedAt = event.CreatedAt
	return nil
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	booking     *domain.Booking
	bookings    []*domain.Booking
	err         error
	lastEventID string
	lastEmail   string
	lastBooking string
}

func (f *fakeBookingService) BookEvent(_ context.Context, eventID, email string) (*domain.Booking, error) {
	f.lastEventID, f.lastEmail = eventID, email
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeBookingService) ChangeBookingEvent(_ context.Context, bookingID, eventID string) (*domain.Booking, error) {
	f.lastBooking, f.lastEventID = bookingID, eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeBookingService) ListEventBookings(_ context.Context, eventID string) ([]*domain.Booking, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

// multipartRequest builds a POST /api/events request. A nil image omits the part.
func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", "banner.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validEventFields() map[string]string {
	return map[string]string{
		"title":       "GopherCon",
		"slug":        "gophercon",
		"description": "Go conference",
		"overview":    "Talks and workshops",
		"venue":       "Hall A",
		"location":    "Berlin",
		"date":        "2026-11-02",
		"time":        "09:00",
		"mode":        "offline",
		"audience":    "Developers",
		"organizer":   "Gopher Org",
		"tags":        `["ai","ml"]`,
		"agenda":      `[{"time":"10:00","title":"Keynote"},"Lunch"]`,
	}
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}
