package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"devevent/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testTimeout = 5 * time.Second

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID        map[string]*domain.Event
	createErr   error
	listErr     error
	existsErr   error
	createCalls int
	existsCalls int
	clock       time.Time
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:  make(map[string]*domain.Event),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEventRepo) add(e *domain.Event) *domain.Event {
	f.clock = f.clock.Add(time.Minute)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = f.clock
		e.UpdatedAt = f.clock
	}
	f.byID[e.ID] = e
	return e
}

func (f *fakeEventRepo) Create(_ context.Context, e *domain.Event) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", len(f.byID)+1)
	f.add(e)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(_ context.Context, slug string) (*domain.Event, error) {
	for _, e := range f.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEventRepo) Exists(_ context.Context, id string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byID[id]
	return ok, nil
}

// fakeAssetStore records uploads and deletions.
type fakeAssetStore struct {
	url       string
	uploadErr error
	deleteErr error
	uploads   []string
	deleted   []string
}

func (f *fakeAssetStore) Upload(_ context.Context, folder string, image *domain.ImageUpload) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, folder+"/"+image.Filename)
	return f.url, nil
}

func (f *fakeAssetStore) Delete(_ context.Context, secureURL string) error {
	f.deleted = append(f.deleted, secureURL)
	return f.deleteErr
}

// fakeBookingRepo enforces the (event, email) uniqueness the database would.
type fakeBookingRepo struct {
	byID      map[string]*domain.Booking
	createErr error
	nextID    int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.EventID == b.EventID && existing.Email == b.Email {
			return domain.ErrAlreadyBooked
		}
	}
	f.nextID++
	b.ID = fmt.Sprintf("10000000-0000-4000-8000-%012d", f.nextID)
	b.CreatedAt = time.Date(2026, 1, 1, 0, f.nextID, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	stored := *b
	f.byID[b.ID] = &stored
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, domain.ErrBookingNotFound
}

func (f *fakeBookingRepo) UpdateEventID(_ context.Context, id, eventID string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	for _, existing := range f.byID {
		if existing.ID != id && existing.EventID == eventID && existing.Email == b.Email {
			return nil, domain.ErrAlreadyBooked
		}
	}
	b.EventID = eventID
	b.UpdatedAt = b.UpdatedAt.Add(time.Hour)
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ListByEventID(_ context.Context, eventID string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeEmailService captures confirmation emails.
type fakeEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(_ context.Context, data *domain.BookingConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeMailer and fakeRenderer back the email service tests.
type fakeMailer struct {
	sent []domain.MailMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg domain.MailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeRenderer struct {
	err  error
	name string
}

func (f *fakeRenderer) Render(templateName string, _ any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	f.name = templateName
	return "subject", "<p>html</p>", "text", nil
}
