package domain

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Event represents a listed developer event.
// swagger:model Event
type Event struct {
	ID          string            `json:"id"`
	Title       string            `json:"title" validate:"required"`
	Slug        string            `json:"slug" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Overview    string            `json:"overview" validate:"required"`
	Image       string            `json:"image"`
	Venue       string            `json:"venue" validate:"required"`
	Location    string            `json:"location" validate:"required"`
	Date        string            `json:"date" validate:"required"`
	Time        string            `json:"time" validate:"required"`
	Mode        string            `json:"mode" validate:"required"`
	Audience    string            `json:"audience" validate:"required"`
	Agenda      []json.RawMessage `json:"agenda" swaggertype:"array,object"`
	Organizer   string            `json:"organizer" validate:"required"`
	Tags        []string          `json:"tags"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Normalize trims every scalar field and lowercases the slug.
func (e *Event) Normalize() {
	for _, f := range []*string{
		&e.Title, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &e.Mode, &e.Audience, &e.Organizer,
	} {
		*f = strings.TrimSpace(*f)
	}
	e.Slug = strings.ToLower(strings.TrimSpace(e.Slug))
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Agenda == nil {
		e.Agenda = []json.RawMessage{}
	}
}

// Validate checks the scalar fields. Image is checked separately because it is only
// known once the upload has finished.
func (e *Event) Validate() error {
	return validateStruct(e)
}

// ImageUpload is the binary image part of a create-event request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AssetStore hosts uploaded images and hands back a public https URL for them.
type AssetStore interface {
	Upload(ctx context.Context, folder string, image *ImageUpload) (secureURL string, err error)
	Delete(ctx context.Context, secureURL string) error
}

// EventExistenceChecker reports whether an event with the given id is stored.
type EventExistenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	EventExistenceChecker
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventService defines the business logic behind the event API.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	// CreateEvent uploads the image, sets event.Image and persists the event. On success
	// event carries its generated ID and timestamps.
	CreateEvent(ctx context.Context, event *Event, image *ImageUpload) error
}

// EventFeed returns the current event listing; the listing page reads it over HTTP.
type EventFeed interface {
	ListEvents(ctx context.Context) ([]*Event, error)
}
