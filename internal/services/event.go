package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"devevent/internal/domain"
)

// AssetFolder is the logical folder event images are uploaded under.
const AssetFolder = "DevEvent"

type eventService struct {
	eventRepo      domain.EventRepository
	assets         domain.AssetStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	assets domain.AssetStore,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		assets:         assets,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

// CreateEvent validates the event, uploads the image and inserts the record. Nothing is
// written when the upload fails. When the insert fails after a successful upload the
// uploaded image is deleted again.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, image *domain.ImageUpload) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if image == nil || image.Body == nil || image.Size == 0 {
		return domain.ErrImageRequired
	}
	event.Normalize()
	if err := event.Validate(); err != nil {
		return err
	}

	secureURL, err := s.assets.Upload(ctx, AssetFolder, image)
	if err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	if secureURL == "" {
		return errors.New("upload image: asset store returned no url")
	}
	event.Image = secureURL

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.discardAsset(ctx, secureURL)
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) discardAsset(ctx context.Context, secureURL string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.contextTimeout)
	defer cancel()
	if err := s.assets.Delete(ctx, secureURL); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete orphaned event image", "url", secureURL, "err", err)
	}
}
