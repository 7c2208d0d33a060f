package controllers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"
)

const (
	// DefaultMaxUploadBytes bounds a create-event request body when no limit is configured.
	DefaultMaxUploadBytes int64 = 10 << 20
	multipartMemory       int64 = 8 << 20
)

// CreateEventResponse is the 201 body of POST /api/events.
type CreateEventResponse struct {
	Message string        `json:"message" example:"Event Created Successfully"`
	Event   *domain.Event `json:"event"`
}

// EventResponse is the 200 body of GET /api/events/{slug}.
type EventResponse struct {
	Message string        `json:"message" example:"Event fetched successfully"`
	Event   *domain.Event `json:"event"`
}

type EventController struct {
	Logger         *slog.Logger
	Service        domain.EventService
	MaxUploadBytes int64
}

func NewEventController(logger *slog.Logger, svc domain.EventService, maxUploadBytes int64) *EventController {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &EventController{
		Logger:         logger,
		Service:        svc,
		MaxUploadBytes: maxUploadBytes,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event, newest first.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.MessageResponse "Failed to fetch events"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.ReportError(r, err)
		helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to fetch events", err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event from a multipart form. The image part is uploaded to the asset store and its URL is stored on the event. tags and agenda are JSON arrays.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Event banner image"
// @Param title formData string true "Title"
// @Param slug formData string true "URL slug"
// @Param description formData string true "Description"
// @Param overview formData string true "Overview"
// @Param venue formData string true "Venue"
// @Param location formData string true "Location"
// @Param date formData string true "Date"
// @Param time formData string true "Time"
// @Param mode formData string true "online, offline or hybrid"
// @Param audience formData string true "Audience"
// @Param organizer formData string true "Organizer"
// @Param tags formData string true "JSON array of strings, e.g. [\"ai\",\"ml\"]"
// @Param agenda formData string true "JSON array"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.MessageResponse "Image file is required"
// @Failure 401 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.MessageResponse "Event Creation Failed"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		// A body that is not multipart cannot carry an image part.
		if errors.Is(err, http.ErrNotMultipart) {
			helpers.WriteMessage(w, http.StatusBadRequest, "Image file is required")
			return
		}
		c.creationFailed(w, r, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil || header.Size == 0 {
		if err == nil {
			_ = file.Close()
		}
		helpers.WriteMessage(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	tags, err := domain.ParseTags(formValue(r.MultipartForm, "tags"))
	if err != nil {
		c.creationFailed(w, r, err)
		return
	}
	agenda, err := domain.ParseAgenda(formValue(r.MultipartForm, "agenda"))
	if err != nil {
		c.creationFailed(w, r, err)
		return
	}

	form := r.MultipartForm
	event := &domain.Event{
		Title:       formValue(form, "title"),
		Slug:        formValue(form, "slug"),
		Description: formValue(form, "description"),
		Overview:    formValue(form, "overview"),
		Venue:       formValue(form, "venue"),
		Location:    formValue(form, "location"),
		Date:        formValue(form, "date"),
		Time:        formValue(form, "time"),
		Mode:        formValue(form, "mode"),
		Audience:    formValue(form, "audience"),
		Organizer:   formValue(form, "organizer"),
		Tags:        tags,
		Agenda:      agenda,
	}
	image := &domain.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	if err := c.Service.CreateEvent(r.Context(), event, image); err != nil {
		if errors.Is(err, domain.ErrImageRequired) {
			helpers.WriteMessage(w, http.StatusBadRequest, "Image file is required")
			return
		}
		c.creationFailed(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{Message: "Event Created Successfully", Event: event})
}

func (c *EventController) creationFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		c.Logger.InfoContext(r.Context(), "event rejected", "path", r.URL.Path, "err", err)
	} else {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.ReportError(r, err)
	}
	helpers.WriteFailure(w, http.StatusInternalServerError, "Event Creation Failed", err)
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.MessageResponse "Event not found"
// @Failure 500 {object} helpers.MessageResponse
// @Router /api/events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.ReportError(r, err)
		helpers.WriteFailure(w, http.StatusInternalServerError, "Failed to fetch event", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Message: "Event fetched successfully", Event: event})
}

// formValue returns the first text value of key, or "" when absent.
func formValue(form *multipart.Form, key string) string {
	if form == nil {
		return ""
	}
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
