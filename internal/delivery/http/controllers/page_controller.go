package controllers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"devevent/internal/delivery/http/helpers"
	"devevent/internal/domain"
)

//go:embed templates/index.html
var pageFS embed.FS

type listingPage struct {
	Events []*domain.Event
}

// PageController renders the public event listing from the events API.
type PageController struct {
	Logger *slog.Logger
	Feed   domain.EventFeed
	tmpl   *template.Template
}

func NewPageController(logger *slog.Logger, feed domain.EventFeed) (*PageController, error) {
	tmpl, err := template.ParseFS(pageFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse listing page template: %w", err)
	}
	return &PageController{Logger: logger, Feed: feed, tmpl: tmpl}, nil
}

// Index renders the listing page. Nothing is written until the whole page has rendered.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	events, err := c.Feed.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "fetch events for listing page", "err", err)
		helpers.ReportError(r, err)
		http.Error(w, "Failed to fetch events", http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := c.tmpl.ExecuteTemplate(&buf, "index.html", listingPage{Events: events}); err != nil {
		c.Logger.ErrorContext(r.Context(), "render listing page", "err", err)
		helpers.ReportError(r, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
