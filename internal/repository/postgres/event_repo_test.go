package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devevent/internal/domain"
)

var eventRowColumns = []string{
	"id", "title", "slug", "description", "overview", "image", "venue", "location",
	"event_date", "event_time", "mode", "audience", "agenda", "organizer", "tags", "created_at", "updated_at",
}

func addEventRow(rows *sqlmock.Rows, id, title string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, title, "gophercon", "Go conference", "Talks", "https://cdn.example.com/DevEvent/a.png",
		"Hall A", "Berlin", "2026-11-02", "09:00", "offline", "Developers",
		[]byte(`[{"time":"10:00","title":"Keynote"}]`), "Gopher Org", "{ai,ml}", createdAt, createdAt,
	)
}

func newTestEvent() *domain.Event {
	return &domain.Event{
		Title:       "GopherCon",
		Slug:        "gophercon",
		Description: "Go conference",
		Overview:    "Talks",
		Image:       "https://cdn.example.com/DevEvent/a.png",
		Venue:       "Hall A",
		Location:    "Berlin",
		Date:        "2026-11-02",
		Time:        "09:00",
		Mode:        "offline",
		Audience:    "Developers",
		Agenda:      []json.RawMessage{json.RawMessage(`{"time":"10:00","title":"Keynote"}`)},
		Organizer:   "Gopher Org",
		Tags:        []string{"ai", "ml"},
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, slug, description, overview, image, venue, location, event_date, event_time, mode, audience, agenda, organizer, tags\)`).
					WithArgs("GopherCon", "gophercon", "Go conference", "Talks", "https://cdn.example.com/DevEvent/a.png",
						"Hall A", "Berlin", "2026-11-02", "09:00", "offline", "Developers",
						`[{"time":"10:00","title":"Keynote"}]`, "Gopher Org", sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("ev-uuid-1", created, created))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "events_slug_key"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			event := newTestEvent()
			err = repo.Create(ctx, event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, event.ID)
			require.Equal(t, created, event.CreatedAt)
			require.Equal(t, created, event.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventRowColumns)
	addEventRow(rows, "ev-2", "Newer", newer)
	addEventRow(rows, "ev-1", "Older", older)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + eventColumns + ` FROM events ORDER BY created_at DESC, id DESC`)).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ev-2", events[0].ID)
	assert.Equal(t, []string{"ai", "ml"}, events[0].Tags)
	require.Len(t, events[0].Agenda, 1)
	assert.JSONEq(t, `{"time":"10:00","title":"Keynote"}`, string(events[0].Agenda[0]))
	assert.Equal(t, "2026-11-02", events[0].Date)
	assert.False(t, events[0].CreatedAt.Before(events[1].CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	events, err := NewEventRepository(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventRepository_List_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events`).WillReturnError(errors.New("boom"))

	events, err := NewEventRepository(db).List(context.Background())
	require.Error(t, err)
	assert.Nil(t, events)
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventRowColumns)
				addEventRow(rows, "ev-1", "GopherCon", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
				mock.ExpectQuery(`FROM events WHERE slug = \$1`).WithArgs("gophercon").WillReturnRows(rows)
			},
			wantID: "ev-1",
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM events WHERE slug = \$1`).WithArgs("gophercon").WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			e, err := NewEventRepository(db).GetBySlug(ctx, "gophercon")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, e.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM events WHERE id = \$1`).WithArgs("ev-missing").WillReturnError(sql.ErrNoRows)

	_, err = NewEventRepository(db).GetByID(context.Background(), "ev-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_Exists(t *testing.T) {
	for _, want := range []bool{true, false} {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM events WHERE id = \$1\)`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(want))

		got, err := NewEventRepository(db).Exists(context.Background(), "ev-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
}
