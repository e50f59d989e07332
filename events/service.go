package events

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/sitecms-go/apperror"
)

// EventService defines the operations on the event collection.
type EventService interface {
	List(ctx context.Context, filter ListFilter) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, req CreateRequest) (*Event, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	db *pgxpool.Pool
}

// NewEventService creates the PostgreSQL-backed EventService.
func NewEventService(db *pgxpool.Pool) EventService {
	return &eventServiceImpl{db: db}
}

const eventColumns = `id, title, description, date, location, category, organizer, status, max_participants, registration_url, published, created_at`

func scanEvent(row pgx.Row) (*Event, error) {
	var e Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
		&e.Organizer, &e.Status, &e.MaxParticipants, &e.RegistrationURL, &e.Published, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns events matching the filter, most recent first.
func (s *eventServiceImpl) List(ctx context.Context, filter ListFilter) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	where, args := buildListWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list events", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan event", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list events", err)
	}
	return events, nil
}

// GetByID returns a single event or a NotFoundError.
func (s *eventServiceImpl) GetByID(ctx context.Context, id string) (*Event, error) {
	row := s.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("event not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get event", err)
	}
	return e, nil
}

// Create stores a new event with defaults for omitted fields.
func (s *eventServiceImpl) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Date == nil {
		return nil, apperror.NewValidationError("title, description, date and category are required", nil)
	}
	if req.Status != "" && !ValidStatus(req.Status) {
		return nil, apperror.NewValidationError("invalid event status", nil)
	}

	e := &Event{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Date:            *req.Date,
		Location:        req.Location,
		Category:        req.Category,
		Organizer:       req.Organizer,
		Status:          StatusUpcoming,
		MaxParticipants: req.MaxParticipants,
		RegistrationURL: req.RegistrationURL,
		Published:       true,
	}
	if req.Status != "" {
		e.Status = req.Status
	}
	if req.Published != nil {
		e.Published = *req.Published
	}

	query := `INSERT INTO events (id, title, description, date, location, category, organizer, status, max_participants, registration_url, published)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		e.ID, e.Title, e.Description, e.Date, e.Location, e.Category, e.Organizer,
		e.Status, e.MaxParticipants, e.RegistrationURL, e.Published,
	).Scan(&e.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create event", err)
	}
	return e, nil
}

// Update applies a partial merge of the provided fields and returns the
// post-update record, or a NotFoundError.
func (s *eventServiceImpl) Update(ctx context.Context, id string, req UpdateRequest) (*Event, error) {
	if req.Status != nil && !ValidStatus(*req.Status) {
		return nil, apperror.NewValidationError("invalid event status", nil)
	}

	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.Date != nil {
		set("date", *req.Date)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Organizer != nil {
		set("organizer", *req.Organizer)
	}
	if req.Status != nil {
		set("status", *req.Status)
	}
	if req.MaxParticipants != nil {
		set("max_participants", *req.MaxParticipants)
	}
	if req.RegistrationURL != nil {
		set("registration_url", *req.RegistrationURL)
	}
	if req.Published != nil {
		set("published", *req.Published)
	}

	// Nothing to merge: the record is returned unchanged (events carry no
	// updated-at column to touch).
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE events SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + eventColumns

	e, err := scanEvent(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("event not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update event", err)
	}
	return e, nil
}

// Delete removes an event or fails with a NotFoundError.
func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("event not found", nil)
	}
	return nil
}
