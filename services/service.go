package services

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

// CatalogService defines the operations on the service catalog.
type CatalogService interface {
	List(ctx context.Context, filter ListFilter) ([]Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	db *pgxpool.Pool
}

// NewCatalogService creates the PostgreSQL-backed CatalogService.
func NewCatalogService(db *pgxpool.Pool) CatalogService {
	return &catalogServiceImpl{db: db}
}

const serviceColumns = `id, name, description, url, icon, category, sort_order, active, created_at`

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.URL, &s.Icon, &s.Category, &s.Order, &s.Active, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns catalog entries matching the filter, ordered by the explicit
// sort order ascending with creation time descending as the tie-break.
func (s *catalogServiceImpl) List(ctx context.Context, filter ListFilter) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	where, args := buildListWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list services", err)
	}
	defer rows.Close()

	items := []Service{}
	for rows.Next() {
		item, err := scanService(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan service", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list services", err)
	}
	return items, nil
}

// GetByID returns a single catalog entry or a NotFoundError.
func (s *catalogServiceImpl) GetByID(ctx context.Context, id string) (*Service, error) {
	row := s.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	item, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("service not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get service", err)
	}
	return item, nil
}

// Create stores a new catalog entry with defaults for omitted fields.
func (s *catalogServiceImpl) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if req.Name == "" || req.Description == "" || req.URL == "" || req.Category == "" {
		return nil, apperror.NewValidationError("name, description, url and category are required", nil)
	}

	item := &Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		URL:         req.URL,
		Icon:        defaultIcon,
		Category:    req.Category,
		Order:       req.Order,
		Active:      true,
	}
	if req.Icon != "" {
		item.Icon = req.Icon
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	query := `INSERT INTO services (id, name, description, url, icon, category, sort_order, active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING created_at`
	err := s.db.QueryRow(ctx, query,
		item.ID, item.Name, item.Description, item.URL, item.Icon, item.Category, item.Order, item.Active,
	).Scan(&item.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create service", err)
	}
	return item, nil
}

// Update applies a partial merge of the provided fields and returns the
// post-update record, or a NotFoundError.
func (s *catalogServiceImpl) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if req.Name != nil {
		set("name", strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.URL != nil {
		set("url", *req.URL)
	}
	if req.Icon != nil {
		set("icon", *req.Icon)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Order != nil {
		set("sort_order", *req.Order)
	}
	if req.Active != nil {
		set("active", *req.Active)
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE services SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + serviceColumns

	item, err := scanService(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("service not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update service", err)
	}
	return item, nil
}

// Delete removes a catalog entry or fails with a NotFoundError.
func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("service not found", nil)
	}
	return nil
}
