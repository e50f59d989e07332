package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/sitecms-go/apperror"
)

// SettingsService defines the operations on the key/value store.
type SettingsService interface {
	// All returns every setting flattened into a single key→value object.
	All(ctx context.Context) (map[string]json.RawMessage, error)
	// Get returns one setting by key or a NotFoundError.
	Get(ctx context.Context, key string) (*Setting, error)
	// Upsert creates the setting if the key is absent, otherwise updates it.
	// The bool reports whether a new record was created.
	Upsert(ctx context.Context, req UpsertRequest) (*Setting, bool, error)
	// Delete removes a setting by key or fails with a NotFoundError.
	Delete(ctx context.Context, key string) error
}

type settingsServiceImpl struct {
	db *pgxpool.Pool
}

// NewSettingsService creates the PostgreSQL-backed SettingsService.
func NewSettingsService(db *pgxpool.Pool) SettingsService {
	return &settingsServiceImpl{db: db}
}

// All returns every setting as a flat object, the shape the SPA consumes.
func (s *settingsServiceImpl) All(ctx context.Context) (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list settings", err)
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var key string
		var value json.RawMessage
		if err := rows.Scan(&key, &value); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan setting", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list settings", err)
	}
	return out, nil
}

// Get returns one setting by key.
func (s *settingsServiceImpl) Get(ctx context.Context, key string) (*Setting, error) {
	var setting Setting
	err := s.db.QueryRow(ctx,
		`SELECT key, value, description, updated_at FROM settings WHERE key = $1`, key,
	).Scan(&setting.Key, &setting.Value, &setting.Description, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("setting not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get setting", err)
	}
	return &setting, nil
}

// Upsert creates or updates a setting by key in one statement; the unique key
// constraint makes concurrent upserts safe.
func (s *settingsServiceImpl) Upsert(ctx context.Context, req UpsertRequest) (*Setting, bool, error) {
	if req.Key == "" || len(req.Value) == 0 {
		return nil, false, apperror.NewValidationError("key and value are required", nil)
	}

	var setting Setting
	var created bool
	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	query := `INSERT INTO settings (key, value, description)
              VALUES ($1, $2, $3)
              ON CONFLICT (key) DO UPDATE
              SET value = EXCLUDED.value,
                  description = CASE WHEN EXCLUDED.description <> '' THEN EXCLUDED.description ELSE settings.description END,
                  updated_at = now()
              RETURNING key, value, description, updated_at, (xmax = 0) AS inserted`
	err := s.db.QueryRow(ctx, query, req.Key, req.Value, req.Description).
		Scan(&setting.Key, &setting.Value, &setting.Description, &setting.UpdatedAt, &created)
	if err != nil {
		return nil, false, apperror.NewDatabaseError("failed to save setting", err)
	}
	return &setting, created, nil
}

// Delete removes a setting by key.
func (s *settingsServiceImpl) Delete(ctx context.Context, key string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM settings WHERE key = $1`, key)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete setting", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("setting not found", nil)
	}
	return nil
}
