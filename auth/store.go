// Credential store: the only owner of Admin records. Password hashing happens
// here, as an explicit step on the write paths that change the password, never
// as an implicit hook on every save. Re-saving an admin through any other
// path cannot corrupt the stored hash by re-hashing it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/sitecms-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AdminStore is the credential store contract. Handlers and services depend on
// this interface; the pgx implementation below is the production one and tests
// substitute an in-memory fake.
type AdminStore interface {
	// Count returns the number of admin accounts; it gates first-time setup.
	Count(ctx context.Context) (int64, error)
	// CreateFirst creates the initial admin account. It fails with a
	// ValidationError when an admin already exists or when the unique
	// username/email constraints are violated.
	CreateFirst(ctx context.Context, username, email, plaintextPassword string) (*Admin, error)
	// FindByUsername returns the admin with the given username, or a
	// NotFoundError.
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	// UpdatePassword re-hashes and stores a new password for the admin with
	// the given id. This is the only path that ever re-hashes.
	UpdatePassword(ctx context.Context, id, plaintextPassword string) error
}

// HashPassword produces a one-way bcrypt hash of the plaintext. The cost
// factor makes hashing deliberately expensive to slow brute-force attempts.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword compares a candidate plaintext against the admin's stored
// hash. bcrypt's comparison does not reveal timing differences beyond the hash
// computation itself, and the result says only match or no match.
func VerifyPassword(admin *Admin, candidatePlaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(candidatePlaintext)) == nil
}

// PgAdminStore is the PostgreSQL-backed AdminStore.
type PgAdminStore struct {
	db *pgxpool.Pool
}

// NewPgAdminStore creates a PgAdminStore on the given pool.
func NewPgAdminStore(db *pgxpool.Pool) *PgAdminStore {
	return &PgAdminStore{db: db}
}

// Count returns the number of admin accounts.
func (s *PgAdminStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, apperror.NewDatabaseError("failed to count admins", err)
	}
	return count, nil
}

// CreateFirst creates the initial admin account inside a single transaction.
// A bare count-then-insert is a check-then-act race: two concurrent setup
// requests can both observe a count of zero. The transaction takes a table
// lock so the count and the insert are atomic, and the unique constraints on
// username and email remain the storage-level safety net regardless.
func (s *PgAdminStore) CreateFirst(ctx context.Context, username, email, plaintextPassword string) (*Admin, error) {
	hashed, err := HashPassword(plaintextPassword)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	admin := &Admin{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          strings.ToLower(email),
		HashedPassword: hashed,
		IsFirstLogin:   false,
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serializes concurrent setup attempts; conflicting lockers wait here.
	if _, err := tx.Exec(ctx, `LOCK TABLE admins IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, apperror.NewDatabaseError("failed to lock admins table", err)
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return nil, apperror.NewDatabaseError("failed to count admins", err)
	}
	if count > 0 {
		return nil, apperror.NewValidationError("administrator account already exists", nil)
	}

	query := `INSERT INTO admins (id, username, email, password, is_first_login)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING created_at`
	err = tx.QueryRow(ctx, query, admin.ID, admin.Username, admin.Email, admin.HashedPassword, admin.IsFirstLogin).
		Scan(&admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, apperror.NewValidationError("email already exists", nil)
			}
			return nil, apperror.NewValidationError("username already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create admin", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewDatabaseError("failed to commit transaction", err)
	}
	return admin, nil
}

// FindByUsername returns the admin with the given username.
func (s *PgAdminStore) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	query := `SELECT id, username, email, password, is_first_login, created_at
              FROM admins WHERE username = $1`
	err := s.db.QueryRow(ctx, query, username).
		Scan(&admin.ID, &admin.Username, &admin.Email, &admin.HashedPassword, &admin.IsFirstLogin, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("admin not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get admin by username", err)
	}
	return &admin, nil
}

// UpdatePassword stores a new hash for the admin. Only the password column is
// touched; this is the single place where a stored hash is ever replaced.
func (s *PgAdminStore) UpdatePassword(ctx context.Context, id, plaintextPassword string) error {
	hashed, err := HashPassword(plaintextPassword)
	if err != nil {
		return apperror.NewInternalError("failed to hash password", err)
	}

	tag, err := s.db.Exec(ctx, `UPDATE admins SET password = $1, is_first_login = FALSE WHERE id = $2`, hashed, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("admin not found", nil)
	}
	return nil
}
