// Business logic and storage for blog posts. The service interface lets
// handlers depend on behavior rather than on the database; the pgx
// implementation keeps its SQL local to this file.
package blog

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/microcosm-cc/bluemonday"

	"github.com/user/sitecms-go/apperror"
)

// BlogService defines the operations on the blog collection.
type BlogService interface {
	List(ctx context.Context, filter ListFilter) ([]Blog, error)
	GetByID(ctx context.Context, id string) (*Blog, error)
	Create(ctx context.Context, req CreateRequest) (*Blog, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogServiceImpl struct {
	db *pgxpool.Pool
	// sanitizer strips dangerous markup from editor-sourced HTML before it is
	// stored. Applied on every write, never on read.
	sanitizer *bluemonday.Policy
}

// NewBlogService creates the PostgreSQL-backed BlogService.
func NewBlogService(db *pgxpool.Pool) BlogService {
	return &blogServiceImpl{
		db:        db,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

const blogColumns = `id, title, excerpt, content, author, date, read_time, category, tags, cover, published, created_at, updated_at`

func scanBlog(row pgx.Row) (*Blog, error) {
	var b Blog
	err := row.Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Author, &b.Date, &b.ReadTime,
		&b.Category, &b.Tags, &b.Cover, &b.Published, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return &b, nil
}

// List returns blog posts matching the filter, most recent first.
func (s *blogServiceImpl) List(ctx context.Context, filter ListFilter) ([]Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	where, args := buildListWhere(filter)
	if where != "" {
		query += " WHERE " + where
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list blog posts", err)
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan blog post", err)
		}
		blogs = append(blogs, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list blog posts", err)
	}
	return blogs, nil
}

// GetByID returns a single blog post or a NotFoundError.
func (s *blogServiceImpl) GetByID(ctx context.Context, id string) (*Blog, error) {
	row := s.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	b, err := scanBlog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("blog post not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get blog post", err)
	}
	return b, nil
}

// Create stores a new blog post, applying defaults for omitted fields and
// sanitizing the rich-content fields.
func (s *blogServiceImpl) Create(ctx context.Context, req CreateRequest) (*Blog, error) {
	if req.Title == "" || req.Excerpt == "" || req.Content == "" || req.Author == "" || req.Category == "" {
		return nil, apperror.NewValidationError("title, excerpt, content, author and category are required", nil)
	}

	b := &Blog{
		ID:       uuid.NewString(),
		Title:    strings.TrimSpace(req.Title),
		Excerpt:  s.sanitizer.Sanitize(req.Excerpt),
		Content:  s.sanitizer.Sanitize(req.Content),
		Author:   req.Author,
		Date:     time.Now(),
		ReadTime: defaultReadTime,
		Category: req.Category,
		Tags:     req.Tags,
		Cover:    req.Cover,
		// Posts are published unless the caller says otherwise.
		Published: true,
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.ReadTime != "" {
		b.ReadTime = req.ReadTime
	}
	if req.Published != nil {
		b.Published = *req.Published
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}

	query := `INSERT INTO blogs (id, title, excerpt, content, author, date, read_time, category, tags, cover, published)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING created_at, updated_at`
	err := s.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Excerpt, b.Content, b.Author, b.Date, b.ReadTime, b.Category, b.Tags, b.Cover, b.Published,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create blog post", err)
	}
	return b, nil
}

// Update applies a partial merge of the provided fields onto the stored
// record and returns the post-update record. updatedAt is reset to the
// current time on every mutation, whether or not other fields changed.
func (s *blogServiceImpl) Update(ctx context.Context, id string, req UpdateRequest) (*Blog, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Excerpt != nil {
		set("excerpt", s.sanitizer.Sanitize(*req.Excerpt))
	}
	if req.Content != nil {
		set("content", s.sanitizer.Sanitize(*req.Content))
	}
	if req.Author != nil {
		set("author", *req.Author)
	}
	if req.Date != nil {
		set("date", *req.Date)
	}
	if req.ReadTime != nil {
		set("read_time", *req.ReadTime)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Tags != nil {
		set("tags", *req.Tags)
	}
	if req.Cover != nil {
		set("cover", *req.Cover)
	}
	if req.Published != nil {
		set("published", *req.Published)
	}

	args = append(args, id)
	query := `UPDATE blogs SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + blogColumns

	b, err := scanBlog(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("blog post not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update blog post", err)
	}
	return b, nil
}

// Delete removes a blog post or fails with a NotFoundError.
func (s *blogServiceImpl) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete blog post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("blog post not found", nil)
	}
	return nil
}
