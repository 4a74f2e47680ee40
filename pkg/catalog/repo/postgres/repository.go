package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cineverse/catalog/pkg/catalog"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements catalog.Repository on PostgreSQL. Each record is
// stored as one self-contained JSONB document (download groups nested
// inside), keeping the document-store semantics of the contract: every
// write is a single atomic row replace.
//
// Schema:
//
//	CREATE TABLE content (
//	    id         TEXT PRIMARY KEY,
//	    doc        JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) catalog.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) catalog.Repository {
	return &Repository{db: pool}
}

func (r *Repository) CreateContent(ctx context.Context, content *catalog.Content) error {
	if content.ID == "" {
		content.ID = uuid.NewString()
	}

	doc, err := json.Marshal(content)
	if err != nil {
		return &catalog.StoreError{Op: "create content", Err: err}
	}

	query := `
		INSERT INTO content (id, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, content.ID, doc, content.CreatedAt, content.UpdatedAt); err != nil {
		return r.wrapError("create content", err)
	}

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id string) (*catalog.Content, error) {
	query := `SELECT doc FROM content WHERE id = $1`

	var doc []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrContentNotFound
		}
		return nil, r.wrapError("get content", err)
	}

	return decode(doc)
}

func (r *Repository) ListContent(ctx context.Context) ([]*catalog.Content, error) {
	query := `SELECT doc FROM content ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, r.wrapError("list content", err)
	}
	defer rows.Close()

	var contents []*catalog.Content
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, r.wrapError("list content", err)
		}
		content, err := decode(doc)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrapError("list content", err)
	}

	return contents, nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *catalog.Content) error {
	doc, err := json.Marshal(content)
	if err != nil {
		return &catalog.StoreError{Op: "update content", Err: err}
	}

	query := `UPDATE content SET doc = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, content.ID, doc, content.UpdatedAt)
	if err != nil {
		return r.wrapError("update content", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrContentNotFound
	}

	return nil
}

func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	// Hard delete: the whole document goes, nested groups with it.
	tag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return r.wrapError("delete content", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrContentNotFound
	}

	return nil
}

func decode(doc []byte) (*catalog.Content, error) {
	var content catalog.Content
	if err := json.Unmarshal(doc, &content); err != nil {
		return nil, &catalog.StoreError{Op: "decode content", Err: err}
	}
	return &content, nil
}

func (r *Repository) wrapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return &catalog.StoreError{Op: op, Err: fmt.Errorf("content already exists")}
		case "42P01": // undefined_table
			return &catalog.StoreError{Op: op, Err: fmt.Errorf("table does not exist - database migration required")}
		}
	}
	return &catalog.StoreError{Op: op, Err: err}
}
