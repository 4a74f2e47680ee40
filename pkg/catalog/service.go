package catalog

import "context"

// Service defines the main interface for the catalog library.
type Service interface {
	// CreateContent validates and normalizes the input, assigns the id and
	// timestamps, and persists a new record.
	CreateContent(ctx context.Context, in ContentInput) (*Content, error)

	// GetContent returns the full record or ErrContentNotFound.
	GetContent(ctx context.Context, id string) (*Content, error)

	// ListContent returns all records narrowed by the query, newest first.
	ListContent(ctx context.Context, q ListQuery) ([]*Content, error)

	// UpdateContent validates and normalizes the input and fully replaces
	// the record's mutable fields, including its download groups. The id
	// and CreatedAt are preserved; UpdatedAt is refreshed.
	UpdateContent(ctx context.Context, id string, in ContentInput) (*Content, error)

	// DeleteContent removes the record and its nested groups atomically.
	DeleteContent(ctx context.Context, id string) error

	// Stats recomputes the per-type category counts for the dashboard.
	Stats(ctx context.Context) (CategoryCounts, error)
}
