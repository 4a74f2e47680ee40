package catalog

import "context"

// Repository defines the persistence contract for catalog records. Any
// document-oriented store satisfying it may be substituted; each Content
// is held as one self-contained document (download groups nested inside),
// so every operation is a single atomic document read or replace.
//
// Adapters wrap transport faults in *StoreError and report a missing id
// as ErrContentNotFound.
type Repository interface {
	// CreateContent persists a new record. When content.ID is empty the
	// adapter assigns an opaque identifier of its own; once assigned the
	// id is never recomputed.
	CreateContent(ctx context.Context, content *Content) error

	// GetContent returns the record with the given id, or
	// ErrContentNotFound.
	GetContent(ctx context.Context, id string) (*Content, error)

	// ListContent returns every record ordered by CreatedAt descending
	// (newest first). The query engine depends on this ordering for
	// display order.
	ListContent(ctx context.Context) ([]*Content, error)

	// UpdateContent fully replaces the stored document for content.ID,
	// including its download groups. ErrContentNotFound when absent.
	UpdateContent(ctx context.Context, content *Content) error

	// DeleteContent removes the record and its nested groups and links.
	// A missing id reports ErrContentNotFound; callers treating delete as
	// idempotent may ignore that error class.
	DeleteContent(ctx context.Context, id string) error
}
