package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// service implements the Service interface
type service struct {
	repository Repository
	now        func() time.Time
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the store adapter for the service. Exactly one
// long-lived repository instance should back all requests.
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		now: func() time.Time { return time.Now().UTC() },
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}

	return s, nil
}

func (s *service) CreateContent(ctx context.Context, in ContentInput) (*Content, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	in = NormalizeInput(in)

	now := s.now()
	content := &Content{
		ContentType:    in.ContentType,
		MainTitle:      in.MainTitle,
		SecondaryTitle: in.SecondaryTitle,
		ImageHTML:      in.ImageHTML,
		Name:           in.Name,
		Season:         in.Season,
		ImdbRating:     in.ImdbRating,
		ReleaseYear:    in.ReleaseYear,
		Genre:          in.Genre,
		Language:       in.Language,
		Subtitle:       in.Subtitle,
		Quality:        in.Quality,
		FileSize:       in.FileSize,
		Format:         in.Format,
		Storyline:      in.Storyline,
		DownloadGroups: in.DownloadGroups,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repository.CreateContent(ctx, content); err != nil {
		return nil, &ContentError{
			ContentID: content.ID,
			Op:        "create",
			Err:       err,
		}
	}

	return content, nil
}

func (s *service) GetContent(ctx context.Context, id string) (*Content, error) {
	return s.repository.GetContent(ctx, id)
}

func (s *service) ListContent(ctx context.Context, q ListQuery) ([]*Content, error) {
	items, err := s.repository.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, q), nil
}

func (s *service) UpdateContent(ctx context.Context, id string, in ContentInput) (*Content, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	in = NormalizeInput(in)

	existing, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	content := &Content{
		ID:             existing.ID,
		ContentType:    in.ContentType,
		MainTitle:      in.MainTitle,
		SecondaryTitle: in.SecondaryTitle,
		ImageHTML:      in.ImageHTML,
		Name:           in.Name,
		Season:         in.Season,
		ImdbRating:     in.ImdbRating,
		ReleaseYear:    in.ReleaseYear,
		Genre:          in.Genre,
		Language:       in.Language,
		Subtitle:       in.Subtitle,
		Quality:        in.Quality,
		FileSize:       in.FileSize,
		Format:         in.Format,
		Storyline:      in.Storyline,
		DownloadGroups: in.DownloadGroups,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      s.now(),
	}

	if err := s.repository.UpdateContent(ctx, content); err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return nil, err
		}
		return nil, &ContentError{
			ContentID: id,
			Op:        "update",
			Err:       err,
		}
	}

	return content, nil
}

func (s *service) DeleteContent(ctx context.Context, id string) error {
	if err := s.repository.DeleteContent(ctx, id); err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return err
		}
		return &ContentError{
			ContentID: id,
			Op:        "delete",
			Err:       err,
		}
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (CategoryCounts, error) {
	items, err := s.repository.ListContent(ctx)
	if err != nil {
		return CategoryCounts{}, err
	}
	return CountByType(items), nil
}
