package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineverse/catalog/pkg/catalog"
	"github.com/cineverse/catalog/pkg/catalog/repo/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []catalog.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []catalog.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []catalog.Option{
				catalog.WithRepository(memory.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := catalog.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T, opts ...catalog.Option) catalog.Service {
	opts = append([]catalog.Option{catalog.WithRepository(memory.New())}, opts...)
	svc, err := catalog.New(opts...)
	require.NoError(t, err)
	require.NotNil(t, svc)
	return svc
}

func TestCreateContent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		created, err := svc.CreateContent(ctx, catalog.ContentInput{
			ContentType: catalog.TypeMovie,
			MainTitle:   "Inception",
			ImageHTML:   `<img src="https://example.com/inception.jpg"/>`,
			Quality:     []string{"720p", "1080p"},
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "", created.SecondaryTitle)
		assert.Empty(t, created.Genre)
		assert.Empty(t, created.DownloadGroups)
		assert.Equal(t, []string{"720p", "1080p"}, created.Quality)
		assert.Nil(t, created.ImdbRating)
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := svc.CreateContent(ctx, catalog.ContentInput{
			ContentType: catalog.TypeMovie,
			ImageHTML:   "<img/>",
		})
		require.Error(t, err)
		assert.True(t, catalog.IsValidation(err))
	})

	t.Run("rejects a content type outside the closed set", func(t *testing.T) {
		before, err := svc.Stats(ctx)
		require.NoError(t, err)

		_, err = svc.CreateContent(ctx, catalog.ContentInput{
			ContentType: "Pizza",
			MainTitle:   "Mystery",
			ImageHTML:   "<img/>",
		})
		require.Error(t, err)
		assert.True(t, catalog.IsValidation(err))

		// Nothing persisted, so the aggregation is unchanged.
		after, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestGetContent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("round trips a created record", func(t *testing.T) {
		rating := 8.8
		created, err := svc.CreateContent(ctx, catalog.ContentInput{
			ContentType: catalog.TypeSeries,
			MainTitle:   "Breaking Bad",
			ImageHTML:   "<img/>",
			ImdbRating:  &rating,
			Genre:       []string{"Crime"},
			DownloadGroups: []catalog.DownloadGroup{
				{Title: "Season 1 Complete", Links: []catalog.DownloadLink{
					{Title: "Episode 1", URL: "https://example.com/s01e01", Quality: "720p"},
				}},
			},
		})
		require.NoError(t, err)

		retrieved, err := svc.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, retrieved)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetContent(ctx, "no-such-id")
		assert.ErrorIs(t, err, catalog.ErrContentNotFound)
	})
}

func TestListContent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	mk := func(ct catalog.ContentType, title string, extra func(*catalog.ContentInput)) *catalog.Content {
		in := catalog.ContentInput{ContentType: ct, MainTitle: title, ImageHTML: "<img/>"}
		if extra != nil {
			extra(&in)
		}
		created, err := svc.CreateContent(ctx, in)
		require.NoError(t, err)
		return created
	}

	first := mk(catalog.TypeMovie, "Inception", func(in *catalog.ContentInput) {
		in.ReleaseYear = intPtr(2010)
	})
	second := mk(catalog.TypeSeries, "Breaking Bad", func(in *catalog.ContentInput) {
		in.ReleaseYear = intPtr(2008)
		in.Genre = []string{"Crime"}
	})
	third := mk(catalog.TypeAnime, "Attack on Titan", nil)

	t.Run("newest first", func(t *testing.T) {
		items, err := svc.ListContent(ctx, catalog.ListQuery{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, third.ID, items[0].ID)
		assert.Equal(t, second.ID, items[1].ID)
		assert.Equal(t, first.ID, items[2].ID)
	})

	t.Run("new record moves to the front", func(t *testing.T) {
		fresh := mk(catalog.TypeMovie, "Tenet", nil)
		items, err := svc.ListContent(ctx, catalog.ListQuery{})
		require.NoError(t, err)
		require.NotEmpty(t, items)
		assert.Equal(t, fresh.ID, items[0].ID)

		require.NoError(t, svc.DeleteContent(ctx, fresh.ID))
	})

	t.Run("type filter", func(t *testing.T) {
		items, err := svc.ListContent(ctx, catalog.ListQuery{TypeFilter: string(catalog.TypeSeries)})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, second.ID, items[0].ID)
	})

	t.Run("search by year substring", func(t *testing.T) {
		items, err := svc.ListContent(ctx, catalog.ListQuery{SearchTerm: "20"})
		require.NoError(t, err)
		assert.Len(t, items, 2) // 2010 and 2008
	})

	t.Run("search by title is case-insensitive", func(t *testing.T) {
		items, err := svc.ListContent(ctx, catalog.ListQuery{SearchTerm: "breaking"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, second.ID, items[0].ID)
	})

	t.Run("search by unique genre", func(t *testing.T) {
		items, err := svc.ListContent(ctx, catalog.ListQuery{SearchTerm: "CRIME"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, second.ID, items[0].ID)
	})

	t.Run("empty term equals no filter", func(t *testing.T) {
		all, err := svc.ListContent(ctx, catalog.ListQuery{})
		require.NoError(t, err)
		searched, err := svc.ListContent(ctx, catalog.ListQuery{SearchTerm: ""})
		require.NoError(t, err)
		assert.Equal(t, all, searched)
	})
}

func TestUpdateContent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	svc := setupTestService(t, catalog.WithClock(clock))
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, catalog.ContentInput{
		ContentType: catalog.TypeSeries,
		MainTitle:   "Breaking Bad",
		ImageHTML:   "<img/>",
	})
	require.NoError(t, err)

	t.Run("replaces fields and refreshes updatedAt", func(t *testing.T) {
		updated, err := svc.UpdateContent(ctx, created.ID, catalog.ContentInput{
			ContentType:    catalog.TypeSeries,
			MainTitle:      "Breaking Bad",
			SecondaryTitle: "Remastered",
			ImageHTML:      "<img/>",
			DownloadGroups: []catalog.DownloadGroup{
				{Title: "Season 1", Links: []catalog.DownloadLink{
					{Title: "Full", URL: "https://example.com/s1", Quality: "1080p"},
				}},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Remastered", updated.SecondaryTitle)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
		require.Len(t, updated.DownloadGroups, 1)

		stored, err := svc.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("download groups replaced wholesale", func(t *testing.T) {
		updated, err := svc.UpdateContent(ctx, created.ID, catalog.ContentInput{
			ContentType: catalog.TypeSeries,
			MainTitle:   "Breaking Bad",
			ImageHTML:   "<img/>",
			DownloadGroups: []catalog.DownloadGroup{
				{Title: "Season 2", Links: []catalog.DownloadLink{
					{Title: "Full", URL: "https://example.com/s2", Quality: "720p"},
				}},
			},
		})
		require.NoError(t, err)
		require.Len(t, updated.DownloadGroups, 1)
		assert.Equal(t, "Season 2", updated.DownloadGroups[0].Title)
	})

	t.Run("empty group dropped on update", func(t *testing.T) {
		updated, err := svc.UpdateContent(ctx, created.ID, catalog.ContentInput{
			ContentType: catalog.TypeSeries,
			MainTitle:   "Breaking Bad",
			ImageHTML:   "<img/>",
			DownloadGroups: []catalog.DownloadGroup{
				{Title: "", Links: []catalog.DownloadLink{}},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, updated.DownloadGroups)
	})

	t.Run("validation failure leaves record untouched", func(t *testing.T) {
		before, err := svc.GetContent(ctx, created.ID)
		require.NoError(t, err)

		_, err = svc.UpdateContent(ctx, created.ID, catalog.ContentInput{
			ContentType: catalog.TypeSeries,
		})
		require.Error(t, err)
		assert.True(t, catalog.IsValidation(err))

		after, err := svc.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateContent(ctx, "no-such-id", catalog.ContentInput{
			ContentType: catalog.TypeMovie,
			MainTitle:   "Ghost",
			ImageHTML:   "<img/>",
		})
		assert.ErrorIs(t, err, catalog.ErrContentNotFound)
	})
}

func TestDeleteContent(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateContent(ctx, catalog.ContentInput{
		ContentType: catalog.TypeMovie,
		MainTitle:   "Inception",
		ImageHTML:   "<img/>",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContent(ctx, created.ID))

	_, err = svc.GetContent(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrContentNotFound)

	// Second delete reports not-found, never a different error class.
	err = svc.DeleteContent(ctx, created.ID)
	assert.ErrorIs(t, err, catalog.ErrContentNotFound)
	assert.False(t, catalog.IsValidation(err))

	var se *catalog.StoreError
	assert.False(t, errors.As(err, &se))
}

func TestStats(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	for _, ct := range []catalog.ContentType{
		catalog.TypeMovie, catalog.TypeMovie, catalog.TypeSeries, catalog.TypeAnime,
	} {
		_, err := svc.CreateContent(ctx, catalog.ContentInput{
			ContentType: ct,
			MainTitle:   "Entry",
			ImageHTML:   "<img/>",
		})
		require.NoError(t, err)
	}

	counts, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryCounts{Total: 4, Movies: 2, Series: 1, Anime: 1}, counts)

	// Recomputed on every fetch
	created, err := svc.CreateContent(ctx, catalog.ContentInput{
		ContentType: catalog.TypeAnime,
		MainTitle:   "Another",
		ImageHTML:   "<img/>",
	})
	require.NoError(t, err)

	counts, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, counts.Total)
	assert.Equal(t, 2, counts.Anime)

	require.NoError(t, svc.DeleteContent(ctx, created.ID))
	counts, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Total)
}
