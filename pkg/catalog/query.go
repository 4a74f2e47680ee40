package catalog

import (
	"strconv"
	"strings"
)

// Filter narrows items by content type and search term, composing both
// with logical AND. It never fails and never reorders: matches keep the
// store's newest-first ordering. An empty or "all" type selector and an
// empty search term are no-ops.
func Filter(items []*Content, q ListQuery) []*Content {
	result := items

	if q.TypeFilter != "" && q.TypeFilter != TypeAll {
		filtered := make([]*Content, 0, len(result))
		for _, c := range result {
			if c.ContentType == ContentType(q.TypeFilter) {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}

	if q.SearchTerm != "" {
		lowered := strings.ToLower(q.SearchTerm)
		filtered := make([]*Content, 0, len(result))
		for _, c := range result {
			if matches(c, lowered, q.SearchTerm) {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}

	return result
}

// matches reports whether the record contains the term in any searchable
// field. Text matching is case-insensitive; releaseYear matches on its
// decimal digits, so a two-digit term can hit part of a four-digit year.
func matches(c *Content, lowered, raw string) bool {
	for _, field := range []string{
		c.MainTitle,
		c.SecondaryTitle,
		c.Name,
		c.Season,
		c.Storyline,
		string(c.ContentType),
	} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	for _, values := range [][]string{c.Genre, c.Language, c.Subtitle, c.Quality} {
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), lowered) {
				return true
			}
		}
	}
	if c.ReleaseYear != nil && strings.Contains(strconv.Itoa(*c.ReleaseYear), raw) {
		return true
	}
	return false
}

// CountByType computes the dashboard aggregation over a listed snapshot.
func CountByType(items []*Content) CategoryCounts {
	counts := CategoryCounts{Total: len(items)}
	for _, c := range items {
		switch c.ContentType {
		case TypeMovie:
			counts.Movies++
		case TypeSeries:
			counts.Series++
		case TypeAnime:
			counts.Anime++
		}
	}
	return counts
}
