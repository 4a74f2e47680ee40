package catalog

import "github.com/google/uuid"

// ValidateInput enforces the required-field rules applied on every create
// and update, before any store interaction. ContentType must be a member
// of the closed type set (the whole browse and aggregation surface keys
// on it); MainTitle and ImageHTML must be present and non-empty. Values
// outside the editing vocabularies are tolerated (the UI renders them
// with a fallback style), matching the permissive behavior of the admin
// surface.
func ValidateInput(in ContentInput) error {
	if in.ContentType == "" {
		return &ValidationError{Field: "contentType", Reason: "is required"}
	}
	if !in.ContentType.Valid() {
		return &ValidationError{Field: "contentType", Reason: "must be one of Movie, Series, Anime"}
	}
	if in.MainTitle == "" {
		return &ValidationError{Field: "mainTitle", Reason: "is required"}
	}
	if in.ImageHTML == "" {
		return &ValidationError{Field: "imageHtml", Reason: "is required"}
	}
	return nil
}

// NormalizeInput substitutes the documented defaults for absent optional
// fields and cleans up editor noise so the persisted document is
// deterministic:
//
//   - nil array fields become empty slices, deduplicated preserving first
//     occurrence (the editing UI toggles set membership, so duplicates are
//     editor artifacts);
//   - download groups with neither a title nor any links are dropped;
//     groups with only a title, or only links, are kept;
//   - group and link ids are minted when empty and preserved when present.
func NormalizeInput(in ContentInput) ContentInput {
	in.Genre = dedupe(in.Genre)
	in.Language = dedupe(in.Language)
	in.Subtitle = dedupe(in.Subtitle)
	in.Quality = dedupe(in.Quality)
	in.DownloadGroups = cleanGroups(in.DownloadGroups)
	return in
}

// dedupe returns a non-nil copy of values with duplicates removed,
// preserving the first occurrence of each element.
func dedupe(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

func cleanGroups(groups []DownloadGroup) []DownloadGroup {
	result := make([]DownloadGroup, 0, len(groups))
	for _, g := range groups {
		if g.Title == "" && len(g.Links) == 0 {
			continue
		}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		links := make([]DownloadLink, 0, len(g.Links))
		for _, l := range g.Links {
			if l.ID == "" {
				l.ID = uuid.NewString()
			}
			links = append(links, l)
		}
		g.Links = links
		result = append(result, g)
	}
	return result
}
