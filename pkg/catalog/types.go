package catalog

import "time"

// ContentType is the domain type for the closed set of catalog categories.
type ContentType string

// Content type constants (typed).
const (
	TypeMovie  ContentType = "Movie"
	TypeSeries ContentType = "Series"
	TypeAnime  ContentType = "Anime"
)

// TypeAll is the list selector that disables type filtering. It is not a
// valid ContentType for a stored record.
const TypeAll = "all"

// ContentTypes lists every valid content type in display order.
var ContentTypes = []ContentType{TypeMovie, TypeSeries, TypeAnime}

// Valid reports whether t is a member of the closed content-type set.
func (t ContentType) Valid() bool {
	switch t {
	case TypeMovie, TypeSeries, TypeAnime:
		return true
	}
	return false
}

// Editing vocabularies. The categorical array fields on Content draw from
// these sets in the editing UI; validation stays permissive and tolerates
// values outside them (unknown values render with a fallback style).
var (
	Genres    = []string{"Action", "Animation", "Adventure", "Thriller", "Crime", "Comedy", "Horror", "Fantasy"}
	Languages = []string{"English", "Hindi", "Japanese", "Korean"}
	Subtitles = []string{"English", "Hindi", "Japanese", "Korean"}
	Qualities = []string{"480p", "720p", "1080p"}
)

// Content represents one catalog entry. Each record is persisted as a
// single self-contained document; DownloadGroups are owned exclusively by
// their Content and are replaced wholesale on every update.
//
// ImageHTML is an opaque, untrusted markup blob. The library stores it
// as-is and never interprets it; escaping is the renderer's problem.
type Content struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	ContentType    ContentType     `json:"contentType" bson:"contentType"`
	MainTitle      string          `json:"mainTitle" bson:"mainTitle"`
	SecondaryTitle string          `json:"secondaryTitle" bson:"secondaryTitle"`
	ImageHTML      string          `json:"imageHtml" bson:"imageHtml"`
	Name           string          `json:"name" bson:"name"`
	Season         string          `json:"season" bson:"season"`
	ImdbRating     *float64        `json:"imdbRating" bson:"imdbRating"`
	ReleaseYear    *int            `json:"releaseYear" bson:"releaseYear"`
	Genre          []string        `json:"genre" bson:"genre"`
	Language       []string        `json:"language" bson:"language"`
	Subtitle       []string        `json:"subtitle" bson:"subtitle"`
	Quality        []string        `json:"quality" bson:"quality"`
	FileSize       string          `json:"fileSize" bson:"fileSize"`
	Format         string          `json:"format" bson:"format"`
	Storyline      string          `json:"storyline" bson:"storyline"`
	DownloadGroups []DownloadGroup `json:"downloadGroups" bson:"downloadGroups"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// DownloadGroup is a named bundle of links under one Content (e.g.
// "Season 1 Complete"). Its ID is unique within the owning record only.
type DownloadGroup struct {
	ID    string         `json:"id" bson:"id"`
	Title string         `json:"title" bson:"title"`
	Links []DownloadLink `json:"links" bson:"links"`
}

// DownloadLink is one retrievable item with a quality tag.
type DownloadLink struct {
	ID      string `json:"id" bson:"id"`
	Title   string `json:"title" bson:"title"`
	URL     string `json:"url" bson:"url"`
	Quality string `json:"quality" bson:"quality"`
}

// Clone returns a deep copy of the content record, including its nested
// download groups and links.
func (c *Content) Clone() *Content {
	cp := *c
	if c.ImdbRating != nil {
		v := *c.ImdbRating
		cp.ImdbRating = &v
	}
	if c.ReleaseYear != nil {
		v := *c.ReleaseYear
		cp.ReleaseYear = &v
	}
	cp.Genre = copyStrings(c.Genre)
	cp.Language = copyStrings(c.Language)
	cp.Subtitle = copyStrings(c.Subtitle)
	cp.Quality = copyStrings(c.Quality)
	if c.DownloadGroups != nil {
		cp.DownloadGroups = make([]DownloadGroup, len(c.DownloadGroups))
		for i, g := range c.DownloadGroups {
			cg := g
			if g.Links != nil {
				cg.Links = make([]DownloadLink, len(g.Links))
				copy(cg.Links, g.Links)
			}
			cp.DownloadGroups[i] = cg
		}
	}
	return &cp
}

// copyStrings copies a string slice preserving the nil/empty distinction,
// so cloned records stay deep-equal to their originals.
func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// CategoryCounts is the dashboard aggregation: total record count plus a
// per-type breakdown. It is recomputed on every fetch, never cached.
type CategoryCounts struct {
	Total  int `json:"total"`
	Movies int `json:"movies"`
	Series int `json:"series"`
	Anime  int `json:"anime"`
}
