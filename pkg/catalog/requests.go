package catalog

// Request/Response DTOs

// ContentInput carries the mutable fields of a Content record for create
// and update operations. It is the same shape as Content minus the id and
// timestamps, which are system-assigned. Numeric fields are pointers so
// that "absent" and "zero" stay distinguishable; non-numeric input must
// have been converted (or rejected) before reaching this boundary.
type ContentInput struct {
	ContentType    ContentType     `json:"contentType"`
	MainTitle      string          `json:"mainTitle"`
	SecondaryTitle string          `json:"secondaryTitle"`
	ImageHTML      string          `json:"imageHtml"`
	Name           string          `json:"name"`
	Season         string          `json:"season"`
	ImdbRating     *float64        `json:"imdbRating"`
	ReleaseYear    *int            `json:"releaseYear"`
	Genre          []string        `json:"genre"`
	Language       []string        `json:"language"`
	Subtitle       []string        `json:"subtitle"`
	Quality        []string        `json:"quality"`
	FileSize       string          `json:"fileSize"`
	Format         string          `json:"format"`
	Storyline      string          `json:"storyline"`
	DownloadGroups []DownloadGroup `json:"downloadGroups"`
}

// ListQuery contains parameters for listing content. TypeFilter is one of
// "all", "Movie", "Series", "Anime"; empty means "all". SearchTerm is a
// case-insensitive substring query; empty is a no-op.
type ListQuery struct {
	TypeFilter string
	SearchTerm string
}
