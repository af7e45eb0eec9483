package artworks

const (
	// DefaultCategory labels records created without a category.
	DefaultCategory   = "Artwork"
	DefaultMedium     = "Unknown"
	DefaultDimensions = "Unknown"

	// MaxFeatured caps how many records may sit in the landing-page
	// carousel at once. Enforced at the write boundary that flips the
	// flag, not re-validated on every read.
	MaxFeatured = 5
)

// Artwork is one record in the persisted collection. Records persisted by
// older writers may lack newer fields; decoding tolerates their absence and
// leaves the zero value.
type Artwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Medium      string `json:"medium"`
	Date        string `json:"date"`
	Dimensions  string `json:"dimensions"`
	CreatedAt   int64  `json:"createdAt"`
	Featured    bool   `json:"featured,omitempty"`
}

// Fields is a sparse update: only non-nil fields are applied. ID and
// CreatedAt are immutable and deliberately have no slot here.
type Fields struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Medium      *string `json:"medium"`
	Date        *string `json:"date"`
	Dimensions  *string `json:"dimensions"`
	Featured    *bool   `json:"featured"`
}

// Merge overlays the non-nil fields onto a copy of the record.
func Merge(a Artwork, f Fields) Artwork {
	if f.Title != nil {
		a.Title = *f.Title
	}
	if f.Description != nil {
		a.Description = *f.Description
	}
	if f.ImageURL != nil {
		a.ImageURL = *f.ImageURL
	}
	if f.Category != nil {
		a.Category = *f.Category
	}
	if f.Medium != nil {
		a.Medium = *f.Medium
	}
	if f.Date != nil {
		a.Date = *f.Date
	}
	if f.Dimensions != nil {
		a.Dimensions = *f.Dimensions
	}
	if f.Featured != nil {
		a.Featured = *f.Featured
	}
	return a
}
