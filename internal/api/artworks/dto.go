package artworks

import (
	domain "art-portfolio-app/internal/domain/artworks"
)

// ---------- requests

type CreateArtworkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Medium      string `json:"medium"`
	Date        string `json:"date"`
	Dimensions  string `json:"dimensions"`
}

// UpdateArtworkRequest is sparse: omitted fields stay untouched.
type UpdateArtworkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	Medium      *string `json:"medium"`
	Date        *string `json:"date"`
	Dimensions  *string `json:"dimensions"`
	Featured    *bool   `json:"featured"`
}

func (r UpdateArtworkRequest) fields() domain.Fields {
	return domain.Fields{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Medium:      r.Medium,
		Date:        r.Date,
		Dimensions:  r.Dimensions,
		Featured:    r.Featured,
	}
}

type ReorderRequest struct {
	// pointer so an absent or non-array value can be told apart from []
	OrderedIDs *[]string `json:"orderedIds"`
}
