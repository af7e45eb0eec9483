// Package gallery derives display views from the artwork collection without
// touching the stored manual order.
package gallery

import (
	"iter"
	"sort"
	"strings"

	"art-portfolio-app/internal/domain/artworks"
)

// Mode is a display sort order.
type Mode string

const (
	// SortManual preserves the stored sequence, the only order a reorder
	// may rearrange.
	SortManual  Mode = "manual"
	SortDateNew Mode = "date-new"
	SortDateOld Mode = "date-old"
	SortTitle   Mode = "title"
)

// ParseMode maps a query value to a Mode, falling back to manual.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case SortDateNew, SortDateOld, SortTitle:
		return Mode(s)
	default:
		return SortManual
	}
}

// Reorderable reports whether drag-reordering is meaningful under this sort.
// Reordering while viewing any other sort would scramble what the manual
// order means, so the UI must disable it there.
func (m Mode) Reorderable() bool {
	return m == SortManual
}

// Options narrows and orders the view. Empty filter values match everything.
type Options struct {
	Search string // case-insensitive substring of the title
	Medium string // exact medium
	Year   string // calendar year of the artwork date
	Sort   Mode
}

// View returns a restartable sequence over a private snapshot of the
// filtered, sorted records. The source list is never mutated.
func View(list []artworks.Artwork, opts Options) iter.Seq[artworks.Artwork] {
	snapshot := apply(list, opts)
	return func(yield func(artworks.Artwork) bool) {
		for _, a := range snapshot {
			if !yield(a) {
				return
			}
		}
	}
}

// Featured keeps the carousel records in manual order.
func Featured(list []artworks.Artwork) []artworks.Artwork {
	out := make([]artworks.Artwork, 0, artworks.MaxFeatured)
	for _, a := range list {
		if a.Featured {
			out = append(out, a)
		}
	}
	return out
}

func apply(list []artworks.Artwork, opts Options) []artworks.Artwork {
	search := strings.ToLower(opts.Search)

	out := make([]artworks.Artwork, 0, len(list))
	for _, a := range list {
		if search != "" && !strings.Contains(strings.ToLower(a.Title), search) {
			continue
		}
		if opts.Medium != "" && a.Medium != opts.Medium {
			continue
		}
		if opts.Year != "" && yearOf(a.Date) != opts.Year {
			continue
		}
		out = append(out, a)
	}

	switch opts.Sort {
	case SortDateNew:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	case SortDateOld:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	}
	return out
}

// yearOf pulls the leading year from an ISO-style date string.
func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
