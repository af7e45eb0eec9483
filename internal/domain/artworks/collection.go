package artworks

// Find returns the index of the record with the given id.
func Find(list []Artwork, id string) (int, bool) {
	for i := range list {
		if list[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Remove filters out the record with the given id, preserving the relative
// order of everything else. A missing id leaves the list unchanged.
func Remove(list []Artwork, id string) []Artwork {
	out := make([]Artwork, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

// Reorder rebuilds the list in the order of orderedIDs. Records the client
// did not mention are appended afterward in their prior relative order, so a
// stale or partial id list can never silently drop data. Unknown ids are
// ignored.
func Reorder(list []Artwork, orderedIDs []string) []Artwork {
	byID := make(map[string]int, len(list))
	for i, a := range list {
		byID[a.ID] = i
	}

	placed := make(map[string]bool, len(orderedIDs))
	out := make([]Artwork, 0, len(list))
	for _, id := range orderedIDs {
		if i, ok := byID[id]; ok && !placed[id] {
			out = append(out, list[i])
			placed[id] = true
		}
	}
	for _, a := range list {
		if !placed[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// CountFeatured counts featured records, skipping excludeID so a toggle can
// ask "how many others are featured".
func CountFeatured(list []Artwork, excludeID string) int {
	n := 0
	for _, a := range list {
		if a.Featured && a.ID != excludeID {
			n++
		}
	}
	return n
}
