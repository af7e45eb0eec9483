// Package collection owns reads and writes of the artwork list against the
// remote document store. Every mutation runs a fresh read immediately before
// computing its write, so it works from the true current state rather than a
// CDN copy. There is no lock or transaction around the read-modify-write
// cycle: two overlapping mutations can still race and the later write wins.
// That window is an accepted limit of the single-admin design, not something
// this package claims to close.
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"art-portfolio-app/blob"
	"art-portfolio-app/internal/domain/artworks"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means the target artwork id is not in the collection.
	ErrNotFound = errors.New("artwork not found")

	// ErrFeaturedLimit is a user-facing refusal, not a store failure: the
	// featured set is already at capacity.
	ErrFeaturedLimit = errors.New("featured limit reached")
)

// ReadMode selects the consistency of a read.
type ReadMode int

const (
	// ReadCached goes through the public CDN path and may lag recent writes.
	ReadCached ReadMode = iota
	// ReadFresh resolves the current document version authoritatively.
	ReadFresh
)

// NewArtwork carries the caller-supplied fields of a record to create.
// ID and CreatedAt are assigned by the store.
type NewArtwork struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Medium      string
	Date        string
	Dimensions  string
}

// Store mediates the artwork collection against a DocumentStore. Construct
// one per process with New; tests inject a fake DocumentStore.
type Store struct {
	docs blob.DocumentStore

	// overridable in tests
	now   func() int64
	newID func() string
}

func New(docs blob.DocumentStore) *Store {
	return &Store{
		docs:  docs,
		now:   func() int64 { return time.Now().UnixMilli() },
		newID: uuid.NewString,
	}
}

// Artworks reads the full collection in manual order. An absent document is
// the first-run condition and yields an empty list; any other store failure
// propagates, because pretending a transient error is "empty" would let the
// next save wipe real data.
func (s *Store) Artworks(ctx context.Context, mode ReadMode) ([]artworks.Artwork, error) {
	if mode == ReadFresh {
		return s.load(ctx)
	}
	return s.ArtworksCached(ctx, 0)
}

// ArtworksCached is the cached read with an explicit revalidate window: zero
// always refetches, a positive window accepts a response up to that old.
func (s *Store) ArtworksCached(ctx context.Context, revalidate time.Duration) ([]artworks.Artwork, error) {
	data, err := s.docs.FetchCached(ctx, revalidate)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return []artworks.Artwork{}, nil
		}
		return nil, err
	}
	return decode(data)
}

// Append assigns an id and creation timestamp, applies field defaults, and
// inserts the record at the head of the sequence (most-recent-first).
// Returns the full updated list, new record first.
func (s *Store) Append(ctx context.Context, in NewArtwork) ([]artworks.Artwork, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	a := artworks.Artwork{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Medium:      in.Medium,
		Date:        in.Date,
		Dimensions:  in.Dimensions,
		CreatedAt:   s.now(),
	}
	if a.Category == "" {
		a.Category = artworks.DefaultCategory
	}
	if a.Medium == "" {
		a.Medium = artworks.DefaultMedium
	}
	if a.Date == "" {
		a.Date = time.UnixMilli(a.CreatedAt).UTC().Format("2006-01-02")
	}
	if a.Dimensions == "" {
		a.Dimensions = artworks.DefaultDimensions
	}

	list = append([]artworks.Artwork{a}, list...)
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update shallow-merges the sparse fields into the record with the given id.
// Flipping featured on is refused with ErrFeaturedLimit once five other
// records already carry the flag; the check runs at toggle time only.
func (s *Store) Update(ctx context.Context, id string, fields artworks.Fields) ([]artworks.Artwork, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i, ok := artworks.Find(list, id)
	if !ok {
		return nil, ErrNotFound
	}

	if fields.Featured != nil && *fields.Featured && !list[i].Featured {
		if artworks.CountFeatured(list, id) >= artworks.MaxFeatured {
			return nil, ErrFeaturedLimit
		}
	}

	list[i] = artworks.Merge(list[i], fields)
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes the record with the given id. Deleting an id that is not
// present succeeds silently, which makes the operation idempotent.
func (s *Store) Remove(ctx context.Context, id string) ([]artworks.Artwork, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	list = artworks.Remove(list, id)
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Reorder rebuilds the manual order from orderedIDs. Records missing from
// the client's list are kept, appended at the end in their prior relative
// order; unknown ids are ignored.
func (s *Store) Reorder(ctx context.Context, orderedIDs []string) ([]artworks.Artwork, error) {
	list, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	list = artworks.Reorder(list, orderedIDs)
	if err := s.save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// load is the fresh read every mutation starts from.
func (s *Store) load(ctx context.Context) ([]artworks.Artwork, error) {
	data, err := s.docs.FetchFresh(ctx)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return []artworks.Artwork{}, nil
		}
		return nil, err
	}
	return decode(data)
}

func (s *Store) save(ctx context.Context, list []artworks.Artwork) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("collection: encode: %w", err)
	}
	return s.docs.Save(ctx, data)
}

func decode(data []byte) ([]artworks.Artwork, error) {
	var list []artworks.Artwork
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("collection: decode: %w", err)
	}
	if list == nil {
		list = []artworks.Artwork{}
	}
	return list, nil
}
