package blob

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound means no document exists yet under the configured key.
// Callers treat it as "empty collection", never as a failure.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the remote home of the artwork list: one JSON document
// under one fixed key. Fresh reads resolve the current version directly
// against the bucket; cached reads go through the public CDN URL and may
// lag behind the latest write.
type DocumentStore interface {
	FetchFresh(ctx context.Context) ([]byte, error)
	FetchCached(ctx context.Context, revalidate time.Duration) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
