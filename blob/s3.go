package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

type Config struct {
	Bucket        string
	Key           string
	PublicBaseURL string
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string // optional, for MinIO / R2 style endpoints
	UploadPrefix  string
}

// Store talks to an S3-compatible bucket holding the artwork document plus
// uploaded images. Cached fetches keep a per-process memo so repeat public
// reads inside the revalidate window skip the network entirely.
type Store struct {
	cfg    Config
	client *s3.Client
	http   *http.Client

	mu       sync.Mutex
	cached   []byte
	cachedAt time.Time
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("blob: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Store{
		cfg:    cfg,
		client: client,
		http:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// FetchFresh resolves the document's current version via a HeadObject lookup,
// then fetches exactly that version from the bucket, bypassing the CDN.
func (s *Store) FetchFresh(ctx context.Context) ([]byte, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.cfg.Bucket,
		Key:    &s.cfg.Key,
	})
	if err != nil {
		if isMissing(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blob: head %s: %w", s.cfg.Key, err)
	}

	in := &s3.GetObjectInput{
		Bucket:    &s.cfg.Bucket,
		Key:       &s.cfg.Key,
		VersionId: head.VersionId,
	}
	out, err := s.client.GetObject(ctx, in)
	if err != nil {
		if isMissing(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blob: get %s: %w", s.cfg.Key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("blob: read %s: %w", s.cfg.Key, err)
	}
	return data, nil
}

// FetchCached reads via the public CDN URL. A positive revalidate window
// means the caller accepts a response up to that old; zero always refetches.
// Either way the CDN itself may still serve a slightly stale version.
func (s *Store) FetchCached(ctx context.Context, revalidate time.Duration) ([]byte, error) {
	if revalidate > 0 {
		s.mu.Lock()
		if s.cached != nil && time.Since(s.cachedAt) < revalidate {
			data := append([]byte(nil), s.cached...)
			s.mu.Unlock()
			return data, nil
		}
		s.mu.Unlock()
	}

	url := s.publicURL(s.cfg.Key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("blob: build request: %w", err)
	}
	if revalidate == 0 {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blob: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("blob: fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("blob: read response: %w", err)
	}

	s.mu.Lock()
	s.cached = append([]byte(nil), data...)
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return data, nil
}

// Save overwrites the one document at the fixed key and drops the local memo
// so the next cached read refetches.
func (s *Store) Save(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       &s.cfg.Bucket,
		Key:          &s.cfg.Key,
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return fmt.Errorf("blob: put %s: %w", s.cfg.Key, err)
	}

	s.mu.Lock()
	s.cached = nil
	s.cachedAt = time.Time{}
	s.mu.Unlock()

	return nil
}

// UploadImage stores an image under a generated key and returns its public
// URL. The store is an opaque "put blob, get back URL" collaborator here.
func (s *Store) UploadImage(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := s.uploadKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.cfg.Bucket,
		Key:         &key,
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("blob: upload %s: %w", key, err)
	}

	return s.publicURL(key), nil
}

func (s *Store) uploadKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%02d/%v-%s",
		s.cfg.UploadPrefix, d.Year(), d.Month(), uuid.New(), sanitizeFilename(filename))
}

func (s *Store) publicURL(key string) string {
	return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func isMissing(err error) bool {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noKey) || errors.As(err, &notFound)
}
