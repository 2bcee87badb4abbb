// Package source fetches raw image bytes from local paths or s3:// URIs.
//
// A plain path reads from the local filesystem. A URI of the form
// s3://bucket/key downloads the object with the AWS SDK, using the default
// credential chain. Both forms report a missing source as an error matching
// fs.ErrNotExist so callers can distinguish "no such image" from a real
// failure with errors.Is.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used to download objects. It exists
// so tests can substitute a mock.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Fetcher resolves paths to byte slices. The zero value is not usable; use
// New or NewWithClient.
//
// The S3 client is created lazily on the first s3:// fetch, so purely local
// usage never touches AWS configuration.
type Fetcher struct {
	mu sync.Mutex
	s3 S3API
}

// New returns a Fetcher that reads local files directly and constructs an
// S3 client from the default AWS config on first use.
func New() *Fetcher {
	return &Fetcher{}
}

// NewWithClient returns a Fetcher with a pre-built S3 client, used by tests.
func NewWithClient(client S3API) *Fetcher {
	return &Fetcher{s3: client}
}

// ParseS3URI splits an s3://bucket/key URI. ok is false when the path is
// not an S3 URI at all; a malformed S3 URI (missing bucket or key) returns
// ok true with empty components, which Fetch rejects.
func ParseS3URI(path string) (bucket, key string, ok bool) {
	const scheme = "s3://"
	if !strings.HasPrefix(path, scheme) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	return bucket, key, true
}

// Fetch reads the full contents of a local file or S3 object.
func (f *Fetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if bucket, key, ok := ParseS3URI(path); ok {
		return f.fetchS3(ctx, bucket, key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (f *Fetcher) fetchS3(ctx context.Context, bucket, key string) ([]byte, error) {
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 uri needs both bucket and key: s3://%s/%s", bucket, key)
	}

	client, err := f.client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		var noBucket *types.NoSuchBucket
		if errors.As(err, &noKey) || errors.As(err, &noBucket) {
			return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// client returns the S3 client, building one from the default AWS config on
// first use.
func (f *Fetcher) client(ctx context.Context) (S3API, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.s3 == nil {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS config: %w", err)
		}
		f.s3 = s3.NewFromConfig(cfg)
	}
	return f.s3, nil
}
