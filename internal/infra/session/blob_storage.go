// Package session persists the session token between runs of the client.
package session

import (
	"context"
	"strings"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// blobStorage keeps the token as a single object in a gocloud bucket.
type blobStorage struct {
	bucket *blob.Bucket
	key    string
}

// NewBlobStorage opens the bucket at bucketURL and stores the token under key.
// file:// directories are created on first use.
func NewBlobStorage(ctx context.Context, bucketURL, key string) (repository.TokenStorage, error) {
	if strings.HasPrefix(bucketURL, "file://") && !strings.Contains(bucketURL, "?") {
		bucketURL += "?create_dir=true"
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open session bucket %s", bucketURL)
	}

	return &blobStorage{bucket: bucket, key: key}, nil
}

func (s *blobStorage) Load(ctx context.Context) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "read session token")
	}

	token := strings.TrimSpace(string(data))

	return token, token != "", nil
}

func (s *blobStorage) Save(ctx context.Context, token string) error {
	return errors.Wrap(s.bucket.WriteAll(ctx, s.key, []byte(token), &blob.WriterOptions{
		ContentType: "text/plain",
	}), "write session token")
}

func (s *blobStorage) Clear(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, s.key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete session token")
	}

	return nil
}

func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
