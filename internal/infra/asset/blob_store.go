// Package asset stores profile pictures through gocloud.dev blob buckets, so
// the same code serves a local directory in development and object storage in
// production.
package asset

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"usman/config"
	"usman/internal/domain/lifecycle"
	"usman/internal/domain/service"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStore implements AssetStore on top of a blob bucket.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and manages its lifetime through fx.
func New(params Params) (service.AssetStore, error) {
	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Asset.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open asset bucket %s", params.Config.Asset.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, params.Logger), nil
}

// NewBlobStore wraps an already-open bucket. Used directly in tests with an
// in-memory bucket.
func NewBlobStore(bucket *blob.Bucket, logger *slog.Logger) service.AssetStore {
	return &blobStore{bucket: bucket, logger: logger}
}

// Put stores the asset under a freshly generated key and returns the key once
// the write is durable. A failed write discards the partial object, so no
// reference to it can ever be handed out.
func (s *blobStore) Put(ctx context.Context, r io.Reader, suggestedExt string) (string, error) {
	key := uuid.NewString() + suggestedExt

	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open asset writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Closing after a copy failure aborts the write; the driver discards
		// the partial object.
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write asset %s", key)
	}

	// Close finalizes the write; the asset is not durable until it returns.
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize asset %s", key)
	}

	s.logger.Debug("Asset stored", slog.String("key", key))

	return key, nil
}

// Delete removes a stored asset. A missing asset is not an error, which keeps
// compensation after a failed profile update idempotent.
func (s *blobStore) Delete(ctx context.Context, ref string) error {
	err := s.bucket.Delete(ctx, ref)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete asset %s", ref)
}
