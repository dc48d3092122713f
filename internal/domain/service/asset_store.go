package service

import (
	"context"
	"io"
)

// AssetStore defines the interface for durable binary asset storage, used for
// profile pictures. Implementations store each asset under a freshly generated
// random key per attempt, so a retried upload can never collide with a
// partially written earlier attempt.
type AssetStore interface {
	// Put stores the asset and returns its reference once the write is durable.
	// The suggested extension (e.g. ".png") is appended to the generated key.
	// On any failure the partially written object is discarded.
	Put(ctx context.Context, r io.Reader, suggestedExt string) (ref string, err error)

	// Delete removes a stored asset. Deleting a missing asset is not an error,
	// which makes compensation after a failed profile update idempotent.
	Delete(ctx context.Context, ref string) error
}
