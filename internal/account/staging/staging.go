// Package staging holds pending account mutations between the request that
// starts a flow and the verification call that commits it. Entries are
// opaque serialized payloads whose schema is owned by the service layer; the
// store only knows keys, blobs, and TTLs.
package staging

import (
	"context"
	"time"
)

// Store is an ephemeral key→payload store with per-key TTL enforced by the
// store itself. A Put for an existing key overwrites the payload and restarts
// the TTL (last-writer-wins).
type Store interface {
	// Put writes payload under key with the given TTL.
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Get returns the payload for key, or common.ErrNotFound if the key was
	// never staged or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// DeleteIfMatches atomically removes key only while it still holds
	// exactly payload. It returns common.ErrNotFound if the key is gone or
	// holds a different payload, so concurrent consumers cannot both succeed.
	DeleteIfMatches(ctx context.Context, key string, payload []byte) error
}
