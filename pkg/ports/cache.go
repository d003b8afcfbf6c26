package ports

import "context"

// ContentCache stores generated content keyed by a digest of the request.
// Expiration is a property of the implementation.
type ContentCache interface {
	// Get returns the cached value.
	// Returns domain.ErrCacheMiss if the key does not exist or has expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
