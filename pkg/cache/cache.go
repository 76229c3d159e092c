// Package cache provides content-addressed caching for rendered artifacts.
//
// Rendering a snapshot to SVG or PNG is deterministic in its input, so
// artifacts are cached under a key derived from the scene content hash and
// the output format. The file backend serves CLI use; the null backend
// disables caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the interface for artifact storage backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey generates the cache key for a rendered artifact.
// The key format is artifact:<format>:<scene content hash>.
func ArtifactKey(sceneData []byte, format string) string {
	return fmt.Sprintf("artifact:%s:%s", format, Hash(sceneData))
}
