package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for caching parsed tables
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TableKey generates a cache key for a table file.
// Size and modification time are part of the key, so an edited file misses.
func TableKey(path string, size int64, modTime time.Time) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", path, size, modTime.UnixNano())))
	return "connectives:table:v1:" + hex.EncodeToString(hash[:])
}
