package table

import (
	"os"
	"path/filepath"

	"github.com/ppiankov/connectives/internal/cache"
	"go.uber.org/zap"
)

// Loader loads tables, serving repeated loads of an unchanged file from a cache
type Loader struct {
	cache cache.Cache // nil disables caching
	log   *zap.SugaredLogger
}

// NewLoader creates a loader. Pass a nil cache to always read from disk.
func NewLoader(c cache.Cache, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{cache: c, log: log}
}

// WithLogger returns a loader sharing l's cache that logs through log
func (l *Loader) WithLogger(log *zap.SugaredLogger) *Loader {
	return NewLoader(l.cache, log)
}

// Load returns the table at path. Cached tables are shared; callers must not mutate them.
func (l *Loader) Load(path string) (*Table, error) {
	if l.cache == nil {
		return Load(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(abs)
	if err != nil {
		// Let Load classify the failure
		return Load(path)
	}

	key := cache.TableKey(abs, info.Size(), info.ModTime())
	if v, ok := l.cache.Get(key); ok {
		if t, ok := v.(*Table); ok {
			l.log.Debugw("table cache hit", "path", path)
			return t, nil
		}
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := l.cache.Set(key, t, 0); err != nil {
		l.log.Warnw("table cache store failed", "path", path, "error", err)
	}
	return t, nil
}
