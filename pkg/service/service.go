// Package service implements the entity services: pure
// collection-in/collection-out transforms paired with a write-through
// persistence side effect. Services never retain collection references;
// each call copies, transforms, persists, and returns.
package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/store"
)

var (
	// ErrEmptyText rejects task creation with blank text.
	ErrEmptyText = errors.New("service: task text is empty")
	// ErrEmptyName rejects project creation with a blank name.
	ErrEmptyName = errors.New("service: project name is empty")
)

// persist writes a collection document and reports the failure without
// propagating it. The in-memory transform already happened and remains
// the source of truth for the session; the worst case is state drift from
// disk until the next successful write.
func persist(p store.Persistence, log *zap.Logger, key string, v any) {
	if p == nil {
		return
	}
	if err := p.Save(key, v); err != nil {
		logger(log).Warn("persist failed, in-memory state kept",
			zap.String("key", key),
			zap.Error(err))
	}
}

func logger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
