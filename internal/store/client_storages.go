package store

import (
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
)

// ClientStorages groups the client's local state: the persisted session
// and the in-memory product cache.
type ClientStorages struct {
	Session SessionStore
	Cache   ProductCache
}

// NewClientStorages builds the client storage layer from cfg.
func NewClientStorages(cfg config.ClientState, logger *logger.Logger) *ClientStorages {
	logger.Debug().
		Str("session_file", cfg.SessionFile).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("creating client storages")

	return &ClientStorages{
		Session: NewFileSessionStore(cfg.SessionFile),
		Cache:   NewProductCache(cfg.CacheTTL),
	}
}
