// ABOUTME: Session store keeps the single most recent aggregation per session
// ABOUTME: Plain overwrite-on-write map, mirrored best-effort into the shared cache

package aggregator

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"newsiq-app-api/core/domain"
	"newsiq-app-api/core/interfaces"
)

// sessionCacheTTL bounds how long a mirrored snapshot survives in the
// shared cache backend
const sessionCacheTTL = time.Hour

// SessionStore holds one snapshot per session identifier. Each write
// replaces the session's previous snapshot; there is no eviction beyond
// that. Writes to different sessions never block each other's readers
// for long: the map is guarded by a single mutex, which is sufficient at
// the expected request rate.
type SessionStore struct {
	mu        sync.RWMutex
	snapshots map[string]domain.SessionSnapshot
	cache     interfaces.Cache
}

// NewSessionStore creates a session store. The cache is optional; when
// present, snapshots are mirrored into it so a configured Redis backend
// keeps them across restarts.
func NewSessionStore(cache interfaces.Cache) *SessionStore {
	return &SessionStore{
		snapshots: make(map[string]domain.SessionSnapshot),
		cache:     cache,
	}
}

// Put records a session's latest snapshot, replacing any previous one
func (s *SessionStore) Put(ctx context.Context, sessionID string, snapshot domain.SessionSnapshot) {
	s.mu.Lock()
	s.snapshots[sessionID] = snapshot
	s.mu.Unlock()

	// Mirror into the shared cache; failures are ignored, the in-memory
	// copy is authoritative. Backends with native JSON document support
	// store the snapshot structurally.
	if s.cache != nil {
		if jc, ok := s.cache.(interfaces.JSONCache); ok {
			_ = jc.SetJSON(ctx, sessionKey(sessionID), snapshot, sessionCacheTTL)
			return
		}
		if data, err := json.Marshal(snapshot); err == nil {
			_ = s.cache.Set(ctx, sessionKey(sessionID), data, sessionCacheTTL)
		}
	}
}

// Get returns a session's snapshot, or nil when the session has none.
// Falls back to the shared cache when the in-memory map misses.
func (s *SessionStore) Get(sessionID string) *domain.SessionSnapshot {
	s.mu.RLock()
	snapshot, ok := s.snapshots[sessionID]
	s.mu.RUnlock()
	if ok {
		return &snapshot
	}

	if s.cache != nil {
		var cached domain.SessionSnapshot
		if jc, ok := s.cache.(interfaces.JSONCache); ok {
			if jc.GetJSON(context.Background(), sessionKey(sessionID), &cached) == nil {
				return &cached
			}
			return nil
		}
		data, err := s.cache.Get(context.Background(), sessionKey(sessionID))
		if err == nil && data != nil {
			if json.Unmarshal(data, &cached) == nil {
				return &cached
			}
		}
	}

	return nil
}

// Clear removes a session's snapshot
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.snapshots, sessionID)
	s.mu.Unlock()

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), sessionKey(sessionID))
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
