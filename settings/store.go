package settings

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/m3rciful/pwgenbot/logger"
)

// Store hands out per-user settings and serializes updates to them.
type Store interface {
	// GetOrCreate returns a snapshot of the user's settings, inserting
	// defaults on first sight. It never fails.
	GetOrCreate(userID int64) Settings
	// Update applies fn to the user's settings under the store lock,
	// creating defaults first if the user is unknown.
	Update(userID int64, fn func(*Settings))
	// Len reports how many users have settings recorded.
	Len() int
}

// memoryStore keeps settings in a process-lifetime go-cache instance.
// Entries are stored by value, so a snapshot handed out by GetOrCreate can
// never mutate the stored copy behind the store's back.
type memoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

// NewStore returns an in-memory Store. Entries never expire; process
// termination is the only retention policy.
func NewStore() Store {
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

func cacheKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func (m *memoryStore) GetOrCreate(userID int64) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(userID)
}

func (m *memoryStore) Update(userID int64, fn func(*Settings)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.load(userID)
	fn(&s)
	m.cache.Set(cacheKey(userID), s, gocache.NoExpiration)
}

func (m *memoryStore) Len() int {
	return m.cache.ItemCount()
}

// load returns the stored settings, creating defaults first if absent.
// Callers must hold m.mu.
func (m *memoryStore) load(userID int64) Settings {
	if v, ok := m.cache.Get(cacheKey(userID)); ok {
		if s, ok := v.(Settings); ok {
			return s
		}
	}
	s := Defaults()
	m.cache.Set(cacheKey(userID), s, gocache.NoExpiration)
	logger.LogEvent(context.Background(), logger.Store, slog.LevelDebug, "settings.created",
		slog.Int64("user_id", userID))
	return s
}
