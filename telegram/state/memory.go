package state

import (
	"log/slog"
	"sync"

	"github.com/m3rciful/pwgenbot/logger"
	tghelpers "github.com/m3rciful/pwgenbot/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

type session struct {
	state State
	temp  map[string]any
}

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

// NewMemoryManager constructs the in-memory Manager implementation.
func NewMemoryManager() Manager {
	return &memoryManager{sessions: make(map[int64]*session)}
}

// session returns the stored session for a user, creating an idle one when
// absent. The caller must hold the write lock.
func (m *memoryManager) session(userID int64) *session {
	s, ok := m.sessions[userID]
	if !ok {
		s = &session{state: StateIdle, temp: make(map[string]any)}
		m.sessions[userID] = s
	}
	return s
}

// SetState moves the user to the given conversation state.
func (m *memoryManager) SetState(userID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).state = st
}

// GetState returns the user's current state, or StateIdle when unknown.
func (m *memoryManager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[userID]; ok {
		return s.state
	}
	return StateIdle
}

// ClearState resets the state to idle without touching scratch data.
func (m *memoryManager) ClearState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		s.state = StateIdle
	}
}

// InProgress reports whether the user currently has an active state.
func (m *memoryManager) InProgress(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return ok && s.state != StateIdle
}

// SetTemp stores a scratch key/value pair for the user.
func (m *memoryManager) SetTemp(userID int64, key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(userID).temp[key] = value
}

// GetTemp retrieves a scratch value by key.
func (m *memoryManager) GetTemp(userID int64, key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	v, ok := s.temp[key]
	return v, ok
}

// GetTempInt64 retrieves a scratch value by key and asserts it as int64.
func (m *memoryManager) GetTempInt64(userID int64, key string) (int64, bool) {
	v, found := m.GetTemp(userID, key)
	if !found {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

// ClearTemp removes a single scratch key for the user.
func (m *memoryManager) ClearTemp(userID int64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		delete(s.temp, key)
	}
}

// Clear removes the entire session for a user.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// ManagerHandler executes the handler registered for the sender's current
// state. Messages arriving with no registered handler fall through unhandled.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	userID := c.Sender().ID
	current := m.GetState(userID)

	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.dispatch",
		slog.String("state", string(current)),
	)

	if handler, ok := fsmHandlers[current]; ok {
		return handler(c)
	}
	return nil
}
