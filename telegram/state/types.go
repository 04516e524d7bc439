package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

// StateIdle indicates there is no active conversation with the user.
const StateIdle State = "idle"

// Manager orchestrates per-user conversation state and scratch data.
type Manager interface {
	SetState(userID int64, st State)
	GetState(userID int64) State
	ClearState(userID int64)
	// InProgress reports whether the user is inside an active flow.
	InProgress(userID int64) bool

	SetTemp(userID int64, key string, value any)
	GetTemp(userID int64, key string) (any, bool)
	GetTempInt64(userID int64, key string) (int64, bool)
	ClearTemp(userID int64, key string)
	// Clear removes the whole session, state and scratch data alike.
	Clear(userID int64)

	// ManagerHandler runs the handler registered for the sender's current state.
	ManagerHandler(c tele.Context) error
}
