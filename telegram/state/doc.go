// Package state tracks per-user conversation progress for multi-step flows.
// A small in-memory manager holds the active step plus scratch values, and
// dispatches incoming messages to the handler registered for that step.
package state
