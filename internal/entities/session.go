// Package entities contains core business entities.
package entities

// SessionState describes the lifecycle of the Communications Platform session
// held for the active identity.
type SessionState string

const (
	// SessionAbsent means no identity is connected.
	SessionAbsent SessionState = "absent"
	// SessionConnecting means a sync is in flight.
	SessionConnecting SessionState = "connecting"
	// SessionConnected means a session is established for the active identity.
	SessionConnected SessionState = "connected"
	// SessionError means the last sync attempt failed.
	SessionError SessionState = "error"
)
