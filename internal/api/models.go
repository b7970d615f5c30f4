// Package api defines transport models for the HTTP surface.
package api

// User is the transport representation of a directory entry.
type User struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
}

// SyncRequest carries the identity profile delivered on sign-in.
type SyncRequest struct {
	ExternalID string `json:"external_id"`
	FullName   string `json:"full_name"`
	FirstName  string `json:"first_name"`
	Email      string `json:"email"`
	AvatarURL  string `json:"avatar_url"`
}

// SyncResponse is returned after a successful sync.
type SyncResponse struct {
	User         User   `json:"user"`
	SessionState string `json:"session_state"`
}

// SessionResponse reports the platform session lifecycle state.
type SessionResponse struct {
	SessionState string `json:"session_state"`
}

// SearchResponse wraps directory search results.
type SearchResponse struct {
	Users []User `json:"users"`
}

// ErrorCode enumerates machine-readable error identifiers.
type ErrorCode string

const (
	// CodeInvalidArgument marks rejected input.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeMissingIdentity marks sync without an external id.
	CodeMissingIdentity ErrorCode = "MISSING_IDENTITY"
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeSyncFailed marks a failed directory sync.
	CodeSyncFailed ErrorCode = "SYNC_FAILED"
	// CodeInternal marks unexpected failures.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and a human-readable message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
