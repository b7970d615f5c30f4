// Package entities contains core business entities.
package entities

// User is this service's persisted view of an identity, used for search and
// chat-membership display.
type User struct {
	ID         int64
	ExternalID string
	Email      string
	Name       string
	AvatarURL  string
}
