// Package entities contains core business entities.
package entities

import "strings"

// Identity is the authenticated user as presented by the external identity
// provider.
type Identity struct {
	ExternalID   string
	FullName     string
	FirstName    string
	PrimaryEmail string
	AvatarURL    string
}

// UnknownUserName is stored when the identity carries no usable name at all.
const UnknownUserName = "Unknown User"

// DisplayName picks the first usable name: full name, then first name, then
// the local part of the primary email, then UnknownUserName.
func (i Identity) DisplayName() string {
	if name := strings.TrimSpace(i.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(i.FirstName); name != "" {
		return name
	}
	email := strings.TrimSpace(i.PrimaryEmail)
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		return local
	}
	if email != "" {
		return email
	}
	return UnknownUserName
}
