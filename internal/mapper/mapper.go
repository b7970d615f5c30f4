// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"chat-directory-service/internal/api"
	"chat-directory-service/internal/entities"
)

// FromSyncRequest builds an entities.Identity from the transport DTO.
func FromSyncRequest(src api.SyncRequest) entities.Identity {
	return entities.Identity{
		ExternalID:   src.ExternalID,
		FullName:     src.FullName,
		FirstName:    src.FirstName,
		PrimaryEmail: src.Email,
		AvatarURL:    src.AvatarURL,
	}
}

// ToAPIUser maps entities.User to the transport model.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ExternalID: u.ExternalID,
		Email:      u.Email,
		Name:       u.Name,
		AvatarURL:  u.AvatarURL,
	}
}

// ToAPIUserList maps a slice of entities.User to the transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}
