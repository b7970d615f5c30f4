package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		want     string
	}{
		{
			name:     "full name wins",
			identity: Identity{FullName: "Alice Smith", FirstName: "Alice", PrimaryEmail: "alice@example.com"},
			want:     "Alice Smith",
		},
		{
			name:     "first name when full name blank",
			identity: Identity{FullName: "  ", FirstName: "Alice", PrimaryEmail: "alice@example.com"},
			want:     "Alice",
		},
		{
			name:     "email local part when names blank",
			identity: Identity{PrimaryEmail: "a@b.com"},
			want:     "a",
		},
		{
			name:     "raw email when it has no local part",
			identity: Identity{PrimaryEmail: "no-at-sign"},
			want:     "no-at-sign",
		},
		{
			name:     "literal fallback when everything is empty",
			identity: Identity{},
			want:     UnknownUserName,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.identity.DisplayName())
			require.NotEmpty(t, tc.identity.DisplayName())
		})
	}
}
