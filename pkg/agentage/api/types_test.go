package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{name: "nil user", user: nil},
		{name: "minimal", user: &User{ID: "u1", Email: "dev@example.com"}},
		{name: "with avatar", user: &User{ID: "u1", Email: "dev@example.com", Avatar: "https://cdn.example.com/u1.png"}},
		{name: "missing id", user: &User{Email: "dev@example.com"}, wantErr: true},
		{name: "missing email", user: &User{ID: "u1"}, wantErr: true},
		{name: "malformed email", user: &User{ID: "u1", Email: "not-an-address"}, wantErr: true},
		{name: "malformed avatar", user: &User{ID: "u1", Email: "dev@example.com", Avatar: "::"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserDisplayName(t *testing.T) {
	require.Empty(t, (*User)(nil).DisplayName())
	require.Equal(t, "dev@example.com", (&User{Email: "dev@example.com"}).DisplayName())
	require.Equal(t, "Dev", (&User{Email: "dev@example.com", Name: "Dev"}).DisplayName())
}
