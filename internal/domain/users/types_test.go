package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"customer", RoleCustomer, false},
		{"vendor", RoleVendor, false},
		{" Admin ", RoleAdmin, false},
		{"staff", RoleStaff, false},
		{"", RoleCustomer, false},
		{"amdin", "", true},
		{"root", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleTitle(t *testing.T) {
	assert.Equal(t, "Vendor", RoleVendor.Title())
	assert.Equal(t, "Admin", RoleAdmin.Title())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, Role("guest").Valid())
}

func TestPassword(t *testing.T) {
	var p password
	assert.False(t, p.IsSet())
	assert.Error(t, p.Compare(""), "an account without a hash never matches")

	require.NoError(t, p.Set("secret1"))
	assert.True(t, p.IsSet())
	assert.NoError(t, p.Compare("secret1"))
	assert.Error(t, p.Compare("secret2"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
}
