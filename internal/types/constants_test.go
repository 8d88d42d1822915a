package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("CLIENT_URL", "https://hr.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com ,,https://b.example.com")

	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://hr.example.com",
		"https://a.example.com",
		"https://b.example.com",
	}, AllowedOrigins())
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("owner").Valid())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleEmployee.IsAdmin())
}
