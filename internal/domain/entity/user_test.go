package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestUser_MissingRequiredFields(t *testing.T) {
	assert.Empty(t, (&User{Name: "A", Email: "a@x.com", PasswordHash: "h"}).MissingRequiredFields())
	assert.Equal(t, []string{"name", "email", "password"}, (&User{Name: " "}).MissingRequiredFields())
	assert.Equal(t, []string{"password"}, (&User{Name: "A", Email: "a@x.com", MobileNo: "555"}).MissingRequiredFields())
}
