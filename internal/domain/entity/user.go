// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered account, addressable by its unique email.
type User struct {
	ID           uuid.UUID // Assigned by the usecase before the record is persisted.
	Name         string    // Display name.
	Email        string    // Login identifier; unique across the store.
	PasswordHash string    // bcrypt hash of the credential, never the plaintext.
	MobileNo     string    // Contact number, stored as given.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// NormalizeEmail canonicalises an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MissingRequiredFields lists the required fields a new user record lacks.
func (u *User) MissingRequiredFields() []string {
	var missing []string
	if strings.TrimSpace(u.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(u.Email) == "" {
		missing = append(missing, "email")
	}
	if u.PasswordHash == "" {
		missing = append(missing, "password")
	}

	return missing
}
