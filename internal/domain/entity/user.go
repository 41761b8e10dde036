// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the system. The email is the login key and
// is unique across all users; PasswordHash stores the bcrypt digest (salt
// embedded), never the plaintext.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the store on creation.
	Email        string    // The login key. Stored exactly as provided, no normalization.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the password. Excluded from every API response.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
