// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system. Every account can both book
// appointments and act as a provider offering appointment slots.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's login identifier; unique across the system.
	PasswordHash string    // The bcrypt digest of the user's password. Never plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
