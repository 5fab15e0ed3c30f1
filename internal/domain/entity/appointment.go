package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a booking of a provider's slot by a user.
// Slot uniqueness is evaluated per provider at full timestamp granularity.
type Appointment struct {
	ID         uuid.UUID // The unique identifier for the appointment.
	ProviderID uuid.UUID // The user offering the slot.
	UserID     uuid.UUID // The user booking the slot.
	Date       time.Time // The exact timestamp the appointment is booked for.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
