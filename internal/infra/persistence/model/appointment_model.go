package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. The composite unique
// index on (provider_id, date) is the storage-level guarantee that two
// concurrent bookings for the same slot can never both commit.
type AppointmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_provider_date"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_appointments_provider_date"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
