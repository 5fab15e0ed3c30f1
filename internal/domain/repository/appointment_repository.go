package repository

import (
	"context"
	"errors"
	"time"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for appointment persistence.
var (
	// ErrAppointmentNotFound is returned when no appointment matches a lookup.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrAppointmentSlotTaken is returned when an appointment already exists
	// for the same provider and date. Implementations back this with a unique
	// index so two concurrent bookings can never both commit.
	ErrAppointmentSlotTaken = errors.New("appointment slot already taken")
)

// AppointmentRepository defines the standard operations for appointment persistence.
type AppointmentRepository interface {
	// Create persists a new appointment entity to the storage.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByDate retrieves the appointment booked with a provider at an exact
	// timestamp, or ErrAppointmentNotFound.
	FindByDate(ctx context.Context, date time.Time, providerID uuid.UUID) (*entity.Appointment, error)

	// FindAllInMonthFromProvider retrieves every appointment of a provider
	// within the given calendar month.
	FindAllInMonthFromProvider(ctx context.Context, providerID uuid.UUID, year int, month time.Month) ([]*entity.Appointment, error)

	// FindAllInDayFromProvider retrieves every appointment of a provider
	// within the given calendar day, in local day boundaries.
	FindAllInDayFromProvider(ctx context.Context, providerID uuid.UUID, year int, month time.Month, day int) ([]*entity.Appointment, error)
}
