package usecase

import (
	"context"
	"time"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAppointmentInput defines the data required to book an appointment.
// UserID comes from the authenticated session, never from the request body.
type CreateAppointmentInput struct {
	ProviderID uuid.UUID `json:"provider_id" validate:"required"`
	UserID     uuid.UUID `json:"-"`
	Date       time.Time `json:"date" validate:"required"`
}

// ListProviderAppointmentsInput selects the calendar day to list.
type ListProviderAppointmentsInput struct {
	ProviderID uuid.UUID
	Year       int
	Month      time.Month
	Day        int
}

// AppointmentUsecase defines the interface for appointment-related business operations.
type AppointmentUsecase interface {
	// CreateAppointment validates slot availability and creates a booking.
	CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error)

	// ListProviderAppointments returns the appointments of a provider within
	// a calendar day. An empty day yields an empty slice, never an error.
	ListProviderAppointments(ctx context.Context, input *ListProviderAppointmentsInput) ([]*entity.Appointment, error)
}
