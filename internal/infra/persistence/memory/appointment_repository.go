package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gobarber/internal/domain/entity"
	"gobarber/internal/domain/repository"

	"github.com/google/uuid"
)

// appointmentRepository implements repository.AppointmentRepository in memory.
// The check-and-insert in Create happens under the write lock, mirroring the
// unique index the PostgreSQL implementation relies on.
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []*entity.Appointment
}

// NewAppointmentRepository is the constructor for the in-memory appointmentRepository.
func NewAppointmentRepository() repository.AppointmentRepository {
	return &appointmentRepository{}
}

// Create persists a new appointment, assigning its ID and timestamps.
func (repo *appointmentRepository) Create(_ context.Context, appointment *entity.Appointment) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.appointments {
		if existing.ProviderID == appointment.ProviderID && existing.Date.Equal(appointment.Date) {
			return repository.ErrAppointmentSlotTaken
		}
	}

	now := time.Now()
	appointment.ID = uuid.New()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	repo.appointments = append(repo.appointments, cloneAppointment(appointment))

	return nil
}

// FindByDate retrieves the appointment booked with a provider at an exact timestamp.
func (repo *appointmentRepository) FindByDate(_ context.Context, date time.Time, providerID uuid.UUID) (*entity.Appointment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, appointment := range repo.appointments {
		if appointment.ProviderID == providerID && appointment.Date.Equal(date) {
			return cloneAppointment(appointment), nil
		}
	}

	return nil, repository.ErrAppointmentNotFound
}

// FindAllInMonthFromProvider retrieves every appointment of a provider within the given calendar month.
func (repo *appointmentRepository) FindAllInMonthFromProvider(_ context.Context, providerID uuid.UUID, year int, month time.Month) ([]*entity.Appointment, error) {
	return repo.filter(func(appointment *entity.Appointment) bool {
		return appointment.ProviderID == providerID &&
			appointment.Date.Year() == year &&
			appointment.Date.Month() == month
	}), nil
}

// FindAllInDayFromProvider retrieves every appointment of a provider within the given calendar day.
func (repo *appointmentRepository) FindAllInDayFromProvider(_ context.Context, providerID uuid.UUID, year int, month time.Month, day int) ([]*entity.Appointment, error) {
	return repo.filter(func(appointment *entity.Appointment) bool {
		return appointment.ProviderID == providerID &&
			appointment.Date.Year() == year &&
			appointment.Date.Month() == month &&
			appointment.Date.Day() == day
	}), nil
}

func (repo *appointmentRepository) filter(matches func(*entity.Appointment) bool) []*entity.Appointment {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	found := make([]*entity.Appointment, 0)
	for _, appointment := range repo.appointments {
		if matches(appointment) {
			found = append(found, cloneAppointment(appointment))
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Date.Before(found[j].Date)
	})

	return found
}

func cloneAppointment(appointment *entity.Appointment) *entity.Appointment {
	cloned := *appointment
	return &cloned
}
