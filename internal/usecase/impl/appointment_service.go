package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Working day boundaries. Slots are hourly, from firstAppointmentHour up to
// and including lastAppointmentHour.
const (
	firstAppointmentHour = 8
	lastAppointmentHour  = 17
	slotsPerDay          = lastAppointmentHour - firstAppointmentHour + 1
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	cache           service.CacheProvider
	logger          *slog.Logger
	now             func() time.Time
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateAppointment validates the booking rules and persists the appointment.
// The requested date is normalized to the start of its hour before any check,
// so two requests inside the same hour compete for the same slot.
func (srv *appointmentService) CreateAppointment(ctx context.Context, input *usecase.CreateAppointmentInput) (*entity.Appointment, error) {
	date := startOfHour(input.Date)

	srv.logger.Debug("Starting appointment creation",
		slog.Any("providerID", input.ProviderID),
		slog.Any("userID", input.UserID),
		slog.Time("date", date),
	)

	if input.ProviderID == input.UserID {
		return nil, errors.Wrap(domainerrors.ErrSelfBooking, "appointment creation failed")
	}

	if date.Before(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrPastAppointment, "appointment creation failed")
	}

	if date.Hour() < firstAppointmentHour || date.Hour() > lastAppointmentHour {
		return nil, errors.Wrap(domainerrors.ErrOutsideBusinessHours, "appointment creation failed")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ProviderID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "provider does not exist")
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	if _, err := srv.appointmentRepo.FindByDate(ctx, date, input.ProviderID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrSlotTaken, "appointment creation failed")
	} else if !errors.Is(err, repository.ErrAppointmentNotFound) {
		return nil, errors.Wrap(err, "failed to check slot availability")
	}

	appointment := &entity.Appointment{
		ProviderID: input.ProviderID,
		UserID:     input.UserID,
		Date:       date,
	}

	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		// The storage-level unique constraint closes the race between the
		// availability check above and the insert.
		if errors.Is(err, repository.ErrAppointmentSlotTaken) {
			return nil, errors.Wrap(domainerrors.ErrSlotTaken, "appointment creation failed")
		}

		return nil, errors.Wrap(err, "failed to create appointment")
	}

	srv.invalidateProviderDay(ctx, input.ProviderID, date)

	srv.logger.Info("Appointment created",
		slog.Any("appointmentID", appointment.ID),
		slog.Any("providerID", appointment.ProviderID),
		slog.Time("date", appointment.Date),
	)

	return appointment, nil
}

// ListProviderAppointments returns the appointments of a provider within a
// calendar day, serving from cache when a fresh listing is available.
func (srv *appointmentService) ListProviderAppointments(ctx context.Context, input *usecase.ListProviderAppointmentsInput) ([]*entity.Appointment, error) {
	key := providerAppointmentsCacheKey(input.ProviderID, input.Year, input.Month, input.Day)

	var cached []*entity.Appointment
	found, err := srv.cache.Recover(ctx, key, &cached)
	if err != nil {
		srv.logger.Warn("Failed to recover appointment listing from cache", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	appointments, err := srv.appointmentRepo.FindAllInDayFromProvider(ctx, input.ProviderID, input.Year, input.Month, input.Day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider appointments")
	}

	if err := srv.cache.Save(ctx, key, appointments); err != nil {
		srv.logger.Warn("Failed to cache appointment listing", slog.Any("error", err))
	}

	return appointments, nil
}

// invalidateProviderDay drops the cached listing of the day the new
// appointment falls on. Cache failures are logged and swallowed.
func (srv *appointmentService) invalidateProviderDay(ctx context.Context, providerID uuid.UUID, date time.Time) {
	key := providerAppointmentsCacheKey(providerID, date.Year(), date.Month(), date.Day())
	if err := srv.cache.Invalidate(ctx, key); err != nil {
		srv.logger.Warn("Failed to invalidate appointment listing cache", slog.Any("error", err))
	}
}

// providerAppointmentsCacheKey builds the cache key of one provider's day listing.
func providerAppointmentsCacheKey(providerID uuid.UUID, year int, month time.Month, day int) string {
	return fmt.Sprintf("provider-appointments:%s:%d-%d-%d", providerID, year, int(month), day)
}

// startOfHour truncates a timestamp to the beginning of its hour.
func startOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
