package impl

import (
	"context"
	"log/slog"
	"time"

	"gobarber/internal/domain/entity"
	"gobarber/internal/domain/repository"
	"gobarber/internal/domain/service"
	"gobarber/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	cache           service.CacheProvider
	logger          *slog.Logger
	now             func() time.Time
}

// NewProviderService is the constructor for providerService.
func NewProviderService(
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	cache service.CacheProvider,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	return &providerService{
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		logger:          logger,
		now:             time.Now,
	}
}

// ListProviders returns every user except the requester, serving from cache
// when a fresh listing is available.
func (srv *providerService) ListProviders(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	key := providerListCacheKey(userID)

	var cached []*entity.User
	found, err := srv.cache.Recover(ctx, key, &cached)
	if err != nil {
		srv.logger.Warn("Failed to recover provider listing from cache", slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	providers, err := srv.userRepo.FindAllProviders(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	if err := srv.cache.Save(ctx, key, providers); err != nil {
		srv.logger.Warn("Failed to cache provider listing", slog.Any("error", err))
	}

	return providers, nil
}

// MonthAvailability reports, for each day of the month, whether the provider
// still has at least one free hourly slot.
func (srv *providerService) MonthAvailability(ctx context.Context, input *usecase.MonthAvailabilityInput) ([]usecase.DayAvailability, error) {
	appointments, err := srv.appointmentRepo.FindAllInMonthFromProvider(ctx, input.ProviderID, input.Year, input.Month)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider month appointments")
	}

	bookedPerDay := make(map[int]int)
	for _, appointment := range appointments {
		bookedPerDay[appointment.Date.Day()]++
	}

	now := srv.now()
	daysInMonth := time.Date(input.Year, input.Month+1, 0, 0, 0, 0, 0, time.Local).Day()

	availability := make([]usecase.DayAvailability, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		endOfDay := time.Date(input.Year, input.Month, day, 23, 59, 59, 0, now.Location())

		availability = append(availability, usecase.DayAvailability{
			Day:       day,
			Available: endOfDay.After(now) && bookedPerDay[day] < slotsPerDay,
		})
	}

	return availability, nil
}

// DayAvailability reports, for each working hour of the day, whether the
// provider is still bookable. Hours already past are never available.
func (srv *providerService) DayAvailability(ctx context.Context, input *usecase.DayAvailabilityInput) ([]usecase.HourAvailability, error) {
	appointments, err := srv.appointmentRepo.FindAllInDayFromProvider(ctx, input.ProviderID, input.Year, input.Month, input.Day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider day appointments")
	}

	booked := make(map[int]bool)
	for _, appointment := range appointments {
		booked[appointment.Date.Hour()] = true
	}

	now := srv.now()

	availability := make([]usecase.HourAvailability, 0, slotsPerDay)
	for hour := firstAppointmentHour; hour <= lastAppointmentHour; hour++ {
		slot := time.Date(input.Year, input.Month, input.Day, hour, 0, 0, 0, now.Location())

		availability = append(availability, usecase.HourAvailability{
			Hour:      hour,
			Available: !booked[hour] && slot.After(now),
		})
	}

	return availability, nil
}
