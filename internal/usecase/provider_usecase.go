package usecase

import (
	"context"
	"time"

	"gobarber/internal/domain/entity"

	"github.com/google/uuid"
)

// MonthAvailabilityInput selects the provider and month to inspect.
type MonthAvailabilityInput struct {
	ProviderID uuid.UUID
	Year       int
	Month      time.Month
}

// DayAvailabilityInput selects the provider and day to inspect.
type DayAvailabilityInput struct {
	ProviderID uuid.UUID
	Year       int
	Month      time.Month
	Day        int
}

// DayAvailability reports whether a day of the month still has free slots.
type DayAvailability struct {
	Day       int  `json:"day"`
	Available bool `json:"available"`
}

// HourAvailability reports whether an hour of the day is still bookable.
type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// ProviderUsecase defines the interface for provider-related business operations.
type ProviderUsecase interface {
	// ListProviders returns every user except the requester.
	ListProviders(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// MonthAvailability returns, for each day of the month, whether the
	// provider still has free slots.
	MonthAvailability(ctx context.Context, input *MonthAvailabilityInput) ([]DayAvailability, error)

	// DayAvailability returns, for each working hour of the day, whether the
	// provider is still bookable at that hour.
	DayAvailability(ctx context.Context, input *DayAvailabilityInput) ([]HourAvailability, error)
}
