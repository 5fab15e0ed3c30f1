package memory

import (
	"context"
	"testing"
	"time"

	"gobarber/internal/domain/entity"
	"gobarber/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_CreateRejectsDuplicateSlot(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	providerID := uuid.New()
	date := time.Date(2020, time.May, 20, 14, 0, 0, 0, time.Local)

	first := &entity.Appointment{ProviderID: providerID, UserID: uuid.New(), Date: date}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &entity.Appointment{ProviderID: providerID, UserID: uuid.New(), Date: date}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrAppointmentSlotTaken)

	// Same timestamp with a different provider is a different slot.
	other := &entity.Appointment{ProviderID: uuid.New(), UserID: uuid.New(), Date: date}
	assert.NoError(t, repo.Create(ctx, other))
}

func TestAppointmentRepository_FindByDate(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	providerID := uuid.New()
	date := time.Date(2020, time.May, 20, 14, 0, 0, 0, time.Local)

	created := &entity.Appointment{ProviderID: providerID, UserID: uuid.New(), Date: date}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByDate(ctx, date, providerID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByDate(ctx, date.Add(time.Hour), providerID)
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}

func TestAppointmentRepository_DayAndMonthBoundaries(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	providerID := uuid.New()
	userID := uuid.New()

	dates := []time.Time{
		time.Date(2020, time.May, 20, 8, 0, 0, 0, time.Local),
		time.Date(2020, time.May, 20, 14, 0, 0, 0, time.Local),
		time.Date(2020, time.May, 21, 8, 0, 0, 0, time.Local),
		time.Date(2020, time.June, 20, 8, 0, 0, 0, time.Local),
	}
	for _, date := range dates {
		require.NoError(t, repo.Create(ctx, &entity.Appointment{
			ProviderID: providerID,
			UserID:     userID,
			Date:       date,
		}))
	}

	inDay, err := repo.FindAllInDayFromProvider(ctx, providerID, 2020, time.May, 20)
	require.NoError(t, err)
	require.Len(t, inDay, 2)
	// Results come back ordered by date.
	assert.True(t, inDay[0].Date.Before(inDay[1].Date))

	inMonth, err := repo.FindAllInMonthFromProvider(ctx, providerID, 2020, time.May)
	require.NoError(t, err)
	assert.Len(t, inMonth, 3)

	otherProvider, err := repo.FindAllInDayFromProvider(ctx, uuid.New(), 2020, time.May, 20)
	require.NoError(t, err)
	assert.Empty(t, otherProvider)
}
