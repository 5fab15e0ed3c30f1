package impl

import (
	"context"
	"testing"
	"time"

	"gobarber/internal/domain/entity"
	"gobarber/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerFixture wires a provider service against in-memory storage with the
// clock frozen at 2020-05-20 11:00 local time.
type providerFixture struct {
	srv         *providerService
	appointment *appointmentService
	provider    *entity.User
	customer    *entity.User
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()

	userRepo, appointmentRepo := newMemoryRepos()
	cacheProvider := newTestCache()
	frozen := func() time.Time { return localDate(2020, time.May, 20, 11) }

	srv := NewProviderService(userRepo, appointmentRepo, cacheProvider, testLogger()).(*providerService)
	srv.now = frozen

	appointmentSrv := NewAppointmentService(appointmentRepo, userRepo, cacheProvider, testLogger()).(*appointmentService)
	appointmentSrv.now = frozen

	return &providerFixture{
		srv:         srv,
		appointment: appointmentSrv,
		provider:    createTestUser(t, userRepo, "Provider", "provider@example.com", "123456"),
		customer:    createTestUser(t, userRepo, "Customer", "customer@example.com", "123456"),
	}
}

func (f *providerFixture) book(t *testing.T, day, hour int) {
	t.Helper()

	_, err := f.appointment.CreateAppointment(context.Background(), &usecase.CreateAppointmentInput{
		ProviderID: f.provider.ID,
		UserID:     f.customer.ID,
		Date:       localDate(2020, time.May, day, hour),
	})
	require.NoError(t, err)
}

func TestProviderService_ListProviders(t *testing.T) {
	t.Parallel()

	t.Run("excludes the requester from the listing", func(t *testing.T) {
		t.Parallel()

		f := newProviderFixture(t)

		providers, err := f.srv.ListProviders(context.Background(), f.customer.ID)

		require.NoError(t, err)
		require.Len(t, providers, 1)
		assert.Equal(t, f.provider.ID, providers[0].ID)
	})

	t.Run("serves repeated listings from cache", func(t *testing.T) {
		t.Parallel()

		f := newProviderFixture(t)
		ctx := context.Background()

		first, err := f.srv.ListProviders(ctx, f.customer.ID)
		require.NoError(t, err)

		// A stale cache entry would miss users added behind its back.
		createTestUser(t, f.srv.userRepo, "Late Provider", "late@example.com", "123456")

		second, err := f.srv.ListProviders(ctx, f.customer.ID)
		require.NoError(t, err)
		assert.Len(t, second, len(first))
	})
}

func TestProviderService_MonthAvailability(t *testing.T) {
	t.Parallel()

	f := newProviderFixture(t)

	// Fill 2020-05-21 completely, book a single slot on 2020-05-22.
	for hour := firstAppointmentHour; hour <= lastAppointmentHour; hour++ {
		f.book(t, 21, hour)
	}
	f.book(t, 22, 14)

	availability, err := f.srv.MonthAvailability(context.Background(), &usecase.MonthAvailabilityInput{
		ProviderID: f.provider.ID,
		Year:       2020,
		Month:      time.May,
	})

	require.NoError(t, err)
	require.Len(t, availability, 31)

	byDay := make(map[int]bool, len(availability))
	for _, day := range availability {
		byDay[day.Day] = day.Available
	}

	// The clock reads 2020-05-20, so earlier days are gone regardless of load.
	assert.False(t, byDay[19])
	assert.True(t, byDay[20])
	assert.False(t, byDay[21])
	assert.True(t, byDay[22])
	assert.True(t, byDay[23])
}

func TestProviderService_DayAvailability(t *testing.T) {
	t.Parallel()

	f := newProviderFixture(t)

	f.book(t, 20, 14)
	f.book(t, 20, 15)

	availability, err := f.srv.DayAvailability(context.Background(), &usecase.DayAvailabilityInput{
		ProviderID: f.provider.ID,
		Year:       2020,
		Month:      time.May,
		Day:        20,
	})

	require.NoError(t, err)
	require.Len(t, availability, slotsPerDay)

	byHour := make(map[int]bool, len(availability))
	for _, hour := range availability {
		byHour[hour.Hour] = hour.Available
	}

	// The clock reads 11:00, so 8 through 11 are already gone.
	assert.False(t, byHour[8])
	assert.False(t, byHour[11])
	assert.False(t, byHour[14])
	assert.False(t, byHour[15])
	assert.True(t, byHour[13])
	assert.True(t, byHour[16])
	assert.True(t, byHour[17])
}
