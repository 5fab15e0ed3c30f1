package postgres

import (
	"context"
	"time"

	"gobarber/internal/domain/entity"
	domainerrors "gobarber/internal/domain/errors"
	"gobarber/internal/domain/repository"
	"gobarber/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the domain's AppointmentRepository interface using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create persists a new appointment entity to the database.
// The unique index on (provider_id, date) is the last line of defense against
// two concurrent bookings of the same slot; a violation surfaces as
// repository.ErrAppointmentSlotTaken.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAppointmentSlotTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid provider or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByDate retrieves the appointment booked with a provider at an exact timestamp.
func (repo *appointmentRepository) FindByDate(ctx context.Context, date time.Time, providerID uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel
	err := repo.db.WithContext(ctx).
		Where("provider_id = ? AND date = ?", providerID, date).
		First(&appointmentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by date")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// FindAllInMonthFromProvider retrieves every appointment of a provider within the given calendar month.
func (repo *appointmentRepository) FindAllInMonthFromProvider(ctx context.Context, providerID uuid.UUID, year int, month time.Month) ([]*entity.Appointment, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	return repo.findAllInRangeFromProvider(ctx, providerID, start, end)
}

// FindAllInDayFromProvider retrieves every appointment of a provider within
// the given calendar day, in local day boundaries.
func (repo *appointmentRepository) FindAllInDayFromProvider(ctx context.Context, providerID uuid.UUID, year int, month time.Month, day int) ([]*entity.Appointment, error) {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	return repo.findAllInRangeFromProvider(ctx, providerID, start, end)
}

func (repo *appointmentRepository) findAllInRangeFromProvider(ctx context.Context, providerID uuid.UUID, start, end time.Time) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel
	err := repo.db.WithContext(ctx).
		Where("provider_id = ? AND date >= ? AND date < ?", providerID, start, end).
		Order("date").
		Find(&appointmentModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments in range")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:         data.ID,
		ProviderID: data.ProviderID,
		UserID:     data.UserID,
		Date:       data.Date,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:         data.ID,
		ProviderID: data.ProviderID,
		UserID:     data.UserID,
		Date:       data.Date,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
