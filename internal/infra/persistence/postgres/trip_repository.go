package postgres

import (
	"context"

	"itinerary/internal/domain/entity"
	domainerrors "itinerary/internal/domain/errors"
	"itinerary/internal/domain/repository"
	"itinerary/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tripRepository implements the domain.TripRepository interface.
type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository is the constructor for tripRepository.
func NewTripRepository(db *gorm.DB) repository.TripRepository {
	return &tripRepository{db: db}
}

// ListTrips returns every trip ordered by start date. Undated trips come last.
func (repo *tripRepository) ListTrips(ctx context.Context) ([]*entity.Trip, error) {
	var tripModels []*model.TripModel
	err := repo.db.WithContext(ctx).
		Order("start_date ASC NULLS LAST").
		Order("created_at ASC").
		Find(&tripModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trips")
	}

	trips := make([]*entity.Trip, 0, len(tripModels))
	for _, tripM := range tripModels {
		trips = append(trips, toTripDomain(tripM))
	}

	return trips, nil
}

// FindTripByID retrieves a trip with its days, stops and places.
func (repo *tripRepository) FindTripByID(ctx context.Context, id uuid.UUID) (*entity.Trip, error) {
	var tripM model.TripModel
	err := repo.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("days.seq ASC")
		}).
		Preload("Days.Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.seq ASC")
		}).
		Preload("Days.Stops.Place").
		Where("id = ?", id).
		First(&tripM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTripNotFound
		}

		return nil, errors.Wrap(err, "failed to find trip by ID")
	}

	return toTripDomain(&tripM), nil
}

// UpdateTripStatus persists a new status for a trip.
func (repo *tripRepository) UpdateTripStatus(ctx context.Context, id uuid.UUID, status entity.TripStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidTripStatus.WrapMessage("status rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update trip status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTripNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTripDomain converts a GORM TripModel to a domain Trip entity.
func toTripDomain(data *model.TripModel) *entity.Trip {
	if data == nil {
		return nil
	}

	trip := &entity.Trip{
		ID:          data.ID,
		Title:       data.Title,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Status:      entity.NormalizeTripStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if len(data.Days) > 0 {
		trip.Days = make([]entity.Day, 0, len(data.Days))
		for i := range data.Days {
			trip.Days = append(trip.Days, *toDayDomain(&data.Days[i]))
		}
	}

	return trip
}
