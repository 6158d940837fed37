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
	"gorm.io/gorm/clause"
)

// dayRepository implements the domain.DayRepository interface.
type dayRepository struct {
	db *gorm.DB
}

// NewDayRepository is the constructor for dayRepository.
func NewDayRepository(db *gorm.DB) repository.DayRepository {
	return &dayRepository{db: db}
}

// FindDayByID retrieves a day with its stops and their places.
func (repo *dayRepository) FindDayByID(ctx context.Context, id uuid.UUID) (*entity.Day, error) {
	var dayM model.DayModel
	err := repo.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("stops.seq ASC")
		}).
		Preload("Stops.Place").
		Where("id = ?", id).
		First(&dayM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDayNotFound
		}

		return nil, errors.Wrap(err, "failed to find day by ID")
	}

	return toDayDomain(&dayM), nil
}

// UpdateStopSequences rewrites the seq of the given stops. The (day_id, seq)
// unique index forbids swapping in place, so the affected rows are first
// moved to negative seqs and then to their final values.
func (repo *dayRepository) UpdateStopSequences(ctx context.Context, dayID uuid.UUID, seqByStop map[uuid.UUID]int) error {
	if len(seqByStop) == 0 {
		return nil
	}

	stopIDs := make([]uuid.UUID, 0, len(seqByStop))
	for id := range seqByStop {
		stopIDs = append(stopIDs, id)
	}

	db := repo.db.WithContext(ctx)

	// Lock the day's stops so concurrent accepts serialize.
	var locked []model.StopModel
	if err := db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("day_id = ?", dayID).
		Find(&locked).Error; err != nil {
		return errors.Wrap(err, "failed to lock day stops")
	}

	parked := db.Model(&model.StopModel{}).
		Where("day_id = ? AND id IN ?", dayID, stopIDs).
		Update("seq", gorm.Expr("-seq"))
	if parked.Error != nil {
		return domainerrors.NewDatabaseExecuteError(parked.Error, "failed to park stop sequences")
	}
	if parked.RowsAffected != int64(len(stopIDs)) {
		return errors.Wrapf(repository.ErrStopNotOnDay, "matched %d of %d stops", parked.RowsAffected, len(stopIDs))
	}

	for stopID, seq := range seqByStop {
		if seq <= 0 {
			return errors.Wrapf(entity.ErrInvalidStopSeq, "stop %s got %d", stopID, seq)
		}

		result := db.Model(&model.StopModel{}).
			Where("day_id = ? AND id = ?", dayID, stopID).
			Update("seq", seq)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return domainerrors.ErrConflict.WrapMessage("stop sequence already taken")
			}

			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stop sequence")
		}
	}

	return nil
}

// --- Mapper Functions ---

// toDayDomain converts a GORM DayModel to a domain Day entity.
func toDayDomain(data *model.DayModel) *entity.Day {
	if data == nil {
		return nil
	}

	day := &entity.Day{
		ID:     data.ID,
		TripID: data.TripID,
		Seq:    data.Seq,
		Date:   data.Date,
		Stops:  make([]entity.Stop, 0, len(data.Stops)),
	}
	for i := range data.Stops {
		day.Stops = append(day.Stops, toStopDomain(&data.Stops[i]))
	}

	return day
}

func toStopDomain(data *model.StopModel) entity.Stop {
	kind := entity.StopKind(data.Kind)
	if !kind.IsValid() {
		kind = entity.StopKindVia
	}

	return entity.Stop{
		ID:    data.ID,
		Place: toPlaceDomain(&data.Place),
		Seq:   data.Seq,
		Kind:  kind,
		Fixed: data.Fixed || kind != entity.StopKindVia,
	}
}

// toPlaceDomain leaves Position nil unless both coordinates are stored.
func toPlaceDomain(data *model.PlaceModel) entity.Place {
	place := entity.Place{
		ID:      data.ID,
		Name:    data.Name,
		Address: data.Address,
	}
	if data.Latitude != nil && data.Longitude != nil {
		place.Position = &entity.Coordinate{Lat: *data.Latitude, Lon: *data.Longitude}
	}

	return place
}
