// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"
	"fmt"

	"dreamtrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, error)
	GetByIDWithItinerary(ctx context.Context, id string) (*db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	ReplaceItinerary(ctx context.Context, tripID uuid.UUID, days []db_models.TripDay) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}
	return trips, nil
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *tripRepository) GetByIDWithItinerary(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("trip_days.date ASC") }).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB { return db.Order("trip_activities.created_at ASC") }).
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit("Days").Save(trip)
		if result.Error != nil {
			return fmt.Errorf("failed to update trip: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ReplaceItinerary swaps the materialized day/activity rows for a trip in a
// single transaction.
func (r *tripRepository) ReplaceItinerary(ctx context.Context, tripID uuid.UUID, days []db_models.TripDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&db_models.TripDay{}).
			Select("trip_days.id").
			Where("trip_days.trip_id = ?", tripID)

		if err := tx.Where("trip_day_id IN (?)", sub).
			Delete(&db_models.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&db_models.TripDay{}).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].TripID = tripID
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&db_models.TripDay{}).
			Select("trip_days.id").
			Where("trip_days.trip_id = ?", id)

		if err := tx.Where("trip_day_id IN (?)", sub).
			Delete(&db_models.TripActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", id).
			Delete(&db_models.TripDay{}).Error; err != nil {
			return err
		}

		err := tx.Delete(&db_models.Trip{}, "id = ?", id).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
}
