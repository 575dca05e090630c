package repositories

import (
	"context"
	"errors"
	"fmt"

	"dreamtrip/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error)
	ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error)
	GetByID(ctx context.Context, id string) (*db_models.Booking, error)
	Update(ctx context.Context, booking *db_models.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Trip").
		First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(booking)
		if result.Error != nil {
			return fmt.Errorf("failed to update booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Booking{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
