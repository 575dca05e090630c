package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

type mockBookingRepository struct {
	create       func(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error)
	listByUserID func(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error)
	getByID      func(ctx context.Context, id string) (*db_models.Booking, error)
	update       func(ctx context.Context, booking *db_models.Booking) error
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookingRepository) Create(ctx context.Context, b *db_models.Booking) (uuid.UUID, error) {
	return m.create(ctx, b)
}
func (m *mockBookingRepository) ListByUserID(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error) {
	return m.listByUserID(ctx, userID, page, pageSize)
}
func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*db_models.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookingRepository) Update(ctx context.Context, b *db_models.Booking) error {
	return m.update(ctx, b)
}
func (m *mockBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ repositories.BookingRepository = (*mockBookingRepository)(nil)

func bookingFixture(userID uuid.UUID) *db_models.Booking {
	booking := &db_models.Booking{
		UserID:   userID,
		Type:     "hotel",
		Title:    "Hotel du Louvre",
		Cost:     180,
		Currency: "EUR",
		Status:   db_models.BookingStatusPending,
	}
	booking.ID = uuid.New()
	return booking
}

func TestCreateBooking(t *testing.T) {
	userID := uuid.New()

	t.Run("defaults currency and status", func(t *testing.T) {
		var saved *db_models.Booking
		repo := &mockBookingRepository{
			create: func(ctx context.Context, b *db_models.Booking) (uuid.UUID, error) {
				saved = b
				return b.ID, nil
			},
		}
		svc := services.NewBookingService(repo)

		resp, err := svc.CreateBooking(context.Background(), userID.String(), request_models.CreateBookingRequest{
			Type:  "hotel",
			Title: "Hotel du Louvre",
			Cost:  180,
			Date:  "2024-06-01",
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, "USD", saved.Currency)
		assert.Equal(t, db_models.BookingStatusPending, saved.Status)
		require.NotNil(t, saved.Date)
		assert.Equal(t, db_models.BookingStatusPending, resp.Status)
	})

	t.Run("bad trip id is rejected", func(t *testing.T) {
		svc := services.NewBookingService(&mockBookingRepository{})

		_, err := svc.CreateBooking(context.Background(), userID.String(), request_models.CreateBookingRequest{
			TripID: "not-a-uuid",
			Type:   "hotel",
			Title:  "Hotel du Louvre",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		svc := services.NewBookingService(&mockBookingRepository{})

		_, err := svc.CreateBooking(context.Background(), userID.String(), request_models.CreateBookingRequest{
			Type:  "hotel",
			Title: "Hotel du Louvre",
			Date:  "tomorrow",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidDateFormat)
	})
}

func TestGetBookingByID(t *testing.T) {
	userID := uuid.New()

	t.Run("owner sees the booking", func(t *testing.T) {
		booking := bookingFixture(userID)
		repo := &mockBookingRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		svc := services.NewBookingService(repo)

		resp, err := svc.GetBookingByID(context.Background(), userID.String(), booking.ID.String())
		require.NoError(t, err)
		assert.Equal(t, booking.ID.String(), resp.ID)
	})

	t.Run("someone else's booking is denied", func(t *testing.T) {
		booking := bookingFixture(uuid.New())
		repo := &mockBookingRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
		}
		svc := services.NewBookingService(repo)

		_, err := svc.GetBookingByID(context.Background(), userID.String(), booking.ID.String())
		assert.ErrorIs(t, err, utils.ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		repo := &mockBookingRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return nil, nil
			},
		}
		svc := services.NewBookingService(repo)

		_, err := svc.GetBookingByID(context.Background(), userID.String(), uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrBookingNotFound)
	})
}

func TestUpdateBooking(t *testing.T) {
	userID := uuid.New()

	t.Run("applies only supplied fields", func(t *testing.T) {
		booking := bookingFixture(userID)
		repo := &mockBookingRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
			update: func(ctx context.Context, b *db_models.Booking) error {
				return nil
			},
		}
		svc := services.NewBookingService(repo)

		confirmed := db_models.BookingStatusConfirmed
		resp, err := svc.UpdateBooking(context.Background(), userID.String(), booking.ID.String(), request_models.UpdateBookingRequest{
			Status: &confirmed,
		})
		require.NoError(t, err)
		assert.Equal(t, db_models.BookingStatusConfirmed, resp.Status)
		assert.Equal(t, "Hotel du Louvre", resp.Title)
		assert.Equal(t, "EUR", resp.Currency)
	})
}

func TestDeleteBooking(t *testing.T) {
	userID := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		booking := bookingFixture(userID)
		deleted := false
		repo := &mockBookingRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Booking, error) {
				return booking, nil
			},
			delete: func(ctx context.Context, id uuid.UUID) error {
				deleted = true
				return nil
			},
		}
		svc := services.NewBookingService(repo)

		require.NoError(t, svc.DeleteBooking(context.Background(), userID.String(), booking.ID.String()))
		assert.True(t, deleted)
	})
}
