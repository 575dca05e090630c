package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

type mockDestinationRepository struct {
	create              func(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	list                func(ctx context.Context, filter repositories.DestinationFilter, page, pageSize int) ([]db_models.Destination, int64, error)
	listPopular         func(ctx context.Context, limit int) ([]db_models.Destination, error)
	getByID             func(ctx context.Context, id string) (*db_models.Destination, error)
	incrementPopularity func(ctx context.Context, id uuid.UUID) error
	searchByVector      func(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
}

func (m *mockDestinationRepository) Create(ctx context.Context, d *db_models.Destination) (uuid.UUID, error) {
	return m.create(ctx, d)
}
func (m *mockDestinationRepository) List(ctx context.Context, f repositories.DestinationFilter, page, pageSize int) ([]db_models.Destination, int64, error) {
	return m.list(ctx, f, page, pageSize)
}
func (m *mockDestinationRepository) ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error) {
	return m.listPopular(ctx, limit)
}
func (m *mockDestinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepository) IncrementPopularity(ctx context.Context, id uuid.UUID) error {
	return m.incrementPopularity(ctx, id)
}
func (m *mockDestinationRepository) SearchByVector(ctx context.Context, v pgvector.Vector, limit int) ([]db_models.Destination, error) {
	return m.searchByVector(ctx, v, limit)
}

var _ repositories.DestinationRepository = (*mockDestinationRepository)(nil)

func destinationFixture() *db_models.Destination {
	destination := &db_models.Destination{
		Name:       "Kyoto",
		Country:    "Japan",
		Tags:       []string{"temples", "food"},
		Popularity: 10,
	}
	destination.ID = uuid.New()
	return destination
}

func newDestinationService(repo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, utils.NewLocalEmbedder())
}

func TestCreateDestination(t *testing.T) {
	t.Run("stores an embedding alongside the row", func(t *testing.T) {
		var saved *db_models.Destination
		repo := &mockDestinationRepository{
			create: func(ctx context.Context, d *db_models.Destination) (uuid.UUID, error) {
				saved = d
				return uuid.New(), nil
			},
		}
		svc := newDestinationService(repo)

		resp, err := svc.CreateDestination(context.Background(), request_models.CreateDestinationRequest{
			Name:        "Kyoto",
			Country:     "Japan",
			Description: "Historic temples and gardens",
			Tags:        []string{"temples"},
		})
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, "Kyoto", resp.Name)
		assert.Len(t, saved.Embedding.Slice(), utils.EmbeddingDimensions)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		svc := newDestinationService(&mockDestinationRepository{})

		_, err := svc.CreateDestination(context.Background(), request_models.CreateDestinationRequest{
			Name:    "  ",
			Country: "Japan",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestListDestinations(t *testing.T) {
	t.Run("computes total pages", func(t *testing.T) {
		repo := &mockDestinationRepository{
			list: func(ctx context.Context, f repositories.DestinationFilter, page, pageSize int) ([]db_models.Destination, int64, error) {
				assert.Equal(t, "Japan", f.Country)
				return []db_models.Destination{*destinationFixture()}, 21, nil
			},
		}
		svc := newDestinationService(repo)

		resp, err := svc.ListDestinations(context.Background(), "Japan", "", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.Total)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Len(t, resp.Destinations, 1)
	})

	t.Run("pagination bounds", func(t *testing.T) {
		svc := newDestinationService(&mockDestinationRepository{})

		_, err := svc.ListDestinations(context.Background(), "", "", 0, 10)
		assert.ErrorIs(t, err, utils.ErrInvalidPage)

		_, err = svc.ListDestinations(context.Background(), "", "", 1, 500)
		assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
	})
}

func TestSearchDestinations(t *testing.T) {
	t.Run("embeds the query before searching", func(t *testing.T) {
		var searched pgvector.Vector
		repo := &mockDestinationRepository{
			searchByVector: func(ctx context.Context, v pgvector.Vector, limit int) ([]db_models.Destination, error) {
				searched = v
				assert.Equal(t, 10, limit)
				return []db_models.Destination{*destinationFixture()}, nil
			},
		}
		svc := newDestinationService(repo)

		results, err := svc.SearchDestinations(context.Background(), "historic temples", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Len(t, searched.Slice(), utils.EmbeddingDimensions)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		svc := newDestinationService(&mockDestinationRepository{})

		_, err := svc.SearchDestinations(context.Background(), "  ", 10)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestGetDestinationByID(t *testing.T) {
	t.Run("bumps popularity on view", func(t *testing.T) {
		destination := destinationFixture()
		bumped := false
		repo := &mockDestinationRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Destination, error) {
				return destination, nil
			},
			incrementPopularity: func(ctx context.Context, id uuid.UUID) error {
				bumped = true
				return nil
			},
		}
		svc := newDestinationService(repo)

		resp, err := svc.GetDestinationByID(context.Background(), destination.ID.String())
		require.NoError(t, err)
		assert.True(t, bumped)
		assert.Equal(t, 11, resp.Popularity)
	})

	t.Run("missing destination", func(t *testing.T) {
		repo := &mockDestinationRepository{
			getByID: func(ctx context.Context, id string) (*db_models.Destination, error) {
				return nil, nil
			},
		}
		svc := newDestinationService(repo)

		_, err := svc.GetDestinationByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
	})
}
