package repositories

import (
	"context"
	"errors"

	"dreamtrip/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DestinationFilter struct {
	Country string
	Tag     string
}

type DestinationRepository interface {
	Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	List(ctx context.Context, filter DestinationFilter, page, pageSize int) ([]db_models.Destination, int64, error)
	ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error)
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	IncrementPopularity(ctx context.Context, id uuid.UUID) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(destination).Error; err != nil {
		return uuid.Nil, err
	}
	return destination.ID, nil
}

func (r *destinationRepository) List(ctx context.Context, filter DestinationFilter, page, pageSize int) ([]db_models.Destination, int64, error) {
	query := r.db.WithContext(ctx).Model(&db_models.Destination{})

	if filter.Country != "" {
		query = query.Where("country ILIKE ?", "%"+filter.Country+"%")
	}
	if filter.Tag != "" {
		query = query.Where("? = ANY(tags)", filter.Tag)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var destinations []db_models.Destination
	offset := (page - 1) * pageSize
	err := query.
		Order("popularity DESC, created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&destinations).Error

	if err != nil {
		return nil, 0, err
	}
	return destinations, total, nil
}

func (r *destinationRepository) ListPopular(ctx context.Context, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Order("popularity DESC").
		Limit(limit).
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) IncrementPopularity(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Destination{}).
		Where("id = ?", id).
		UpdateColumn("popularity", gorm.Expr("popularity + 1")).Error
}

func (r *destinationRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination

	query := `
        SELECT *
        FROM destinations
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
