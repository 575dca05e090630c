package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dreamtrip/internal/models/db_models"
	"dreamtrip/internal/models/request_models"
	"dreamtrip/internal/models/response_models"
	"dreamtrip/internal/repositories"
	"dreamtrip/pkg/utils"
)

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error)
	ListDestinations(ctx context.Context, country, tag string, page, pageSize int) (*response_models.DestinationListResponse, error)
	GetPopularDestinations(ctx context.Context, limit int) ([]response_models.DestinationResponse, error)
	SearchDestinations(ctx context.Context, query string, limit int) ([]response_models.DestinationResponse, error)
	GetDestinationByID(ctx context.Context, id string) (*response_models.DestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	embedder        *utils.LocalEmbedder
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, embedder *utils.LocalEmbedder) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		embedder:        embedder,
	}
}

func (d *DestinationService) CreateDestination(ctx context.Context, req request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Country) == "" {
		return nil, utils.ErrInvalidInput
	}

	destination := &db_models.Destination{
		Name:         req.Name,
		Country:      req.Country,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		BestSeason:   req.BestSeason,
		BudgetCost:   req.BudgetCost,
		MidRangeCost: req.MidRangeCost,
		LuxuryCost:   req.LuxuryCost,
		Embedding:    d.embedder.TextToVector(destinationSearchText(req.Name, req.Country, req.Description, req.Tags)),
	}

	if _, err := d.destinationRepo.Create(ctx, destination); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := buildDestinationResponse(destination)
	return &resp, nil
}

func (d *DestinationService) ListDestinations(ctx context.Context, country, tag string, page, pageSize int) (*response_models.DestinationListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	destinations, total, err := d.destinationRepo.List(ctx, repositories.DestinationFilter{
		Country: country,
		Tag:     tag,
	}, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.DestinationListResponse{
		Destinations: make([]response_models.DestinationResponse, 0, len(destinations)),
		CurrentPage:  page,
		Total:        total,
		TotalPages:   int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	for i := range destinations {
		out.Destinations = append(out.Destinations, buildDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) GetPopularDestinations(ctx context.Context, limit int) ([]response_models.DestinationResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 6
	}

	destinations, err := d.destinationRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, buildDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) SearchDestinations(ctx context.Context, query string, limit int) ([]response_models.DestinationResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	vector := d.embedder.TextToVector(query)

	destinations, err := d.destinationRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		log.Printf("Destination vector search failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, buildDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) GetDestinationByID(ctx context.Context, id string) (*response_models.DestinationResponse, error) {
	destination, err := d.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	// Every detail view bumps popularity; a lost increment is harmless.
	if err := d.destinationRepo.IncrementPopularity(ctx, destination.ID); err != nil {
		log.Printf("Failed to increment popularity for destination %s: %v", destination.ID, err)
	} else {
		destination.Popularity++
	}

	resp := buildDestinationResponse(destination)
	return &resp, nil
}

func destinationSearchText(name, country, description string, tags []string) string {
	return fmt.Sprintf("%s %s %s %s", name, country, description, strings.Join(tags, " "))
}

func buildDestinationResponse(destination *db_models.Destination) response_models.DestinationResponse {
	return response_models.DestinationResponse{
		ID:           destination.ID.String(),
		Name:         destination.Name,
		Country:      destination.Country,
		Description:  destination.Description,
		ImageURL:     destination.ImageURL,
		Tags:         destination.Tags,
		Popularity:   destination.Popularity,
		BestSeason:   destination.BestSeason,
		BudgetCost:   destination.BudgetCost,
		MidRangeCost: destination.MidRangeCost,
		LuxuryCost:   destination.LuxuryCost,
	}
}
