package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dreamtrip/internal/api/controllers"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
	"dreamtrip/pkg/utils"
)

var Module = fx.Provide(
	provideEmbedder, provideDestinationRepo, provideDestinationService, provideDestinationController)

func provideEmbedder() *utils.LocalEmbedder {
	return utils.NewLocalEmbedder()
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository, embedder *utils.LocalEmbedder) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, embedder)
}

func provideDestinationController(destinationService services.DestinationServiceInterface) *controllers.DestinationController {
	return controllers.NewDestinationController(destinationService)
}
