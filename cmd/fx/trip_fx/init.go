package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dreamtrip/internal/api/controllers"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraryService services.ItineraryServiceInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraryService)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
