package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dreamtrip/internal/api/controllers"
	"dreamtrip/internal/repositories"
	"dreamtrip/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(bookingRepo repositories.BookingRepository) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
