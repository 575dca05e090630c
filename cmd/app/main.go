package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dreamtrip/cmd/fx/account_fx"
	"dreamtrip/cmd/fx/ai_fx"
	"dreamtrip/cmd/fx/booking_fx"
	"dreamtrip/cmd/fx/db_fx"
	"dreamtrip/cmd/fx/destination_fx"
	"dreamtrip/cmd/fx/memcache_fx"
	"dreamtrip/cmd/fx/trip_fx"
	"dreamtrip/internal/api/controllers"
	"dreamtrip/pkg/middleware"
	mem "dreamtrip/pkg/memcache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		booking_fx.Module,
		destination_fx.Module,
		ai_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	counters mem.RequestCounterStore,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	destinationController *controllers.DestinationController,
	aiController *controllers.AIController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RateLimitMiddleware(counters, 100, 15*time.Minute))

	RegisterRoutes(r, counters, accountController, tripController, bookingController, destinationController, aiController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	counters mem.RequestCounterStore,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	destinationController *controllers.DestinationController,
	aiController *controllers.AIController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/profile", middleware.JWTAuthMiddleware(), accountController.GetProfile)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("", tripController.GetUserTrips)
	tripGroup.GET("/:tripId", tripController.GetTrip)
	tripGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripGroup.DELETE("/:tripId", tripController.DeleteTrip)

	bookingGroup := r.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuthMiddleware())
	bookingGroup.POST("", bookingController.CreateBooking)
	bookingGroup.GET("", bookingController.GetUserBookings)
	bookingGroup.GET("/:bookingId", bookingController.GetBooking)
	bookingGroup.PUT("/:bookingId", bookingController.UpdateBooking)
	bookingGroup.DELETE("/:bookingId", bookingController.DeleteBooking)

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", destinationController.ListDestinations)
	destinationGroup.GET("/popular", destinationController.GetPopularDestinations)
	destinationGroup.GET("/search", destinationController.SearchDestinations)
	destinationGroup.GET("/:destinationId", destinationController.GetDestination)
	destinationGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), destinationController.CreateDestination)

	// Completion-backed endpoints get a much tighter budget than the rest of
	// the API.
	aiGroup := r.Group("/ai")
	aiGroup.Use(middleware.JWTAuthMiddleware())
	aiGroup.Use(middleware.RateLimitMiddleware(counters, 3, time.Minute))
	aiGroup.POST("/generate-itinerary", aiController.GenerateItinerary)
	aiGroup.POST("/recommendations", aiController.GetRecommendations)
}
