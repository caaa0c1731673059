package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelcompanion/cmd/fx/account_fx"
	"travelcompanion/cmd/fx/clients_fx"
	"travelcompanion/cmd/fx/controllers_fx"
	"travelcompanion/cmd/fx/db_fx"
	"travelcompanion/cmd/fx/hotels_fx"
	"travelcompanion/cmd/fx/places_fx"
	"travelcompanion/cmd/fx/recommendations_fx"
	"travelcompanion/cmd/fx/redis_fx"
	"travelcompanion/cmd/fx/reviews_fx"
	"travelcompanion/cmd/fx/trips_fx"
	"travelcompanion/cmd/fx/visits_fx"
	"travelcompanion/internal/api/controllers"
	"travelcompanion/internal/infra"
	"travelcompanion/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		clients_fx.Module,
		account_fx.Module,
		places_fx.Module,
		hotels_fx.Module,
		recommendations_fx.Module,
		trips_fx.Module,
		visits_fx.Module,
		reviews_fx.Module,
		controllers_fx.Module,

		fx.Invoke(infra.AutoMigrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *gorm.DB, cache *redis.Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + cfg.Port
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseRedis(cache)
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *infra.Config,
	accountController *controllers.AccountController,
	placeController *controllers.PlaceController,
	hotelController *controllers.HotelController,
	recommendationController *controllers.RecommendationController,
	tripController *controllers.TripController,
	visitController *controllers.VisitController,
	reviewController *controllers.ReviewController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg,
		accountController, placeController, hotelController,
		recommendationController, tripController, visitController, reviewController)

	return r
}

func RegisterRoutes(r *gin.Engine, cfg *infra.Config,
	accountController *controllers.AccountController,
	placeController *controllers.PlaceController,
	hotelController *controllers.HotelController,
	recommendationController *controllers.RecommendationController,
	tripController *controllers.TripController,
	visitController *controllers.VisitController,
	reviewController *controllers.ReviewController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	authed.GET("/users/me", accountController.Me)
	authed.GET("/search", placeController.SearchPlaces)
	authed.GET("/hotels", hotelController.GetHotels)
	authed.GET("/recommendations", recommendationController.GetRecommendations)
	authed.GET("/trips", tripController.ListTrips)

	visitsGroup := authed.Group("/visits")
	visitsGroup.POST("", visitController.CreateVisit)
	visitsGroup.GET("", visitController.ListVisits)
	visitsGroup.POST("/visited", visitController.SaveVisitedPlace)

	reviewsGroup := authed.Group("/reviews")
	reviewsGroup.POST("", reviewController.CreateReview)
	reviewsGroup.GET("", reviewController.ListReviews)
	reviewsGroup.PUT("/:id", reviewController.UpdateReview)
	reviewsGroup.DELETE("/:id", reviewController.DeleteReview)
}
