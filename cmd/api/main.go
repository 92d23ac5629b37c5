package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"staybnb/internal/config"
	"staybnb/internal/database"
	"staybnb/internal/domain"
	"staybnb/internal/middleware"
	"staybnb/internal/modules/auth"
	"staybnb/internal/modules/spot"
	jwtsvc "staybnb/internal/pkg/jwt"
	"staybnb/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Spot{},
		&domain.SpotImage{},
		&domain.Review{},
		&domain.Booking{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	spotRepo := repository.NewSpotRepository(db)
	imageRepo := repository.NewSpotImageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	spotService := spot.NewService(spotRepo, imageRepo, bookingRepo, reviewRepo)
	spotHandler := spot.NewHandler(spotService)

	spotGuard := middleware.NewSpotGuard(spotRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))

		spotHandler.RegisterRoutes(api, protected, spotGuard)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
