package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"makeupshop/internal/database"
	"makeupshop/internal/domain"
	"makeupshop/internal/middleware"
	"makeupshop/internal/modules/artist"
	"makeupshop/internal/modules/auth"
	"makeupshop/internal/modules/catalog"
	"makeupshop/internal/modules/favorite"
	"makeupshop/internal/modules/model"
	"makeupshop/internal/modules/reservation"
	"makeupshop/internal/modules/review"
	jwtsvc "makeupshop/internal/pkg/jwt"
	"makeupshop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "makeupshop.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Artist{},
		&domain.Model{},
		&domain.Portfolio{},
		&domain.PortfolioImage{},
		&domain.Reservation{},
		&domain.Review{},
		&domain.ReviewImage{},
		&domain.FavoriteArtist{},
		&domain.FavoritePortfolio{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	modelRepo := repository.NewModelRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	portfolioImageRepo := repository.NewPortfolioImageRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteArtistRepo := repository.NewFavoriteArtistRepository(db)
	favoritePortfolioRepo := repository.NewFavoritePortfolioRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	artistService := artist.NewService(artistRepo)
	artistHandler := artist.NewHandler(artistService)

	modelService := model.NewService(modelRepo)
	modelHandler := model.NewHandler(modelService)

	catalogService := catalog.NewService(artistRepo, portfolioRepo, portfolioImageRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	favoriteService := favorite.NewService(
		modelRepo,
		artistRepo,
		portfolioRepo,
		favoriteArtistRepo,
		favoritePortfolioRepo,
	)
	favoriteHandler := favorite.NewHandler(favoriteService)

	reservationService := reservation.NewService(
		modelRepo,
		artistRepo,
		portfolioRepo,
		reservationRepo,
	)
	reservationHandler := reservation.NewHandler(reservationService)

	reviewService := review.NewService(modelRepo, reservationRepo, reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			artistHandler.RegisterRoutes(protected)
			modelHandler.RegisterRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
