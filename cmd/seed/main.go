package main

import (
	"fmt"
	"log"
	"os"

	"makeupshop/internal/database"
	"makeupshop/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "makeupshop.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
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

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM review_images")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM favorite_portfolios")
	db.Exec("DELETE FROM favorite_artists")
	db.Exec("DELETE FROM portfolio_images")
	db.Exec("DELETE FROM portfolios")
	db.Exec("DELETE FROM models")
	db.Exec("DELETE FROM artists")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	artists := make([]domain.Artist, 0, 3)
	artistNicknames := []string{"glowbyjane", "mira.beauty", "studio_ken"}
	for i, nickname := range artistNicknames {
		email := fmt.Sprintf("%s@makeupshop.io", nickname)
		hash, _ := bcrypt.GenerateFromPassword([]byte("artist123"), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Nickname:     nickname,
			Role:         domain.RoleArtist,
		})

		a := domain.Artist{
			Nickname:     nickname,
			Name:         fmt.Sprintf("Artist %d", i+1),
			Gender:       "FEMALE",
			Email:        email,
			Introduction: "Certified makeup artist, bookings open.",
		}
		db.Create(&a)
		artists = append(artists, a)
	}
	log.Println("Artists created, password: artist123")

	models := make([]domain.Model, 0, 3)
	modelNicknames := []string{"sena_m", "yuri.k", "dahyun"}
	for i, nickname := range modelNicknames {
		email := fmt.Sprintf("%s@makeupshop.io", nickname)
		hash, _ := bcrypt.GenerateFromPassword([]byte("model123"), bcrypt.DefaultCost)
		db.Create(&domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Nickname:     nickname,
			Role:         domain.RoleModel,
		})

		m := domain.Model{
			Nickname:      nickname,
			Name:          fmt.Sprintf("Model %d", i+1),
			Gender:        "FEMALE",
			Email:         email,
			SkinType:      "COMBINATION",
			PersonalColor: "SPRING",
		}
		db.Create(&m)
		models = append(models, m)
	}
	log.Println("Models created, password: model123")

	// ================== PORTFOLIOS ==================
	log.Println("Creating portfolios...")

	categories := []domain.Category{
		domain.CategoryDaily,
		domain.CategoryWedding,
		domain.CategoryParty,
		domain.CategoryActor,
		domain.CategoryInterview,
		domain.CategoryStudio,
	}

	portfolios := make([]domain.Portfolio, 0, 12)
	for i := 0; i < 12; i++ {
		a := artists[i%len(artists)]
		p := domain.Portfolio{
			ArtistID:     a.ID,
			Category:     categories[i%len(categories)],
			MakeupName:   fmt.Sprintf("%s look no.%d", a.Nickname, i+1),
			Info:         "Includes skin prep, base, point makeup and touch-up kit.",
			Price:        30000 + i*5000,
			AverageStars: "0.00",
			Images: []domain.PortfolioImage{
				{Src: fmt.Sprintf("/static/portfolios/%d_main.jpg", i+1)},
				{Src: fmt.Sprintf("/static/portfolios/%d_detail.jpg", i+1)},
			},
		}
		db.Create(&p)
		portfolios = append(portfolios, p)
	}

	// One blocked portfolio to exercise visibility rules.
	blocked := domain.Portfolio{
		ArtistID:     artists[0].ID,
		Category:     domain.CategoryEtc,
		MakeupName:   "hidden trial look",
		Info:         "Temporarily unavailable.",
		Price:        20000,
		AverageStars: "0.00",
		IsBlock:      true,
	}
	db.Create(&blocked)

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	reservations := []domain.Reservation{
		{ModelID: models[0].ID, PortfolioID: portfolios[0].ID, Status: domain.ReservationComplete, ReservationDate: "2026-08-20", ReservationTime: "10:00"},
		{ModelID: models[0].ID, PortfolioID: portfolios[1].ID, Status: domain.ReservationExpected, ReservationDate: "2026-09-10", ReservationTime: "14:30"},
		{ModelID: models[1].ID, PortfolioID: portfolios[2].ID, Status: domain.ReservationAccepted, ReservationDate: "2026-09-12", ReservationTime: "11:00"},
		{ModelID: models[1].ID, PortfolioID: portfolios[0].ID, Status: domain.ReservationComplete, ReservationDate: "2026-08-25", ReservationTime: "16:00"},
		{ModelID: models[2].ID, PortfolioID: portfolios[3].ID, Status: domain.ReservationCancel, ReservationDate: "2026-09-01", ReservationTime: "09:30"},
	}
	for i := range reservations {
		db.Create(&reservations[i])
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	reviewed := []struct {
		reservation *domain.Reservation
		star        int
		comment     string
	}{
		{&reservations[0], 5, "Lasted all day, exactly the look I asked for."},
		{&reservations[3], 4, "Great base work, point color was a bit strong."},
	}

	starSum := 0
	for _, r := range reviewed {
		db.Create(&domain.Review{
			PortfolioID: r.reservation.PortfolioID,
			ModelID:     r.reservation.ModelID,
			Star:        r.star,
			Comment:     r.comment,
		})
		db.Model(&domain.Reservation{}).
			Where("id = ?", r.reservation.ID).
			Update("has_review", true)
		starSum += r.star
	}

	avg := fmt.Sprintf("%.2f", float64(starSum)/float64(len(reviewed)))
	db.Model(&domain.Portfolio{}).
		Where("id = ?", portfolios[0].ID).
		Update("average_stars", avg)

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")

	db.Create(&domain.FavoriteArtist{ModelID: models[0].ID, ArtistID: artists[0].ID})
	db.Create(&domain.FavoriteArtist{ModelID: models[0].ID, ArtistID: artists[1].ID})
	db.Create(&domain.FavoriteArtist{ModelID: models[1].ID, ArtistID: artists[2].ID})

	db.Create(&domain.FavoritePortfolio{ModelID: models[0].ID, PortfolioID: portfolios[0].ID})
	db.Create(&domain.FavoritePortfolio{ModelID: models[1].ID, PortfolioID: portfolios[2].ID})
	db.Create(&domain.FavoritePortfolio{ModelID: models[2].ID, PortfolioID: portfolios[4].ID})

	log.Println("Seed complete.")
}
