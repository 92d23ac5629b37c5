package main

import (
	"log"
	"time"

	"staybnb/internal/config"
	"staybnb/internal/database"
	"staybnb/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Spot{},
		&domain.SpotImage{},
		&domain.Review{},
		&domain.Booking{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM spot_images")
	db.Exec("DELETE FROM spots")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	host := domain.User{Firstname: "Ada", Lastname: "Hollis", Email: "ada@staybnb.local", PasswordHash: string(hash)}
	renter := domain.User{Firstname: "Ben", Lastname: "Okafor", Email: "ben@staybnb.local", PasswordHash: string(hash)}
	guest := domain.User{Firstname: "Cleo", Lastname: "Marsh", Email: "cleo@staybnb.local", PasswordHash: string(hash)}
	for _, u := range []*domain.User{&host, &renter, &guest} {
		if err := db.Create(u).Error; err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	log.Println("Creating spots...")
	cabin := domain.Spot{
		OwnerID:     host.ID,
		Address:     "12 Pine Hollow Rd",
		City:        "Asheville",
		State:       "NC",
		Country:     "USA",
		Lat:         35.5951,
		Lng:         -82.5515,
		Name:        "Creekside Cabin",
		Description: "Two-bedroom cabin with a wraparound porch over the creek.",
		Price:       145,
	}
	loft := domain.Spot{
		OwnerID:     host.ID,
		Address:     "88 Mercer St",
		City:        "New York",
		State:       "NY",
		Country:     "USA",
		Lat:         40.7249,
		Lng:         -74.0030,
		Name:        "SoHo Loft",
		Description: "Sunny open-plan loft, five minutes from the subway.",
		Price:       320,
	}
	for _, s := range []*domain.Spot{&cabin, &loft} {
		if err := db.Create(s).Error; err != nil {
			log.Fatal("seed spot failed:", err)
		}
	}

	log.Println("Creating images, reviews and bookings...")
	db.Create(&domain.SpotImage{SpotID: cabin.ID, URL: "https://img.staybnb.local/cabin-front.jpg", Preview: true})
	db.Create(&domain.SpotImage{SpotID: cabin.ID, URL: "https://img.staybnb.local/cabin-porch.jpg", Preview: false})
	db.Create(&domain.SpotImage{SpotID: loft.ID, URL: "https://img.staybnb.local/loft-main.jpg", Preview: true})

	db.Create(&domain.Review{SpotID: cabin.ID, UserID: renter.ID, Stars: 5})
	db.Create(&domain.Review{SpotID: cabin.ID, UserID: guest.ID, Stars: 4})

	start := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	db.Create(&domain.Booking{SpotID: cabin.ID, UserID: renter.ID, StartDate: start, EndDate: start.AddDate(0, 0, 4)})
	db.Create(&domain.Booking{SpotID: loft.ID, UserID: guest.ID, StartDate: start.AddDate(0, 0, 10), EndDate: start.AddDate(0, 0, 12)})

	log.Println("Seed complete")
}
