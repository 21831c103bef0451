package configs

import (
	"log"

	"github.com/Mikjohns10/instabite-backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates a demo restaurant with a small menu on first boot.
// Skipped unless SEED_EMAIL/SEED_PASSWORD are set.
func SeedDemo() error {
	db := DB()
	email := getEnv("SEED_EMAIL", "")
	pass := getEnv("SEED_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip demo seed: missing SEED_EMAIL/SEED_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("demo restaurant already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	rest := entity.Restaurant{
		Name:     "InstaBite Demo Kitchen",
		Email:    email,
		Phone:    "9000000000",
		Address:  "42 Demo Street",
		Password: string(hash),
		UpiID:    "demo@upi",
		Gstin:    "22AAAAA0000A1Z5",
		Menu: []entity.MenuItem{
			{Name: "Masala Tea", Price: 20, Category: "Beverages", Available: true},
			{Name: "Veg Thali", Price: 150, Category: "Meals", Available: true},
		},
	}
	return db.Create(&rest).Error
}
