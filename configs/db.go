package configs

import (
	"github.com/Mikjohns10/instabite-backend/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	// TranslateError so unique-index violations come back as
	// gorm.ErrDuplicatedKey (order-code collision retry depends on it)
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	)
}
