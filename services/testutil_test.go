package services

import (
	"testing"

	"github.com/Mikjohns10/instabite-backend/entity"
	"github.com/Mikjohns10/instabite-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderLine{},
	))
	return db
}

func newTestRepos(t *testing.T) (*gorm.DB, *repository.RestaurantRepository, *repository.OrderRepository) {
	t.Helper()
	db := newTestDB(t)
	return db, repository.NewRestaurantRepository(db), repository.NewOrderRepository(db)
}
