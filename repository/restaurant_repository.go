package repository

import (
	"github.com/Mikjohns10/instabite-backend/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) FindByEmail(email string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("email = ?", email).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// menu preloaded in insertion order (autoincrement id)
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Menu", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.id ASC") }).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Menu", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.id ASC") }).
		Find(&rests).Error
	return rests, err
}

// partial update; only the given columns are touched
func (r *RestaurantRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) AddMenuItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *RestaurantRepository) FindMenu(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id ASC").Find(&items).Error
	return items, err
}
