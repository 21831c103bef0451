package repository

import (
	"github.com/Mikjohns10/instabite-backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id ASC") }).
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// newest first
func (r *OrderRepository) ListOrdersForRestaurant(restID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_lines.id ASC") }).
		Where("restaurant_id = ?", restID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

// SaveBilling persists the tax fields set by bill generation.
func (r *OrderRepository) SaveBilling(orderID uint, gst, grand int64) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"gst_amount":     gst,
			"grand_total":    grand,
			"bill_generated": true,
		}).Error
}

func (r *OrderRepository) RestaurantExists(restID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", restID).Count(&count).Error
	return count > 0, err
}
