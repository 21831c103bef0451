package entity

import (
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ItemTotal int64  `json:"itemTotal"` // price × quantity, derived at creation

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
