package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderCode string `gorm:"uniqueIndex" json:"orderCode"`

	RestaurantID uint `json:"restaurantId"`

	// seller snapshot taken at creation time; the invoice stays
	// historically accurate even if the restaurant changes later
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	RestaurantGstin   string `json:"restaurantGstin"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	CustomerEmail   string `json:"customerEmail"`

	Items []OrderLine `json:"items"`

	TotalAmount int64 `json:"totalAmount"`
	// populated on first bill generation, recomputed idempotently after
	GstAmount  int64 `json:"gstAmount"`
	GrandTotal int64 `json:"grandTotal"`

	Status              string `gorm:"default:pending" json:"status"`
	SpecialInstructions string `json:"specialInstructions"`
	PaymentMethod       string `gorm:"default:UPI" json:"paymentMethod"`
	BillGenerated       bool   `gorm:"default:false" json:"billGenerated"`
}
