package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `gorm:"uniqueIndex" json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// bcrypt hash, never the plaintext and never serialized
	Password string `json:"-"`

	UpiID string `json:"upiId"`
	QrRef string `json:"qrRef"`
	Gstin string `json:"gstin"`

	// insertion order matters for display → ordered by id
	Menu []MenuItem `json:"menu"`
}
