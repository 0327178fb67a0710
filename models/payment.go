package models

import "gorm.io/gorm"

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Payment is a subscription charge record, managed from the admin surface.
type Payment struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `gorm:"size:3;default:EUR" json:"currency"`
	Status    string  `gorm:"size:12;index;default:pending" json:"status"`
	Reference string  `gorm:"size:64" json:"reference"`
}
