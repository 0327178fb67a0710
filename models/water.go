package models

import "gorm.io/gorm"

// WaterIntake tracks glasses of water per user per day.
type WaterIntake struct {
	gorm.Model
	UserID  uint    `gorm:"index;not null" json:"-"`
	Date    string  `gorm:"type:varchar(10);index;not null" json:"date"`
	Glasses float64 `json:"glasses"`
}
