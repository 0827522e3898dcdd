package models

import "time"

type Part struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Category     string  `gorm:"size:50" json:"category"`
	Stock        int     `gorm:"default:0" json:"stock"`
	Manufacturer string  `gorm:"size:100" json:"manufacturer"`
	PartNumber   string  `gorm:"size:50" json:"part_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
