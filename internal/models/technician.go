package models

import "time"

type Technician struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Email           string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone           string `gorm:"size:20;not null" json:"phone"`
	Specialization  string `gorm:"size:100" json:"specialization"`
	ExperienceYears int    `gorm:"default:0" json:"experience_years"`
	IsAvailable     bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
