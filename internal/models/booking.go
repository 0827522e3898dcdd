package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	ServiceType   string     `gorm:"size:100;not null" json:"service_type"`
	Description   string     `gorm:"type:text" json:"description"`
	PreferredDate *time.Time `json:"preferred_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	TechnicianID *uint       `json:"technician_id"`
	Technician   *Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"technician,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
