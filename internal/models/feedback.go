package models

import "time"

// Feedback keeps its singular table name to match the original schema.
type Feedback struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	Subject string `gorm:"size:200;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	AdminReply string `gorm:"type:text" json:"admin_reply"`
	IsResolved bool   `gorm:"default:false" json:"is_resolved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
