package models

import "gorm.io/gorm"

// Status is shared by teacher applications and classes.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// TeacherApplication is a request to be granted the teacher role,
// reviewed by an admin. pending -> approved | rejected, terminal.
type TeacherApplication struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `gorm:"index" json:"email"`
	Image      string `json:"image"`
	Experience string `json:"experience"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Status     Status `gorm:"default:pending" json:"status"`
}
