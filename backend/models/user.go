package models

import "gorm.io/gorm"

// Role is the closed set of account roles. Stored as text, validated at
// the boundary before it ever reaches the database.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `gorm:"unique;not null" json:"email"`
	PhotoURL       string `json:"photoURL"`
	Role           Role   `gorm:"default:student" json:"role"` // student, teacher, admin
	UID            string `json:"uid"`
	PasswordHash   string `json:"-"`
	LastSignInTime string `json:"lastSignInTime"`
}
