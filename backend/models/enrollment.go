package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is immutable once created. The (class, user email) pair is
// unique: a user cannot enroll twice in the same class.
type Enrollment struct {
	gorm.Model
	ClassID    uint      `gorm:"uniqueIndex:idx_enrollments_class_user" json:"classId"`
	UserID     uint      `json:"userId"`
	UserEmail  string    `gorm:"uniqueIndex:idx_enrollments_class_user" json:"userEmail"`
	UserName   string    `json:"userName"`
	ClassName  string    `json:"className"`
	ClassPrice float64   `json:"classPrice"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
