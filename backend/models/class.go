package models

import "gorm.io/gorm"

// Class counters are denormalized aggregates, only ever incremented as a
// side effect of enrollment/assignment/submission writes.
type Class struct {
	gorm.Model
	Email           string  `gorm:"index" json:"email"` // owning teacher
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
	Status          Status  `gorm:"default:pending" json:"status"` // pending, approved, rejected
	EnrollmentCount int     `gorm:"default:0" json:"enrollmentCount"`
	AssignmentCount int     `gorm:"default:0" json:"assignmentCount"`
	SubmissionCount int     `gorm:"default:0" json:"submissionCount"`
}
