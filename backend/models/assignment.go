package models

import "gorm.io/gorm"

type Assignment struct {
	gorm.Model
	ClassID     uint   `gorm:"index" json:"classId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}
