package models

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID    uint    `json:"userId"`
	UserName  string  `json:"userName"`
	UserPhoto string  `json:"userPhoto"`
	ClassID   uint    `json:"classId"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
}
