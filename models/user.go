package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username         string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash     string `gorm:"not null" json:"-"`
	Age              int    `json:"age"`
	HealthConditions string `json:"health_conditions"` // comma-separated, e.g. "diabetes, hypertension"
	TotalHealthScore int    `gorm:"default:0" json:"total_health_score"`
}
