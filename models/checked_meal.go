package models

import (
	"time"

	"gorm.io/gorm"
)

// CheckedMeal is one photo the user ran through the Meal Checker.
// Records are append-only; the assigned score is also added to the
// owning user's TotalHealthScore when the record is created.
type CheckedMeal struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CheckedAt time.Time `json:"checked_at"`

	MealName           string `json:"meal_name"`
	EstimatedNutrition string `gorm:"type:text" json:"estimated_nutrition"` // extracted free text
	HealthAssessment   string `gorm:"type:text" json:"health_assessment"`   // extracted free text
	AssignedScore      int    `gorm:"default:0" json:"assigned_score"`
	ImageURL           string `json:"image_url"`
}
