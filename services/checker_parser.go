package services

import (
	"regexp"
	"strings"
)

// CheckerAnalysis holds the three sections extracted from a meal-photo
// analysis response.
type CheckerAnalysis struct {
	MealName   string `json:"meal_name"`
	Nutrition  string `json:"nutrition"`
	Assessment string `json:"assessment"`
}

// Placeholders substituted when an expected heading is absent. Scoring
// still runs against whatever assessment text results.
const (
	PlaceholderMealName   = "Unknown Meal (Parsing Failed)"
	PlaceholderNutrition  = "Nutrition info could not be extracted."
	PlaceholderAssessment = "Assessment could not be extracted."
)

var (
	mealNamePattern   = regexp.MustCompile(`(?i)## Meal Name\s*(.*)`)
	nutritionPattern  = regexp.MustCompile(`(?is)## Estimated Nutrition\s*(.*?)(?:\n## Healthiness Assessment|\z)`)
	assessmentPattern = regexp.MustCompile(`(?is)## Healthiness Assessment\s*(.*)`)
)

// ParseCheckerResponse extracts meal name, nutrition, and assessment
// from the model's Markdown analysis. First match wins per section;
// missing structure degrades to placeholders, never an error.
func ParseCheckerResponse(text string) CheckerAnalysis {
	analysis := CheckerAnalysis{
		MealName:   PlaceholderMealName,
		Nutrition:  PlaceholderNutrition,
		Assessment: PlaceholderAssessment,
	}

	if m := mealNamePattern.FindStringSubmatch(text); m != nil {
		analysis.MealName = strings.TrimSpace(m[1])
	}
	if m := nutritionPattern.FindStringSubmatch(text); m != nil {
		analysis.Nutrition = strings.TrimSpace(m[1])
	}
	if m := assessmentPattern.FindStringSubmatch(text); m != nil {
		analysis.Assessment = strings.TrimSpace(m[1])
	}

	return analysis
}
