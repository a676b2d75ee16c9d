package services

import (
	"fmt"
	"strings"

	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/models"
)

type SuggestionService struct {
	gemini *GeminiService
}

func NewSuggestionService(gemini *GeminiService) *SuggestionService {
	return &SuggestionService{gemini: gemini}
}

// HistorySuggestions builds meal ideas from the user's recent
// positively-scored checks. Returns guidance text instead of calling
// the model when there is no usable history.
func (s *SuggestionService) HistorySuggestions(userID uint) (string, error) {
	var recent []models.CheckedMeal
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("checked_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return "", fmt.Errorf("db error fetching checked meals: %w", err)
	}

	if len(recent) == 0 {
		return "Check some meals using the Meal Checker to get personalized suggestions here!", nil
	}

	seen := map[string]bool{}
	var healthyNames []string
	for _, check := range recent {
		if check.AssignedScore > 0 && check.MealName != "" && !seen[check.MealName] {
			seen[check.MealName] = true
			healthyNames = append(healthyNames, check.MealName)
		}
	}
	if len(healthyNames) == 0 {
		return "Check more healthy meals to get personalized suggestions!", nil
	}
	if len(healthyNames) > 3 {
		healthyNames = healthyNames[:3]
	}

	prompt := fmt.Sprintf(`Based on the fact that the user recently checked and seemed to enjoy meals like: %s,
suggest 2-3 healthy meal ideas (just names and a one-sentence description for each) that they might also like.
Focus on healthiness and variety. Format as a simple list using '*' for bullet points.`,
		strings.Join(healthyNames, ", "))

	return s.gemini.GenerateText(prompt)
}
