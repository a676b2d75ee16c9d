package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/HarshaVardhank74/Nutricook/config"
	"github.com/HarshaVardhank74/Nutricook/models"
	"github.com/HarshaVardhank74/Nutricook/utils"

	"gorm.io/gorm"
)

type CheckerService struct {
	gemini *GeminiService
	rek    *RekognitionService // optional label pre-pass, may be nil
	hub    *RealtimeHub        // optional, may be nil
}

func NewCheckerService(gemini *GeminiService, rek *RekognitionService, hub *RealtimeHub) *CheckerService {
	return &CheckerService{gemini: gemini, rek: rek, hub: hub}
}

// CheckResult is what the checker flow hands back to the presentation
// layer after parsing, scoring, and logging.
type CheckResult struct {
	RawAnalysis        string   `json:"raw_analysis"`
	MealName           string   `json:"meal_name"`
	EstimatedNutrition string   `json:"estimated_nutrition"`
	HealthAssessment   string   `json:"health_assessment"`
	AssignedScore      int      `json:"assigned_score"`
	AdvisoryNotes      []string `json:"advisory_notes"`
	ImageURL           string   `json:"image_url"`
	TotalHealthScore   int      `json:"total_health_score"`
}

// CheckMeal runs the full checker flow for one uploaded photo: store
// the image, ask the vision model for an analysis, extract the three
// sections, score the assessment, apply the rule engine against the
// extracted nutrient estimates, and log the check. The record insert
// and the score increment happen in one transaction so the running
// total can never drift from the history.
func (s *CheckerService) CheckMeal(user *models.User, imageDataURI string) (*CheckResult, error) {
	imageData, contentType, err := utils.DecodeImageDataURI(imageDataURI)
	if err != nil {
		return nil, err
	}

	imageURL, err := utils.UploadMealImageToS3(imageData, contentType, user.ID)
	if err != nil {
		return nil, err
	}

	// Best-effort label hints for the vision prompt
	var labels []string
	if s.rek != nil {
		labels, err = s.rek.RecognizeLabels(imageData)
		if err != nil {
			log.Printf("Rekognition labels unavailable: %v", err)
			labels = nil
		}
	}

	parts := buildCheckerPrompt(user, imageData, contentType, labels)
	rawAnalysis, err := s.gemini.GenerateParts(parts)
	if err != nil {
		return nil, err
	}

	analysis := ParseCheckerResponse(rawAnalysis)
	assignedScore := utils.CalculateMealScore(analysis.Assessment)

	estimates := utils.ExtractNutrientEstimates(analysis.Nutrition)
	notes, adjustment := utils.ApplyRuleEngine(estimates, utils.HealthProfile{
		Age:              user.Age,
		HealthConditions: user.HealthConditions,
	})
	assignedScore += adjustment

	record := &models.CheckedMeal{
		UserID:             user.ID,
		CheckedAt:          time.Now(),
		MealName:           analysis.MealName,
		EstimatedNutrition: analysis.Nutrition,
		HealthAssessment:   analysis.Assessment,
		AssignedScore:      assignedScore,
		ImageURL:           imageURL,
	}

	// Insert + increment atomically; the assigned score must equal the
	// delta applied to the user's total.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			UpdateColumn("total_health_score", gorm.Expr("total_health_score + ?", assignedScore)).
			Error
	})
	if err != nil {
		return nil, err
	}

	var refreshed models.User
	if err := config.DB.First(&refreshed, user.ID).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastScoreUpdate(user.ID, map[string]any{
			"kind":      "score.updated",
			"meal_name": analysis.MealName,
			"delta":     assignedScore,
			"total":     refreshed.TotalHealthScore,
		})
	}

	return &CheckResult{
		RawAnalysis:        rawAnalysis,
		MealName:           analysis.MealName,
		EstimatedNutrition: analysis.Nutrition,
		HealthAssessment:   analysis.Assessment,
		AssignedScore:      assignedScore,
		AdvisoryNotes:      notes,
		ImageURL:           imageURL,
		TotalHealthScore:   refreshed.TotalHealthScore,
	}, nil
}

// ListRecentChecks returns the user's newest checked meals.
func (s *CheckerService) ListRecentChecks(userID uint, limit int) ([]models.CheckedMeal, error) {
	if limit <= 0 {
		limit = 5
	}
	var meals []models.CheckedMeal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func buildCheckerPrompt(user *models.User, imageData []byte, contentType string, labels []string) []PromptPart {
	age := "Unknown"
	if user.Age > 0 {
		age = fmt.Sprintf("%d", user.Age)
	}
	conditions := user.HealthConditions
	if conditions == "" {
		conditions = "None specified"
	}

	intro := "Analyze the food items in this image. Assume a standard single serving size.\n"
	if len(labels) > 0 {
		intro += fmt.Sprintf("An image-labeling service detected: %s.\n", strings.Join(labels, ", "))
	}

	tasks := fmt.Sprintf("\nTasks:\n"+
		"1. Identify the main meal/dish name.\n"+
		"2. Estimate the primary ingredients visible.\n"+
		"3. Estimate the approximate nutritional values (Calories, Protein, Fat, Carbohydrates, Fiber) for this serving.\n"+
		"4. Based ONLY on the estimated nutritional values and common knowledge about the ingredients, provide a brief healthiness assessment paragraph for a user who is %s years old with the following health considerations: '%s'. Focus on potential concerns (e.g., high sugar, high fat, high sodium if apparent) or general suitability. Be cautious and mention these are estimations.\n\n"+
		"Respond in a clear, structured format using Markdown. Include sections titled exactly: ## Meal Name, ## Estimated Ingredients, ## Estimated Nutrition, ## Healthiness Assessment",
		age, conditions)

	return []PromptPart{
		{Text: intro},
		{Image: imageData, MIMEType: contentType},
		{Text: tasks},
	}
}
