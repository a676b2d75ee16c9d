package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/HarshaVardhank74/Nutricook/services"

	"github.com/gin-gonic/gin"
)

type CheckerController struct {
	Hub *services.RealtimeHub
}

func NewCheckerController(hub *services.RealtimeHub) *CheckerController {
	return &CheckerController{Hub: hub}
}

type CheckMealInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"` // data URI
}

// CheckMeal analyzes an uploaded meal photo, scores it, and logs the
// check. Provider failures surface as 502; parse degradation does not:
// placeholders come back with 200.
func (cc *CheckerController) CheckMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input CheckMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// Rekognition is a best-effort enrichment; the checker runs without it
	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("Rekognition unavailable: %v", err)
		rek = nil
	}

	checkerSvc := services.NewCheckerService(services.NewGeminiService(), rek, cc.Hub)
	result, err := checkerSvc.CheckMeal(user, input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not analyze meal: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (cc *CheckerController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := 5
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	checkerSvc := services.NewCheckerService(services.NewGeminiService(), nil, cc.Hub)
	meals, err := checkerSvc.ListRecentChecks(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked_meals": meals})
}
