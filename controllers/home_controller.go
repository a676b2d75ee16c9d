package controllers

import (
	"log"
	"net/http"

	"github.com/HarshaVardhank74/Nutricook/services"

	"github.com/gin-gonic/gin"
)

// Home is the personalized landing feed: profile summary, recent
// checks, and history-based AI suggestions. A suggestion failure is
// shown inline rather than failing the whole feed.
func Home(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := services.GetUserProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	checkerSvc := services.NewCheckerService(services.NewGeminiService(), nil, nil)
	recentChecks, err := checkerSvc.ListRecentChecks(userID, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	suggestionSvc := services.NewSuggestionService(services.NewGeminiService())
	suggestions, err := suggestionSvc.HistorySuggestions(userID)
	if err != nil {
		log.Printf("Home suggestions error: %v", err)
		suggestions = "Could not load suggestions due to an API error."
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          profile,
		"recent_checks": recentChecks,
		"suggestions":   suggestions,
	})
}
