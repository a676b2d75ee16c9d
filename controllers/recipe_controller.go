package controllers

import (
	"net/http"

	"github.com/HarshaVardhank74/Nutricook/services"

	"github.com/gin-gonic/gin"
)

// Recommend returns up to 3 recipes parsed from the model's
// marker-delimited response. An unparseable response still yields a
// fallback record carrying the raw text.
func Recommend(c *gin.Context) {
	var targets services.MacroTargets
	if err := c.ShouldBindJSON(&targets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeSvc := services.NewRecipeService(services.NewGeminiService())
	recipes, err := recipeSvc.Recommend(targets)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not get recommendations from AI: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

type GenerateInput struct {
	Description string `json:"description"`
}

// Generate returns free-form recipe ideas as raw text.
func Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipeSvc := services.NewRecipeService(services.NewGeminiService())
	text, err := recipeSvc.Generate(input.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not generate recipes from AI: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": text})
}
