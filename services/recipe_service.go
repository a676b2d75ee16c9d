package services

import "fmt"

type RecipeService struct {
	gemini *GeminiService
}

func NewRecipeService(gemini *GeminiService) *RecipeService {
	return &RecipeService{gemini: gemini}
}

// MacroTargets are per-serving targets for the recommender. Empty
// values mean "any".
type MacroTargets struct {
	Protein     string `json:"protein"`
	Fat         string `json:"fat"`
	Carbs       string `json:"carbs"`
	Fiber       string `json:"fiber"`
	Ingredients string `json:"ingredients"` // preferences/exclusions free text
}

func (t MacroTargets) orAny(v string) string {
	if v == "" {
		return "any"
	}
	return v
}

// Recommend asks for 3 recipes in the marker-delimited format and
// returns whatever the parser makes of the response.
func (s *RecipeService) Recommend(targets MacroTargets) ([]ParsedRecipe, error) {
	prompt := fmt.Sprintf(`Find 3 distinct recipes trying to meet these targets per serving:
Protein: %sg, Fat: %sg, Carbs: %sg, Fiber: %sg (use 'any' if flexible).
Preferences/Exclusions: %s.

For EACH recipe, provide the response STRICTLY in this format, using the markers:
--- RECIPE START ---
Meal Name: [Name]
YouTube Search Terms: [Provide 3-5 concise keywords for finding a video tutorial for this specific recipe on YouTube, e.g., "easy chicken parmesan recipe", "how to make vegan lentil soup"]
Preparation Time: [Estimated time, e.g., 30 minutes]
Taste Profile: [Brief description, e.g., Savory, slightly spicy, citrusy]
Ingredients:
- [Ingredient 1 with quantity]
- [Ingredient 2 with quantity]
...
Instructions:
1. [Step 1]
2. [Step 2]
...
Estimated Nutrition: [Provide summary if possible, e.g., ~450 kcal, P:30g F:20g C:40g Fib:8g]
--- RECIPE END ---`,
		targets.orAny(targets.Protein),
		targets.orAny(targets.Fat),
		targets.orAny(targets.Carbs),
		targets.orAny(targets.Fiber),
		targets.orAny(targets.Ingredients),
	)

	response, err := s.gemini.GenerateText(prompt)
	if err != nil {
		return nil, err
	}
	return ParseRecipeResponse(response), nil
}

// Generate returns free-form recipe ideas as raw text; no parsing is
// attempted for this flow.
func (s *RecipeService) Generate(description string) (string, error) {
	if description == "" {
		description = "a healthy meal"
	}
	prompt := fmt.Sprintf(`Generate 3 distinct meal recipe ideas based on the following description: "%s".
For each recipe, provide clearly separated sections for:
1.  **Meal Name:**
2.  **Brief Description:**
3.  **Key Ingredients:** (List format)
4.  **Simple Instructions:** (Numbered list format)

Make the output easy to read. Separate each recipe clearly (e.g., using --- or Recipe X).`, description)

	return s.gemini.GenerateText(prompt)
}
