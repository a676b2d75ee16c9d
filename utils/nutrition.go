package utils

import (
	"regexp"
	"strconv"
)

// The vision model is asked for nutrition as free text ("~450 kcal,
// P:30g F:20g ..." or "Protein: 25 g"). These patterns pull out the
// figures the rule engine cares about; anything unmatched is simply
// absent from the result.
var nutrientPatterns = map[string]*regexp.Regexp{
	"calories": regexp.MustCompile(`(?i)(?:calories|energy)[^\d]{0,12}(\d+(?:\.\d+)?)|~?(\d+(?:\.\d+)?)\s*k?cal`),
	"protein":  regexp.MustCompile(`(?i)protein[^\d]{0,12}(\d+(?:\.\d+)?)|\bP\s*:\s*~?(\d+(?:\.\d+)?)`),
	"fat":      regexp.MustCompile(`(?i)fats?[^\d]{0,12}(\d+(?:\.\d+)?)|\bF\s*:\s*~?(\d+(?:\.\d+)?)`),
	"carbs":    regexp.MustCompile(`(?i)carb(?:ohydrate)?s?[^\d]{0,12}(\d+(?:\.\d+)?)|\bC\s*:\s*~?(\d+(?:\.\d+)?)`),
	"sugar":    regexp.MustCompile(`(?i)sugars?[^\d]{0,12}(\d+(?:\.\d+)?)`),
	"sodium":   regexp.MustCompile(`(?i)sodium[^\d]{0,12}(\d+(?:\.\d+)?)`),
	"fiber":    regexp.MustCompile(`(?i)fib(?:er|re)?[^\d]{0,12}(\d+(?:\.\d+)?)`),
}

// ExtractNutrientEstimates best-effort parses numeric nutrient values
// out of the extracted nutrition text. First match per nutrient wins.
func ExtractNutrientEstimates(text string) map[string]float64 {
	estimates := map[string]float64{}
	for name, re := range nutrientPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, group := range m[1:] {
			if group == "" {
				continue
			}
			if v, err := strconv.ParseFloat(group, 64); err == nil {
				estimates[name] = v
				break
			}
		}
	}
	return estimates
}
