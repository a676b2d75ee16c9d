package utils

import "strings"

// HealthProfile is the slice of the user record the rule engine reads.
type HealthProfile struct {
	Age              int
	HealthConditions string // comma-separated free text, e.g. "type 2 diabetes, hypertension"
}

// Thresholds applied against AI-estimated nutrient values.
// Sugar/fat/fiber/protein in grams, sodium in mg.
const (
	sugarLimitDiabetes      = 25.0
	sodiumLimitHypertension = 800.0
	fatLimitGeneral         = 35.0
	fiberGoodSource         = 7.0
	proteinHigh             = 30.0
)

// ApplyRuleEngine evaluates the fixed advisory rules against an
// estimated nutrient map and the user's profile. Missing nutrient keys
// count as zero. Every applicable rule fires; notes come back in rule
// order together with the summed score adjustment.
func ApplyRuleEngine(nutrition map[string]float64, profile HealthProfile) ([]string, int) {
	notes := []string{}
	adjustment := 0
	conditions := strings.ToLower(profile.HealthConditions)

	if strings.Contains(conditions, "diabetes") && nutrition["sugar"] > sugarLimitDiabetes {
		notes = append(notes, "High estimated sugar content; may need caution for diabetes management.")
		adjustment -= 3
	}
	if strings.Contains(conditions, "hypertension") && nutrition["sodium"] > sodiumLimitHypertension {
		notes = append(notes, "High estimated sodium content; consider for hypertension.")
		adjustment -= 2
	}
	if nutrition["fat"] > fatLimitGeneral {
		notes = append(notes, "This meal appears relatively high in fat.")
		adjustment--
	}
	if nutrition["fiber"] > fiberGoodSource {
		notes = append(notes, "Good source of dietary fiber.")
		adjustment += 2
	}
	if nutrition["protein"] > proteinHigh {
		notes = append(notes, "High protein content.")
		adjustment++
	}

	return notes, adjustment
}
