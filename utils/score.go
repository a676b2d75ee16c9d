package utils

import "strings"

// Keyword groups used to turn the model's healthiness-assessment prose
// into a score. A group fires at most once when any of its phrases is
// present; groups are independent and their deltas are summed.
var scoreKeywords = []struct {
	phrases []string
	delta   int
}{
	{[]string{"healthy", "good choice", "well-balanced"}, 5},
	{[]string{"low sugar", "low fat", "low sodium"}, 2},
	{[]string{"high fiber", "good source of protein"}, 3},
	{[]string{"high sugar", "high fat", "high sodium", "unhealthy"}, -4},
	{[]string{"low protein", "low fiber"}, -1},
	{[]string{"be cautious", "consider alternatives"}, -2},
}

// CalculateMealScore scores an assessment paragraph by case-insensitive
// keyword matching. A non-trivial assessment with no strong indicators
// still earns +1; empty or very short input scores 0.
func CalculateMealScore(assessment string) int {
	score := 0
	text := strings.ToLower(assessment)

	for _, group := range scoreKeywords {
		for _, phrase := range group.phrases {
			if strings.Contains(text, phrase) {
				score += group.delta
				break
			}
		}
	}

	if score == 0 && len(text) > 10 {
		score = 1
	}
	return score
}
