package services

import (
	"log"
	"net/url"
	"regexp"
	"strings"
)

// ParsedRecipe is one recipe block extracted from a multi-recipe AI
// response. Immutable once built; never persisted.
type ParsedRecipe struct {
	Name               string `json:"name"`
	PrepTime           string `json:"prep_time,omitempty"`
	Taste              string `json:"taste,omitempty"`
	Ingredients        string `json:"ingredients,omitempty"`
	Instructions       string `json:"instructions,omitempty"`
	Nutrition          string `json:"nutrition,omitempty"`
	YouTubeSearchTerms string `json:"youtube_search_terms,omitempty"`
	YouTubeSearchURL   string `json:"youtube_search_url,omitempty"`
}

// FallbackRecipeName marks a synthetic record carrying raw AI output
// that could not be parsed into recipe blocks.
const FallbackRecipeName = "Recipe Details (Parsing Failed)"

var recipeBlockPattern = regexp.MustCompile(`(?is)---\s*RECIPE START\s*---(.*?)---\s*RECIPE END\s*---`)

// Label-to-field map. A line starting with "<label>:" (case-insensitive)
// opens that field and the rest of the line is its first content line.
var recipeLabels = []struct{ label, field string }{
	{"meal name", "name"},
	{"youtube search terms", "youtube_search_terms"},
	{"preparation time", "prep_time"},
	{"taste profile", "taste"},
	{"ingredients", "ingredients"},
	{"instructions", "instructions"},
	{"estimated nutrition", "nutrition"},
}

// ParseRecipeResponse splits a multi-recipe response into structured
// records. Blocks without a name and at least ingredients or
// instructions are dropped. If nothing parses out of a non-trivial
// response, a single fallback record carries the raw text so the
// caller never silently loses AI output.
func ParseRecipeResponse(text string) []ParsedRecipe {
	recipes := []ParsedRecipe{}

	for _, match := range recipeBlockPattern.FindAllStringSubmatch(text, -1) {
		data := parseRecipeBlock(match[1])
		if data["name"] == "" || (data["ingredients"] == "" && data["instructions"] == "") {
			continue
		}

		recipe := ParsedRecipe{
			Name:               data["name"],
			PrepTime:           data["prep_time"],
			Taste:              data["taste"],
			Nutrition:          data["nutrition"],
			YouTubeSearchTerms: data["youtube_search_terms"],
			Ingredients:        stripLineMarkers(data["ingredients"], "-* "),
			Instructions:       stripLineMarkers(data["instructions"], "0123456789.* "),
		}
		if recipe.YouTubeSearchTerms != "" {
			recipe.YouTubeSearchURL = "https://www.youtube.com/results?search_query=" +
				url.QueryEscape(recipe.YouTubeSearchTerms)
		}
		recipes = append(recipes, recipe)
	}

	if len(recipes) == 0 && len(text) > 50 {
		log.Printf("Could not parse multi-recipes, returning raw text.")
		return []ParsedRecipe{{Name: FallbackRecipeName, Instructions: text}}
	}

	log.Printf("Parsed %d recipes.", len(recipes))
	return recipes
}

func parseRecipeBlock(block string) map[string]string {
	data := map[string]string{}
	currentField := ""
	var currentValue []string

	flush := func() {
		if currentField != "" {
			data[currentField] = strings.TrimSpace(strings.Join(currentValue, "\n"))
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		matched := false
		for _, l := range recipeLabels {
			if strings.HasPrefix(lower, l.label+":") {
				flush()
				currentField = l.field
				currentValue = []string{strings.TrimSpace(line[len(l.label)+1:])}
				matched = true
				break
			}
		}
		if !matched && currentField != "" {
			currentValue = append(currentValue, line)
		}
	}
	flush()

	return data
}

// stripLineMarkers trims leading list markers (bullets or step numbers)
// from every line of an accumulated field.
func stripLineMarkers(text, cutset string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeft(strings.TrimSpace(line), cutset)
	}
	return strings.Join(lines, "\n")
}
