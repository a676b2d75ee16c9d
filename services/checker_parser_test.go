package services

import "testing"

func TestParseCheckerResponse(t *testing.T) {
	t.Parallel()

	text := `## Meal Name
Grilled Cheese Sandwich

## Estimated Nutrition
Calories: 450 kcal
Protein: 18 g
Fat: 24 g

## Healthiness Assessment
A fairly heavy meal with high fat content. Be cautious with portions.
`

	got := ParseCheckerResponse(text)
	if got.MealName != "Grilled Cheese Sandwich" {
		t.Fatalf("meal name = %q", got.MealName)
	}
	wantNutrition := "Calories: 450 kcal\nProtein: 18 g\nFat: 24 g"
	if got.Nutrition != wantNutrition {
		t.Fatalf("nutrition = %q, want %q", got.Nutrition, wantNutrition)
	}
	wantAssessment := "A fairly heavy meal with high fat content. Be cautious with portions."
	if got.Assessment != wantAssessment {
		t.Fatalf("assessment = %q, want %q", got.Assessment, wantAssessment)
	}
}

func TestParseCheckerResponseMissingAssessment(t *testing.T) {
	t.Parallel()

	text := `## Meal Name
Fruit Salad

## Estimated Nutrition
Calories: 120 kcal
Sugar: 22 g
`

	got := ParseCheckerResponse(text)
	if got.MealName != "Fruit Salad" {
		t.Fatalf("meal name = %q", got.MealName)
	}
	wantNutrition := "Calories: 120 kcal\nSugar: 22 g"
	if got.Nutrition != wantNutrition {
		t.Fatalf("nutrition = %q, want %q", got.Nutrition, wantNutrition)
	}
	if got.Assessment != PlaceholderAssessment {
		t.Fatalf("assessment = %q, want placeholder", got.Assessment)
	}
}

func TestParseCheckerResponseUnstructured(t *testing.T) {
	t.Parallel()

	got := ParseCheckerResponse("I can't tell what this is, sorry.")
	if got.MealName != PlaceholderMealName {
		t.Fatalf("meal name = %q, want placeholder", got.MealName)
	}
	if got.Nutrition != PlaceholderNutrition {
		t.Fatalf("nutrition = %q, want placeholder", got.Nutrition)
	}
	if got.Assessment != PlaceholderAssessment {
		t.Fatalf("assessment = %q, want placeholder", got.Assessment)
	}
}

func TestParseCheckerResponseHeadingCase(t *testing.T) {
	t.Parallel()

	got := ParseCheckerResponse("## meal name\npasta\n\n## healthiness assessment\nLooks healthy.")
	if got.MealName != "pasta" {
		t.Fatalf("meal name = %q", got.MealName)
	}
	if got.Assessment != "Looks healthy." {
		t.Fatalf("assessment = %q", got.Assessment)
	}
	if got.Nutrition != PlaceholderNutrition {
		t.Fatalf("nutrition = %q, want placeholder", got.Nutrition)
	}
}
