package utils

import "testing"

func TestExtractNutrientEstimates(t *testing.T) {
	t.Parallel()

	t.Run("labelled nutrition block", func(t *testing.T) {
		t.Parallel()
		text := "Calories: 450 kcal\n" +
			"Protein: ~30 g\n" +
			"Fat: 12g\n" +
			"Carbohydrates: 55 g\n" +
			"Sugar: 9.5 g\n" +
			"Sodium: 600 mg\n" +
			"Fiber: 6 g"

		got := ExtractNutrientEstimates(text)
		want := map[string]float64{
			"calories": 450,
			"protein":  30,
			"fat":      12,
			"carbs":    55,
			"sugar":    9.5,
			"sodium":   600,
			"fiber":    6,
		}
		for key, val := range want {
			if got[key] != val {
				t.Fatalf("%s = %v, want %v (full map: %v)", key, got[key], val, got)
			}
		}
	})

	t.Run("compact recommendation format", func(t *testing.T) {
		t.Parallel()
		got := ExtractNutrientEstimates("~450 kcal, P: 30g, F: 20g, C: 40g, Fib: 8g")
		want := map[string]float64{
			"calories": 450,
			"protein":  30,
			"fat":      20,
			"carbs":    40,
			"fiber":    8,
		}
		for key, val := range want {
			if got[key] != val {
				t.Fatalf("%s = %v, want %v (full map: %v)", key, got[key], val, got)
			}
		}
		if _, ok := got["sugar"]; ok {
			t.Fatalf("sugar should be absent, got map %v", got)
		}
	})

	t.Run("no nutrition facts yields an empty map", func(t *testing.T) {
		t.Parallel()
		if got := ExtractNutrientEstimates("Just a simple sandwich, nothing to report."); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()
		got := ExtractNutrientEstimates("Sodium: 600 mg. Note some sauces push sodium to 900 mg.")
		if got["sodium"] != 600 {
			t.Fatalf("sodium = %v, want 600", got["sodium"])
		}
	})
}
