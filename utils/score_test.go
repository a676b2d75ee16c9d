package utils

import "testing"

func TestCalculateMealScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		assessment string
		want       int
	}{
		{
			name:       "empty input scores zero",
			assessment: "",
			want:       0,
		},
		{
			name:       "short input with no keywords scores zero",
			assessment: "ok I guess",
			want:       0,
		},
		{
			name:       "non-trivial input with no keywords defaults to one",
			assessment: "This meal consists of rice and beans in roughly equal parts.",
			want:       1,
		},
		{
			name:       "positive keyword",
			assessment: "This is a healthy option for most people.",
			want:       5,
		},
		{
			name:       "keyword match is case-insensitive",
			assessment: "A Well-Balanced plate overall.",
			want:       5,
		},
		{
			name:       "deltas are additive across groups",
			assessment: "Looks healthy overall but it is high sugar, so watch out.",
			want:       1, // +5 - 4
		},
		{
			name:       "a group fires only once",
			assessment: "Notably low sugar and low fat per serving.",
			want:       2,
		},
		{
			name:       "strong negative stack",
			assessment: "High sodium and low fiber; be cautious with this one.",
			want:       -7, // -4 - 1 - 2
		},
		{
			name:       "fiber and protein positives",
			assessment: "High fiber and a good source of protein.",
			want:       3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateMealScore(tt.assessment); got != tt.want {
				t.Fatalf("CalculateMealScore(%q) = %d, want %d", tt.assessment, got, tt.want)
			}
		})
	}
}
