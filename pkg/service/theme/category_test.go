package theme_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/service/theme"
)

func TestInferCategory(t *testing.T) {
	testCases := []struct {
		label    string
		expected types.Category
	}{
		{"badminton with friends", types.CategoryFitness},
		{"Morning Run", types.CategoryFitness},
		{"deep sleep tracking", types.CategorySleep},
		{"lunch at the new ramen place", types.CategoryNutrition},
		{"annual checkup", types.CategoryHealth},
		{"dinner party with family", types.CategoryNutrition},
		{"family visit", types.CategorySocial},
		{"sprint planning meeting", types.CategoryWork},
		{"flight to Osaka", types.CategoryTravel},
		{"Spanish course lesson 4", types.CategoryLearning},
		{"weekly review and journal", types.CategoryProductivity},
		{"feeling grateful today", types.CategoryEmotion},
		{"guitar practice", types.CategoryHobby},
		{"completely unrelated thing", types.CategoryGeneral},
		{"", types.CategoryGeneral},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			gt.Value(t, theme.InferCategory(tc.label)).Equal(tc.expected)
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		gt.Value(t, theme.InferCategory("BADMINTON")).Equal(types.CategoryFitness)
		gt.Value(t, theme.InferCategory("Badminton")).Equal(theme.InferCategory("badminton"))
	})

	t.Run("stable across calls", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			gt.Value(t, theme.InferCategory("gym session")).Equal(types.CategoryFitness)
		}
	})
}
