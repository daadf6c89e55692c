package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

func sampleItems() []domain.AIFoodItem {
	return []domain.AIFoodItem{
		{
			FoodName:     "Scrambled Eggs",
			PortionSize:  "2 large eggs",
			Calories:     182,
			ProteinGrams: 12.1,
			CarbsGrams:   1.4,
			FatsGrams:    13.4,
			Confidence:   domain.ConfidenceHigh,
		},
		{
			FoodName:     "Toast",
			PortionSize:  "1 slice",
			Calories:     80,
			ProteinGrams: 3,
			CarbsGrams:   15,
			FatsGrams:    1,
			Confidence:   domain.ConfidenceMedium,
		},
	}
}

func TestNewIncludesEverything(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)
	require.Len(t, review.Items, 2)
	for _, item := range review.Items {
		assert.True(t, item.Included)
	}
	assert.Equal(t, domain.MealBreakfast, review.MealType)
	assert.Equal(t, 2, review.IncludedCount())
}

func TestApplyEdit(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)

	tests := []struct {
		name  string
		edit  Edit
		check func(t *testing.T, item Item)
	}{
		{
			name: "set food name",
			edit: SetFoodName{Value: "Omelette"},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, "Omelette", item.FoodName)
			},
		},
		{
			name: "set portion size",
			edit: SetPortionSize{Value: "3 large eggs"},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, "3 large eggs", item.PortionSize)
			},
		},
		{
			name: "set calories",
			edit: SetCalories{Value: 250},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, float64(250), item.Calories)
			},
		},
		{
			name: "negative nutrient floors at zero",
			edit: SetProtein{Value: -10},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, float64(0), item.ProteinGrams)
			},
		},
		{
			name: "set carbs",
			edit: SetCarbs{Value: 2.5},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, 2.5, item.CarbsGrams)
			},
		},
		{
			name: "set fats",
			edit: SetFats{Value: 9},
			check: func(t *testing.T, item Item) {
				assert.Equal(t, float64(9), item.FatsGrams)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := review.ApplyEdit(0, tt.edit)
			require.NoError(t, err)
			tt.check(t, next.Items[0])
			// Other items and the source review are untouched.
			assert.Equal(t, "Toast", next.Items[1].FoodName)
			assert.Equal(t, "Scrambled Eggs", review.Items[0].FoodName)
		})
	}
}

func TestApplyEditOutOfRange(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)
	_, err := review.ApplyEdit(2, SetCalories{Value: 100})
	assert.Error(t, err)
	_, err = review.ApplyEdit(-1, SetCalories{Value: 100})
	assert.Error(t, err)
}

func TestApplyMultiplier(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)

	next, err := review.ApplyMultiplier(0, 1.5)
	require.NoError(t, err)

	item := next.Items[0]
	assert.Equal(t, float64(273), item.Calories)    // round(182 * 1.5)
	assert.Equal(t, float64(18), item.ProteinGrams) // round(18.15)
	assert.Equal(t, float64(2), item.CarbsGrams)    // round(2.1)
	assert.Equal(t, float64(20), item.FatsGrams)    // round(20.1)
	assert.Equal(t, "2 large eggs", item.PortionSize, "free text is untouched")

	// Halving applies to all preset multipliers the same way.
	next, err = review.ApplyMultiplier(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, float64(40), next.Items[1].Calories)
	assert.Equal(t, float64(2), next.Items[1].ProteinGrams) // round(1.5) rounds half up
}

func TestToggle(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)

	next, err := review.Toggle(1)
	require.NoError(t, err)
	assert.False(t, next.Items[1].Included)
	assert.Equal(t, 1, next.IncludedCount())

	again, err := next.Toggle(1)
	require.NoError(t, err)
	assert.True(t, again.Items[1].Included)
	assert.Equal(t, 2, again.IncludedCount())
}

func TestWithMealType(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)
	next := review.WithMealType(domain.MealDinner)
	assert.Equal(t, domain.MealDinner, next.MealType)
	assert.Equal(t, domain.MealBreakfast, review.MealType)
}

func TestFinalize(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)
	review = review.WithMealType(domain.MealLunch)

	excluded, err := review.Toggle(1)
	require.NoError(t, err)

	drafts := excluded.Finalize()
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.EntryDraft{
		FoodName:    "Scrambled Eggs",
		Calories:    182,
		Protein:     12.1,
		Carbs:       1.4,
		Fats:        13.4,
		ServingSize: "2 large eggs",
		MealType:    domain.MealLunch,
	}, drafts[0])
}

func TestFinalizeAllExcluded(t *testing.T) {
	review := New(sampleItems(), domain.MealBreakfast)
	for i := range review.Items {
		var err error
		review, err = review.Toggle(i)
		require.NoError(t, err)
	}
	assert.Empty(t, review.Finalize())
}
