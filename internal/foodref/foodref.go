// Package foodref is the local food reference table used by manual
// search logging. Nutrients are expressed per 100 g and scaled by the
// chosen portion before an entry is drafted.
package foodref

import (
	"fmt"
	"strings"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// MinQueryLength is the shortest query Search will match.
const MinQueryLength = 2

// All returns the full reference table.
func All() []domain.FoodItem {
	return foods
}

// Search returns foods whose name contains the query,
// case-insensitively. Queries shorter than MinQueryLength match
// nothing.
func Search(query string) []domain.FoodItem {
	if len(query) < MinQueryLength {
		return nil
	}
	q := strings.ToLower(query)
	var matches []domain.FoodItem
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}
	return matches
}

// ByID looks a food up by its table id.
func ByID(id string) (domain.FoodItem, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FoodItem{}, false
}

// Scale drafts an entry for the given portion, scaling all four
// nutrient fields by portionGrams/100.
func Scale(food domain.FoodItem, portionGrams float64, mealType domain.MealType) domain.EntryDraft {
	factor := portionGrams / 100
	return domain.EntryDraft{
		FoodName:    food.Name,
		Calories:    food.Calories * factor,
		Protein:     food.Protein * factor,
		Carbs:       food.Carbs * factor,
		Fats:        food.Fats * factor,
		ServingSize: fmt.Sprintf("%.0fg", portionGrams),
		MealType:    mealType,
	}
}
