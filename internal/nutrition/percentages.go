package nutrition

import (
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// MacroField names one editable percentage field.
type MacroField string

const (
	FieldProtein MacroField = "protein"
	FieldCarbs   MacroField = "carbs"
	FieldFats    MacroField = "fats"
)

// MacroPreset is a named percentage split.
type MacroPreset struct {
	Name   string
	Values domain.MacroPercentages
}

// MacroPresets are the selectable splits offered alongside free-form
// percentage editing.
var MacroPresets = []MacroPreset{
	{Name: "Balanced", Values: domain.MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}},
	{Name: "High Protein", Values: domain.MacroPercentages{Protein: 40, Carbs: 30, Fats: 30}},
	{Name: "Low Carb", Values: domain.MacroPercentages{Protein: 30, Carbs: 15, Fats: 55}},
	{Name: "Keto", Values: domain.MacroPercentages{Protein: 25, Carbs: 5, Fats: 70}},
	{Name: "High Carb", Values: domain.MacroPercentages{Protein: 20, Carbs: 60, Fats: 20}},
}

// RebalancePercentages sets one percentage field and compensates when
// the three-way sum exceeds 100: the overflow is taken from carbs
// (floored at 0), or from protein when carbs itself was edited. Fats is
// never auto-adjusted. The result may still sum above 100 when the
// compensated field is already at its floor; callers treat that as a
// display warning.
func RebalancePercentages(current domain.MacroPercentages, field MacroField, value float64) domain.MacroPercentages {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	next := current
	switch field {
	case FieldProtein:
		next.Protein = value
	case FieldCarbs:
		next.Carbs = value
	case FieldFats:
		next.Fats = value
	}

	excess := next.Sum() - 100
	if excess <= 0 {
		return next
	}

	if field != FieldCarbs {
		next.Carbs -= excess
		if next.Carbs < 0 {
			next.Carbs = 0
		}
	} else {
		next.Protein -= excess
		if next.Protein < 0 {
			next.Protein = 0
		}
	}
	return next
}
