// Package staging adapts raw classifier output into ledger-ready entry
// drafts. It never writes to the ledger itself: the caller takes the
// finalized drafts to the diary.
package staging

import (
	"fmt"
	"math"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// PortionMultipliers are the preset rescale factors offered during
// review.
var PortionMultipliers = []float64{0.5, 0.75, 1.25, 1.5}

// Item is one classifier candidate plus its inclusion flag.
type Item struct {
	domain.AIFoodItem
	Included bool `json:"included"`
}

// Review is the editable staging area for one classified photo. All
// accepted items are logged under a single batch meal type.
type Review struct {
	Items    []Item          `json:"items"`
	MealType domain.MealType `json:"mealType"`
}

// New builds a review with every item included and the batch meal type
// defaulted by the caller (usually from the current hour).
func New(items []domain.AIFoodItem, mealType domain.MealType) Review {
	staged := make([]Item, 0, len(items))
	for _, it := range items {
		staged = append(staged, Item{AIFoodItem: it, Included: true})
	}
	return Review{Items: staged, MealType: mealType}
}

// Edit is one field-level change to a staged item. Each editable field
// has its own variant carrying a value of the right type.
type Edit interface {
	isEdit()
}

type SetFoodName struct{ Value string }
type SetPortionSize struct{ Value string }
type SetCalories struct{ Value float64 }
type SetProtein struct{ Value float64 }
type SetCarbs struct{ Value float64 }
type SetFats struct{ Value float64 }

func (SetFoodName) isEdit()    {}
func (SetPortionSize) isEdit() {}
func (SetCalories) isEdit()    {}
func (SetProtein) isEdit()     {}
func (SetCarbs) isEdit()       {}
func (SetFats) isEdit()        {}

// ApplyEdit returns a review with the edit applied to the item at
// index. Negative nutrient values are floored at zero.
func (r Review) ApplyEdit(index int, edit Edit) (Review, error) {
	if index < 0 || index >= len(r.Items) {
		return r, fmt.Errorf("item index %d out of range", index)
	}
	next := r.clone()
	item := &next.Items[index]
	switch e := edit.(type) {
	case SetFoodName:
		item.FoodName = e.Value
	case SetPortionSize:
		item.PortionSize = e.Value
	case SetCalories:
		item.Calories = nonNegative(e.Value)
	case SetProtein:
		item.ProteinGrams = nonNegative(e.Value)
	case SetCarbs:
		item.CarbsGrams = nonNegative(e.Value)
	case SetFats:
		item.FatsGrams = nonNegative(e.Value)
	default:
		return r, fmt.Errorf("unknown edit %T", edit)
	}
	return next, nil
}

// ApplyMultiplier rescales all four numeric fields of one item by a
// common factor in a single step, rounding each to the nearest whole
// number. Free-text fields are untouched.
func (r Review) ApplyMultiplier(index int, factor float64) (Review, error) {
	if index < 0 || index >= len(r.Items) {
		return r, fmt.Errorf("item index %d out of range", index)
	}
	next := r.clone()
	item := &next.Items[index]
	item.Calories = math.Round(item.Calories * factor)
	item.ProteinGrams = math.Round(item.ProteinGrams * factor)
	item.CarbsGrams = math.Round(item.CarbsGrams * factor)
	item.FatsGrams = math.Round(item.FatsGrams * factor)
	return next, nil
}

// Toggle flips the inclusion flag of one item.
func (r Review) Toggle(index int) (Review, error) {
	if index < 0 || index >= len(r.Items) {
		return r, fmt.Errorf("item index %d out of range", index)
	}
	next := r.clone()
	next.Items[index].Included = !next.Items[index].Included
	return next, nil
}

// WithMealType sets the batch meal type applied to all logged items.
func (r Review) WithMealType(mealType domain.MealType) Review {
	next := r.clone()
	next.MealType = mealType
	return next
}

// IncludedCount reports how many items are currently flagged for
// logging.
func (r Review) IncludedCount() int {
	n := 0
	for _, it := range r.Items {
		if it.Included {
			n++
		}
	}
	return n
}

// Finalize maps the included items into entry drafts: portion size
// becomes serving size, the gram fields become the entry nutrients and
// the batch meal type is applied to every draft.
func (r Review) Finalize() []domain.EntryDraft {
	var drafts []domain.EntryDraft
	for _, it := range r.Items {
		if !it.Included {
			continue
		}
		drafts = append(drafts, domain.EntryDraft{
			FoodName:    it.FoodName,
			Calories:    it.Calories,
			Protein:     it.ProteinGrams,
			Carbs:       it.CarbsGrams,
			Fats:        it.FatsGrams,
			ServingSize: it.PortionSize,
			MealType:    r.MealType,
		})
	}
	return drafts
}

func (r Review) clone() Review {
	items := make([]Item, len(r.Items))
	copy(items, r.Items)
	return Review{Items: items, MealType: r.MealType}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
