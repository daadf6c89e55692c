// Package ledger implements the per-date food entry ledger as value
// operations: every mutation returns a new DailyLog and the caller
// replaces its stored copy. Persistence is owned by the layer above.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// ErrNothingToCopy signals that the source day had no entries. It is an
// informational condition, not a failure.
var ErrNothingToCopy = errors.New("no entries to copy from previous day")

// Totals are the summed nutrient fields of a day's entries.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// Add stamps a fresh id and creation timestamp onto the draft and
// appends it, preserving insertion order.
func Add(log domain.DailyLog, draft domain.EntryDraft) domain.DailyLog {
	entry := stamp(draft)
	entries := make([]domain.FoodEntry, 0, len(log.Entries)+1)
	entries = append(entries, log.Entries...)
	entries = append(entries, entry)
	return domain.DailyLog{Entries: entries}
}

// AddAll appends all drafts in their given order, each with an
// independently generated id and timestamp.
func AddAll(log domain.DailyLog, drafts []domain.EntryDraft) domain.DailyLog {
	entries := make([]domain.FoodEntry, 0, len(log.Entries)+len(drafts))
	entries = append(entries, log.Entries...)
	for _, d := range drafts {
		entries = append(entries, stamp(d))
	}
	return domain.DailyLog{Entries: entries}
}

// Remove drops the first entry with the given id. A missing id is a
// no-op.
func Remove(log domain.DailyLog, entryID string) domain.DailyLog {
	for i, e := range log.Entries {
		if e.ID == entryID {
			entries := make([]domain.FoodEntry, 0, len(log.Entries)-1)
			entries = append(entries, log.Entries[:i]...)
			entries = append(entries, log.Entries[i+1:]...)
			return domain.DailyLog{Entries: entries}
		}
	}
	return log
}

// Sum folds the nutrient fields over all entries. An empty log yields
// all-zero totals; the fold is order-independent.
func Sum(log domain.DailyLog) Totals {
	var t Totals
	for _, e := range log.Entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
	}
	return t
}

// ForMeal filters entries by meal type, preserving original order.
func ForMeal(log domain.DailyLog, mealType domain.MealType) []domain.FoodEntry {
	var entries []domain.FoodEntry
	for _, e := range log.Entries {
		if e.MealType == mealType {
			entries = append(entries, e)
		}
	}
	return entries
}

// CopyDrafts projects every entry of the source log into a draft
// without id or timestamp, so AddAll can re-stamp them onto another
// day. An empty source returns ErrNothingToCopy and no drafts.
func CopyDrafts(source domain.DailyLog) ([]domain.EntryDraft, error) {
	if len(source.Entries) == 0 {
		return nil, ErrNothingToCopy
	}
	drafts := make([]domain.EntryDraft, 0, len(source.Entries))
	for _, e := range source.Entries {
		drafts = append(drafts, domain.EntryDraft{
			FoodName:    e.FoodName,
			Calories:    e.Calories,
			Protein:     e.Protein,
			Carbs:       e.Carbs,
			Fats:        e.Fats,
			ServingSize: e.ServingSize,
			MealType:    e.MealType,
		})
	}
	return drafts, nil
}

func stamp(draft domain.EntryDraft) domain.FoodEntry {
	return domain.FoodEntry{
		ID:          uuid.NewString(),
		FoodName:    draft.FoodName,
		Calories:    draft.Calories,
		Protein:     draft.Protein,
		Carbs:       draft.Carbs,
		Fats:        draft.Fats,
		ServingSize: draft.ServingSize,
		MealType:    draft.MealType,
		Timestamp:   time.Now().UTC(),
	}
}
