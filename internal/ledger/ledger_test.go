package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

func draft(name string, calories, protein, carbs, fats float64) domain.EntryDraft {
	return domain.EntryDraft{
		FoodName:    name,
		Calories:    calories,
		Protein:     protein,
		Carbs:       carbs,
		Fats:        fats,
		ServingSize: "1 serving",
		MealType:    domain.MealLunch,
	}
}

func TestAdd(t *testing.T) {
	log := Add(domain.DailyLog{}, draft("Oatmeal", 150, 5, 27, 3))
	require.Len(t, log.Entries, 1)

	e := log.Entries[0]
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
	assert.Equal(t, "Oatmeal", e.FoodName)
	assert.Equal(t, float64(150), e.Calories)

	// The original value is untouched.
	next := Add(log, draft("Banana", 89, 1.1, 22.8, 0.3))
	assert.Len(t, log.Entries, 1)
	require.Len(t, next.Entries, 2)
	assert.Equal(t, "Banana", next.Entries[1].FoodName)
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	var log domain.DailyLog
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		log = Add(log, draft("Egg", 78, 6, 0.6, 5))
	}
	for _, e := range log.Entries {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestAddAllPreservesOrder(t *testing.T) {
	drafts := []domain.EntryDraft{
		draft("Eggs", 156, 12, 1.2, 10),
		draft("Toast", 80, 3, 15, 1),
		draft("Juice", 110, 0.5, 26, 0),
	}
	log := AddAll(domain.DailyLog{}, drafts)
	require.Len(t, log.Entries, 3)
	assert.Equal(t, "Eggs", log.Entries[0].FoodName)
	assert.Equal(t, "Toast", log.Entries[1].FoodName)
	assert.Equal(t, "Juice", log.Entries[2].FoodName)
}

func TestRemove(t *testing.T) {
	log := AddAll(domain.DailyLog{}, []domain.EntryDraft{
		draft("Eggs", 156, 12, 1.2, 10),
		draft("Toast", 80, 3, 15, 1),
	})
	target := log.Entries[0].ID

	next := Remove(log, target)
	require.Len(t, next.Entries, 1)
	assert.Equal(t, "Toast", next.Entries[0].FoodName)
	assert.Len(t, log.Entries, 2, "source log must be untouched")
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	log := Add(domain.DailyLog{}, draft("Eggs", 156, 12, 1.2, 10))
	next := Remove(log, "no-such-id")
	assert.Equal(t, log, next)
}

func TestSum(t *testing.T) {
	assert.Equal(t, Totals{}, Sum(domain.DailyLog{}), "empty log sums to zero")

	log := AddAll(domain.DailyLog{}, []domain.EntryDraft{
		draft("Eggs", 156, 12, 1.2, 10),
		draft("Toast", 80, 3, 15, 1),
		draft("Juice", 110, 0.5, 26, 0),
	})
	got := Sum(log)
	assert.InDelta(t, 346, got.Calories, 0.001)
	assert.InDelta(t, 15.5, got.Protein, 0.001)
	assert.InDelta(t, 42.2, got.Carbs, 0.001)
	assert.InDelta(t, 11, got.Fats, 0.001)
}

func TestSumIsOrderIndependent(t *testing.T) {
	a := draft("A", 100, 10, 20, 5)
	b := draft("B", 200, 15, 10, 8)
	c := draft("C", 50, 2, 9, 1)

	forward := Sum(AddAll(domain.DailyLog{}, []domain.EntryDraft{a, b, c}))
	reversed := Sum(AddAll(domain.DailyLog{}, []domain.EntryDraft{c, b, a}))
	assert.Equal(t, forward, reversed)
}

func TestForMeal(t *testing.T) {
	breakfast := draft("Eggs", 156, 12, 1.2, 10)
	breakfast.MealType = domain.MealBreakfast
	lunch := draft("Salad", 220, 8, 12, 15)
	snack := draft("Apple", 52, 0.3, 14, 0.2)
	snack.MealType = domain.MealSnacks

	log := AddAll(domain.DailyLog{}, []domain.EntryDraft{breakfast, lunch, snack})

	got := ForMeal(log, domain.MealLunch)
	require.Len(t, got, 1)
	assert.Equal(t, "Salad", got[0].FoodName)

	assert.Empty(t, ForMeal(log, domain.MealDinner))
}

func TestCopyDrafts(t *testing.T) {
	source := AddAll(domain.DailyLog{}, []domain.EntryDraft{
		draft("Eggs", 156, 12, 1.2, 10),
		draft("Toast", 80, 3, 15, 1),
	})

	drafts, err := CopyDrafts(source)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Eggs", drafts[0].FoodName)
	assert.Equal(t, float64(156), drafts[0].Calories)
	assert.Equal(t, domain.MealLunch, drafts[0].MealType)

	// Re-stamping yields fresh identity, same nutrients.
	copied := AddAll(domain.DailyLog{}, drafts)
	assert.NotEqual(t, source.Entries[0].ID, copied.Entries[0].ID)
	assert.Equal(t, Sum(source), Sum(copied))
}

func TestCopyDraftsEmptySource(t *testing.T) {
	drafts, err := CopyDrafts(domain.DailyLog{})
	assert.ErrorIs(t, err, ErrNothingToCopy)
	assert.Nil(t, drafts)
}

func TestStampTimestampIsUTC(t *testing.T) {
	log := Add(domain.DailyLog{}, draft("Eggs", 156, 12, 1.2, 10))
	assert.Equal(t, time.UTC, log.Entries[0].Timestamp.Location())
}
