package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/ledger"
)

const testDate = "2025-03-09"

func lunchDraft(name string, calories float64) domain.EntryDraft {
	return domain.EntryDraft{
		FoodName:    name,
		Calories:    calories,
		Protein:     10,
		Carbs:       20,
		Fats:        5,
		ServingSize: "1 serving",
		MealType:    domain.MealLunch,
	}
}

func TestDiaryLogAbsentDateIsEmpty(t *testing.T) {
	svc := NewDiaryService(newFakeGateway())
	log, err := svc.Log(context.Background(), "u1", testDate)
	require.NoError(t, err)
	assert.Empty(t, log.Entries)
}

func TestDiaryLogRejectsBadDate(t *testing.T) {
	svc := NewDiaryService(newFakeGateway())
	_, err := svc.Log(context.Background(), "u1", "yesterday")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestAddEntryWritesThrough(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	log, err := svc.AddEntry(context.Background(), "u1", testDate, lunchDraft("Salad", 220))
	require.NoError(t, err)
	require.Len(t, log.Entries, 1)
	assert.NotEmpty(t, log.Entries[0].ID)

	stored := gateway.logs[logKey("u1", testDate)]
	assert.Equal(t, log, stored, "returned log matches the stored document")
}

func TestAddEntryValidation(t *testing.T) {
	svc := NewDiaryService(newFakeGateway())

	tests := []struct {
		name   string
		mutate func(*domain.EntryDraft)
	}{
		{"empty name", func(d *domain.EntryDraft) { d.FoodName = "" }},
		{"negative calories", func(d *domain.EntryDraft) { d.Calories = -1 }},
		{"negative protein", func(d *domain.EntryDraft) { d.Protein = -1 }},
		{"bad meal type", func(d *domain.EntryDraft) { d.MealType = "Brunch" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := lunchDraft("Salad", 220)
			tt.mutate(&draft)
			_, err := svc.AddEntry(context.Background(), "u1", testDate, draft)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		})
	}
}

func TestAddEntriesRejectsWholeBatchOnOneBadDraft(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	bad := lunchDraft("", 100)
	_, err := svc.AddEntries(context.Background(), "u1", testDate, []domain.EntryDraft{
		lunchDraft("Salad", 220),
		bad,
	})
	require.Error(t, err)
	assert.Empty(t, gateway.logs, "nothing was written")
}

func TestRemoveEntry(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	log, err := svc.AddEntries(context.Background(), "u1", testDate, []domain.EntryDraft{
		lunchDraft("Salad", 220),
		lunchDraft("Soup", 150),
	})
	require.NoError(t, err)

	next, err := svc.RemoveEntry(context.Background(), "u1", testDate, log.Entries[0].ID)
	require.NoError(t, err)
	require.Len(t, next.Entries, 1)
	assert.Equal(t, "Soup", next.Entries[0].FoodName)
}

func TestCopyPreviousDay(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	_, err := svc.AddEntries(context.Background(), "u1", "2025-03-08", []domain.EntryDraft{
		lunchDraft("Salad", 220),
		lunchDraft("Soup", 150),
	})
	require.NoError(t, err)

	log, count, err := svc.CopyPreviousDay(context.Background(), "u1", testDate)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, log.Entries, 2)

	source := gateway.logs[logKey("u1", "2025-03-08")]
	assert.NotEqual(t, source.Entries[0].ID, log.Entries[0].ID, "copies get fresh ids")
	assert.Equal(t, ledger.Sum(source), ledger.Sum(log))
	assert.Len(t, source.Entries, 2, "source day is untouched")
}

func TestCopyPreviousDayEmptySource(t *testing.T) {
	svc := NewDiaryService(newFakeGateway())
	_, _, err := svc.CopyPreviousDay(context.Background(), "u1", testDate)
	assert.ErrorIs(t, err, ledger.ErrNothingToCopy)
}

func TestCopyPreviousDayAppendsToExistingEntries(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	_, err := svc.AddEntry(context.Background(), "u1", "2025-03-08", lunchDraft("Salad", 220))
	require.NoError(t, err)
	_, err = svc.AddEntry(context.Background(), "u1", testDate, lunchDraft("Oatmeal", 150))
	require.NoError(t, err)

	log, count, err := svc.CopyPreviousDay(context.Background(), "u1", testDate)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, "Oatmeal", log.Entries[0].FoodName)
	assert.Equal(t, "Salad", log.Entries[1].FoodName)
}

func TestMealEntries(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	breakfast := lunchDraft("Oatmeal", 150)
	breakfast.MealType = domain.MealBreakfast
	_, err := svc.AddEntries(context.Background(), "u1", testDate, []domain.EntryDraft{
		breakfast,
		lunchDraft("Salad", 220),
	})
	require.NoError(t, err)

	entries, err := svc.MealEntries(context.Background(), "u1", testDate, domain.MealLunch)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Salad", entries[0].FoodName)

	entries, err = svc.MealEntries(context.Background(), "u1", testDate, domain.MealDinner)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTotals(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	_, err := svc.AddEntries(context.Background(), "u1", testDate, []domain.EntryDraft{
		lunchDraft("Salad", 220),
		lunchDraft("Soup", 150),
	})
	require.NoError(t, err)

	totals, err := svc.Totals(context.Background(), "u1", testDate)
	require.NoError(t, err)
	assert.InDelta(t, 370, totals.Calories, 0.001)
	assert.InDelta(t, 20, totals.Protein, 0.001)
}

func TestDiaryTransportFailureLeavesStateUnchanged(t *testing.T) {
	gateway := newFakeGateway()
	svc := NewDiaryService(gateway)

	_, err := svc.AddEntry(context.Background(), "u1", testDate, lunchDraft("Salad", 220))
	require.NoError(t, err)

	gateway.failNext = errors.New("connection reset")
	_, err = svc.AddEntry(context.Background(), "u1", testDate, lunchDraft("Soup", 150))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindTransport, apperrors.KindOf(err))

	log, err := svc.Log(context.Background(), "u1", testDate)
	require.NoError(t, err)
	assert.Len(t, log.Entries, 1, "failed write left the prior log intact")
}
