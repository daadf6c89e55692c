package services

import (
	"context"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/ledger"
	"github.com/arkadyvolkov/nutrition-helper/internal/utils"
)

// DiaryService orchestrates per-date ledger operations: every mutation
// builds a new log value and writes it through to the gateway in one
// atomic replace. A failed write leaves the stored log unchanged.
type DiaryService struct {
	gateway domain.Gateway
}

func NewDiaryService(gateway domain.Gateway) *DiaryService {
	return &DiaryService{gateway: gateway}
}

// Log fetches the log for a date, empty when nothing was stored.
func (s *DiaryService) Log(ctx context.Context, userID, dateKey string) (domain.DailyLog, error) {
	if !utils.ValidDateKey(dateKey) {
		return domain.DailyLog{}, apperrors.NewValidation("Invalid date.")
	}
	log, err := s.gateway.GetDailyLog(ctx, userID, dateKey)
	if err != nil {
		return domain.DailyLog{}, apperrors.NewTransport(err, "Could not load your food log. Please try again.")
	}
	return log, nil
}

// AddEntry stamps and appends one draft, then persists the new log.
func (s *DiaryService) AddEntry(ctx context.Context, userID, dateKey string, draft domain.EntryDraft) (domain.DailyLog, error) {
	if err := validateDraft(draft); err != nil {
		return domain.DailyLog{}, err
	}
	log, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return domain.DailyLog{}, err
	}
	next := ledger.Add(log, draft)
	if err := s.put(ctx, userID, dateKey, next); err != nil {
		return domain.DailyLog{}, err
	}
	return next, nil
}

// AddEntries appends a batch of drafts in order, then persists.
func (s *DiaryService) AddEntries(ctx context.Context, userID, dateKey string, drafts []domain.EntryDraft) (domain.DailyLog, error) {
	for _, d := range drafts {
		if err := validateDraft(d); err != nil {
			return domain.DailyLog{}, err
		}
	}
	log, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return domain.DailyLog{}, err
	}
	next := ledger.AddAll(log, drafts)
	if err := s.put(ctx, userID, dateKey, next); err != nil {
		return domain.DailyLog{}, err
	}
	return next, nil
}

// RemoveEntry drops an entry by id and persists. A missing id is a
// no-op that is still written through.
func (s *DiaryService) RemoveEntry(ctx context.Context, userID, dateKey, entryID string) (domain.DailyLog, error) {
	log, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return domain.DailyLog{}, err
	}
	next := ledger.Remove(log, entryID)
	if err := s.put(ctx, userID, dateKey, next); err != nil {
		return domain.DailyLog{}, err
	}
	return next, nil
}

// CopyPreviousDay re-logs yesterday's entries onto the given date with
// fresh ids and timestamps. Returns ledger.ErrNothingToCopy when the
// previous day is empty.
func (s *DiaryService) CopyPreviousDay(ctx context.Context, userID, dateKey string) (domain.DailyLog, int, error) {
	prevKey, err := utils.PreviousDayKey(dateKey)
	if err != nil {
		return domain.DailyLog{}, 0, apperrors.NewValidation("Invalid date.")
	}

	source, err := s.Log(ctx, userID, prevKey)
	if err != nil {
		return domain.DailyLog{}, 0, err
	}

	drafts, err := ledger.CopyDrafts(source)
	if err != nil {
		return domain.DailyLog{}, 0, err
	}

	target, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return domain.DailyLog{}, 0, err
	}
	next := ledger.AddAll(target, drafts)
	if err := s.put(ctx, userID, dateKey, next); err != nil {
		return domain.DailyLog{}, 0, err
	}
	return next, len(drafts), nil
}

// MealEntries lists a date's entries for one meal, in logged order.
func (s *DiaryService) MealEntries(ctx context.Context, userID, dateKey string, mealType domain.MealType) ([]domain.FoodEntry, error) {
	log, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}
	return ledger.ForMeal(log, mealType), nil
}

// Totals sums a date's nutrients.
func (s *DiaryService) Totals(ctx context.Context, userID, dateKey string) (ledger.Totals, error) {
	log, err := s.Log(ctx, userID, dateKey)
	if err != nil {
		return ledger.Totals{}, err
	}
	return ledger.Sum(log), nil
}

func (s *DiaryService) put(ctx context.Context, userID, dateKey string, log domain.DailyLog) error {
	if err := s.gateway.PutDailyLog(ctx, userID, dateKey, log); err != nil {
		return apperrors.NewTransport(err, "Could not save your food log. Please try again.")
	}
	return nil
}

func validateDraft(d domain.EntryDraft) error {
	if d.FoodName == "" {
		return apperrors.NewValidation("Food name is required.")
	}
	if d.Calories < 0 || d.Protein < 0 || d.Carbs < 0 || d.Fats < 0 {
		return apperrors.NewValidation("Nutrient values must not be negative.")
	}
	switch d.MealType {
	case domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnacks:
		return nil
	default:
		return apperrors.NewValidation("Unknown meal type.")
	}
}
