package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/arkadyvolkov/nutrition-helper/internal/bot/keyboards"
	"github.com/arkadyvolkov/nutrition-helper/internal/bot/state"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/logger"
	"github.com/arkadyvolkov/nutrition-helper/internal/staging"
)

// handlePhoto downloads the largest photo size, runs the analysis
// pipeline and opens the review stage.
func (b *Bot) handlePhoto(ctx context.Context, chatID, tgUserID int64, userID string, message *tgbotapi.Message) error {
	if err := b.send(chatID, "🔍 Analyzing your photo...", keyboards.BackToMenu()); err != nil {
		return err
	}

	// Telegram orders photo sizes ascending; the last is the largest.
	photo := message.Photo[len(message.Photo)-1]
	data, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		logger.Error("failed to download photo", "error", err)
		return b.send(chatID, "Could not download that photo. Please try again.", keyboards.BackToMenu())
	}

	review, err := b.analysis.AnalyzeImage(ctx, data)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	b.saveReview(tgUserID, review)
	b.states.SetUserState(tgUserID, state.ReviewingPhoto)
	return b.sendReview(chatID, review)
}

func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Bot) handleReviewCallback(ctx context.Context, chatID, tgUserID int64, userID, data string) error {
	review, ok := b.loadReview(tgUserID)
	if !ok {
		return b.send(chatID, "This review has expired. Send a new photo to start over.", keyboards.BackToMenu())
	}

	parts := strings.Split(data, ":")
	switch parts[1] {
	case "toggle":
		if len(parts) != 3 {
			return nil
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil
		}
		next, err := review.Toggle(index)
		if err != nil {
			return nil
		}
		b.saveReview(tgUserID, next)
		return b.sendReview(chatID, next)

	case "mult":
		if len(parts) != 4 {
			return nil
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil
		}
		factor, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil
		}
		next, err := review.ApplyMultiplier(index, factor)
		if err != nil {
			return nil
		}
		b.saveReview(tgUserID, next)
		return b.sendReview(chatID, next)

	case "meal":
		if len(parts) != 3 {
			return nil
		}
		next := review.WithMealType(domain.MealType(parts[2]))
		b.saveReview(tgUserID, next)
		return b.sendReview(chatID, next)

	case "log":
		drafts := review.Finalize()
		if len(drafts) == 0 {
			return b.send(chatID, "Nothing is selected. Toggle at least one item or cancel.", keyboards.Review(review))
		}
		dateKey := b.activeDate(tgUserID)
		if _, err := b.diary.AddEntries(ctx, userID, dateKey, drafts); err != nil {
			return b.sendError(ctx, chatID, err)
		}
		b.clearReview(tgUserID)
		b.states.SetUserState(tgUserID, state.None)
		if err := b.send(chatID, fmt.Sprintf("✅ Logged %d items to %s.", len(drafts), review.MealType), keyboards.BackToMenu()); err != nil {
			return err
		}
		return b.showDay(ctx, chatID, tgUserID, userID)

	case "cancel":
		b.clearReview(tgUserID)
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "Review discarded. Nothing was logged.", keyboards.MainMenu())
	}
	return nil
}

// handleReviewEdit parses free-text edits during review, in the form
// "<item number> <field> <value>", e.g. "1 calories 250" or
// "2 name Greek Salad".
func (b *Bot) handleReviewEdit(ctx context.Context, chatID, tgUserID int64, userID, text string) error {
	review, ok := b.loadReview(tgUserID)
	if !ok {
		b.states.SetUserState(tgUserID, state.None)
		return b.send(chatID, "This review has expired. Send a new photo to start over.", keyboards.BackToMenu())
	}

	edit, index, err := parseReviewEdit(text)
	if err != nil {
		return b.send(chatID,
			"To edit an item, type: <number> <field> <value>\nFields: name, portion, calories, protein, carbs, fats\nExample: 1 calories 250",
			keyboards.Review(review))
	}

	next, err := review.ApplyEdit(index, edit)
	if err != nil {
		return b.send(chatID, "There is no item with that number.", keyboards.Review(review))
	}
	b.saveReview(tgUserID, next)
	return b.sendReview(chatID, next)
}

func parseReviewEdit(text string) (staging.Edit, int, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) < 3 {
		return nil, 0, fmt.Errorf("expected <number> <field> <value>")
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, 0, fmt.Errorf("invalid item number %q", fields[0])
	}
	index := number - 1

	rest := strings.Join(fields[2:], " ")
	switch strings.ToLower(fields[1]) {
	case "name":
		return staging.SetFoodName{Value: rest}, index, nil
	case "portion":
		return staging.SetPortionSize{Value: rest}, index, nil
	case "calories":
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, 0, err
		}
		return staging.SetCalories{Value: v}, index, nil
	case "protein":
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, 0, err
		}
		return staging.SetProtein{Value: v}, index, nil
	case "carbs":
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, 0, err
		}
		return staging.SetCarbs{Value: v}, index, nil
	case "fats":
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, 0, err
		}
		return staging.SetFats{Value: v}, index, nil
	}
	return nil, 0, fmt.Errorf("unknown field %q", fields[1])
}

func (b *Bot) sendReview(chatID int64, review staging.Review) error {
	var sb strings.Builder
	sb.WriteString("🍽️ *Here is what I found:*\n")
	for i, item := range review.Items {
		mark := "⬜"
		if item.Included {
			mark = "✅"
		}
		fmt.Fprintf(&sb, "\n%s *%d. %s* (%s)\n", mark, i+1, item.FoodName, item.PortionSize)
		fmt.Fprintf(&sb, "    %.0f kcal | P %.1fg C %.1fg F %.1fg | confidence: %s\n",
			item.Calories, item.ProteinGrams, item.CarbsGrams, item.FatsGrams, item.Confidence)
	}
	fmt.Fprintf(&sb, "\nMeal: *%s*\n", review.MealType)
	sb.WriteString("\nToggle items, rescale portions, or type an edit like \"1 calories 250\".")
	return b.send(chatID, sb.String(), keyboards.Review(review))
}

func (b *Bot) loadReview(tgUserID int64) (staging.Review, bool) {
	raw, ok := b.states.GetTempData(tgUserID, state.KeyReview)
	if !ok {
		return staging.Review{}, false
	}
	var review staging.Review
	if err := json.Unmarshal([]byte(raw), &review); err != nil {
		return staging.Review{}, false
	}
	return review, true
}

func (b *Bot) saveReview(tgUserID int64, review staging.Review) {
	data, _ := json.Marshal(review)
	b.states.SetTempData(tgUserID, state.KeyReview, string(data))
}

// clearReview blanks the stored review without dropping other temp
// data such as the active date.
func (b *Bot) clearReview(tgUserID int64) {
	b.states.SetTempData(tgUserID, state.KeyReview, "")
}
