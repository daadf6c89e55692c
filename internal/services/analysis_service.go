package services

import (
	"context"
	"errors"
	"time"

	"github.com/arkadyvolkov/nutrition-helper/internal/ai"
	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
	"github.com/arkadyvolkov/nutrition-helper/internal/imaging"
	"github.com/arkadyvolkov/nutrition-helper/internal/logger"
	"github.com/arkadyvolkov/nutrition-helper/internal/nutrition"
	"github.com/arkadyvolkov/nutrition-helper/internal/staging"
)

// AnalysisService runs the photo-to-review pipeline: compress the
// image, call the classifier, stage the candidates for user review.
// It never touches the ledger; finalized drafts go through the diary.
type AnalysisService struct {
	classifier domain.Classifier
}

func NewAnalysisService(classifier domain.Classifier) *AnalysisService {
	return &AnalysisService{classifier: classifier}
}

// AnalyzeImage compresses the raw photo bytes and returns a review of
// the classifier's candidates, with the batch meal type defaulted from
// the current local hour. An empty classifier result surfaces as a
// distinct empty-result condition, not a transport failure.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, imageData []byte) (staging.Review, error) {
	compressed, err := imaging.CompressJPEG(imageData, imaging.MaxDimension)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return staging.Review{}, err
		}
		return staging.Review{}, apperrors.NewValidation("Could not read that image. Please try another photo.")
	}

	items, err := s.classifier.AnalyzeFoodImage(ctx, imaging.EncodeBase64(compressed))
	if err != nil {
		if errors.Is(err, ai.ErrNoFoodIdentified) {
			return staging.Review{}, apperrors.Wrap(err, apperrors.KindEmptyResult,
				"No food items could be identified. Please try a clearer photo or log manually.")
		}
		return staging.Review{}, apperrors.NewTransport(err,
			"Failed to analyze image. Please check your connection or try again.")
	}

	logger.Info("food image analyzed", "items", len(items))
	return staging.New(items, nutrition.DefaultMealType(time.Now().Hour())), nil
}
