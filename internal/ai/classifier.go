// Package ai is the client for the external food classifier. It sends
// a pre-compressed photo to Gemini and decodes the structured candidate
// list the model returns.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// ErrNoFoodIdentified means the classifier answered successfully but
// found no food in the image. Distinct from a transport failure.
var ErrNoFoodIdentified = errors.New("no food items identified in image")

const modelName = "gemini-1.5-flash"

const systemInstruction = `You are an expert nutrition analysis API. Your job is to identify all food items in an image and return a structured JSON response. Do not include any introductory text, markdown formatting, or explanations. Only output the raw JSON array.`

const analysisPrompt = `Analyze the food items in this image. For each distinct item, provide a detailed nutritional breakdown. The response must be a JSON array of objects, each with these exact fields:
[
  {
    "foodName": "identified name of the food item",
    "portionSize": "estimated portion, e.g. '2 large eggs', '1 cup', '150g'",
    "calories": 123.4,
    "proteinGrams": 12.3,
    "carbsGrams": 12.3,
    "fatsGrams": 12.3,
    "confidence": "high|medium|low"
  }
]
Return an empty array if the image contains no food.`

// Classifier wraps the Gemini client.
type Classifier struct {
	client *genai.Client
}

// NewClassifier creates a classifier using the given API key.
func NewClassifier(ctx context.Context, apiKey string) (*Classifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Classifier{client: client}, nil
}

// Close releases the underlying client.
func (c *Classifier) Close() error {
	return c.client.Close()
}

// AnalyzeFoodImage sends base64-encoded JPEG bytes (no data-URI prefix)
// to the model and returns the candidate items. Zero identified items
// is ErrNoFoodIdentified; any API failure is returned verbatim as the
// failure reason.
func (c *Classifier) AnalyzeFoodImage(ctx context.Context, base64Image string) ([]domain.AIFoodItem, error) {
	imageData, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}

	model := c.client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	img := genai.ImageData("image/jpeg", imageData)
	resp, err := model.GenerateContent(ctx, img, genai.Text(analysisPrompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response part type %T", resp.Candidates[0].Content.Parts[0])
	}

	items, err := parseItems(string(text))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoFoodIdentified
	}
	return items, nil
}

// parseItems decodes the model output, tolerating code fences or text
// wrapped around the JSON array.
func parseItems(s string) ([]domain.AIFoodItem, error) {
	jsonStr := extractJSONArray(s)
	if jsonStr == "" {
		return nil, fmt.Errorf("no valid JSON array found in response")
	}
	var items []domain.AIFoodItem
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	for i := range items {
		items[i].Confidence = normalizeConfidence(items[i].Confidence)
	}
	return items, nil
}

// extractJSONArray finds the outermost JSON array in the given string.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "]")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func normalizeConfidence(c domain.Confidence) domain.Confidence {
	switch domain.Confidence(strings.ToLower(string(c))) {
	case domain.ConfidenceHigh:
		return domain.ConfidenceHigh
	case domain.ConfidenceLow:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceMedium
	}
}
