package domain

import (
	"time"
)

// Gender selects the BMR formula variant. Only the two Mifflin-St Jeor
// variants are modeled.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLightly    ActivityLevel = "lightly"
	ActivityModerately ActivityLevel = "moderately"
	ActivityVery       ActivityLevel = "very"
	ActivityExtremely  ActivityLevel = "extremely"
)

// Goal is the user's weight objective.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// WeightGoalRate controls how aggressive the calorie adjustment is.
// Empty when the goal is maintain.
type WeightGoalRate string

const (
	RateSlow       WeightGoalRate = "slow"
	RateModerate   WeightGoalRate = "moderate"
	RateAggressive WeightGoalRate = "aggressive"
)

// MealType partitions a day's entries.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnacks    MealType = "Snacks"
)

// MealTypes lists all meal types in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// Confidence is the classifier's self-assessed estimation quality.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MacroGoals holds macronutrient targets in grams.
type MacroGoals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// MacroPercentages is a macro split expressed as percentages of total
// calories. The three values are not required to sum to exactly 100.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

// Sum returns the three-way percentage total. Callers treat sums above
// 100 as a display warning, not an error.
func (p MacroPercentages) Sum() float64 {
	return p.Protein + p.Carbs + p.Fats
}

// WeightLogEntry is one point in the user's weight history.
type WeightLogEntry struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// UserProfile is the user's static attributes and computed goals.
// Created once at onboarding completion, mutated via settings.
// CalorieGoal is always within [1200, 4000] kcal.
type UserProfile struct {
	Age           int              `json:"age"`
	Gender        Gender           `json:"gender"`
	Height        float64          `json:"height"`        // cm
	CurrentWeight float64          `json:"currentWeight"` // kg
	TargetWeight  float64          `json:"targetWeight"`  // kg
	ActivityLevel ActivityLevel    `json:"activityLevel"`
	Goal          Goal             `json:"goal"`
	Rate          WeightGoalRate   `json:"rate,omitempty"`
	CalorieGoal   float64          `json:"calorieGoal"`
	MacroGoals    MacroGoals       `json:"macroGoals"`
	WeightLog     []WeightLogEntry `json:"weightLog"`
}

// FoodEntry is one logged food. Immutable once created except by
// deletion; owned by the DailyLog for its date.
type FoodEntry struct {
	ID          string    `json:"id"`
	FoodName    string    `json:"foodName"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	ServingSize string    `json:"servingSize"`
	MealType    MealType  `json:"mealType"`
	Timestamp   time.Time `json:"timestamp"`
}

// EntryDraft is a FoodEntry before the ledger stamps an id and
// timestamp onto it.
type EntryDraft struct {
	FoodName    string   `json:"foodName"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fats        float64  `json:"fats"`
	ServingSize string   `json:"servingSize"`
	MealType    MealType `json:"mealType"`
}

// DailyLog holds the ordered entries for one calendar date. An absent
// stored log is equivalent to an empty one.
type DailyLog struct {
	Entries []FoodEntry `json:"entries"`
}

// AIFoodItem is a candidate entry from the food classifier. Transient:
// it lives only in the review stage until accepted or discarded.
type AIFoodItem struct {
	FoodName     string     `json:"foodName"`
	PortionSize  string     `json:"portionSize"`
	Calories     float64    `json:"calories"`
	ProteinGrams float64    `json:"proteinGrams"`
	CarbsGrams   float64    `json:"carbsGrams"`
	FatsGrams    float64    `json:"fatsGrams"`
	Confidence   Confidence `json:"confidence"`
}

// FoodItem is one row of the local food reference table, per 100 g.
type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
