// Package nutrition holds the goal-calculation arithmetic: BMR, TDEE,
// calorie goal and macro gram splits. All functions are pure and total
// over their numeric domains; callers pre-validate weights, heights and
// ages.
package nutrition

import (
	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

// Calorie goal hard safety bounds, kcal/day.
const (
	MinCalorieGoal = 1200
	MaxCalorieGoal = 4000
)

// Calories per gram of each macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFats    = 9
)

var activityFactors = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLightly:    1.375,
	domain.ActivityModerately: 1.55,
	domain.ActivityVery:       1.725,
	domain.ActivityExtremely:  1.9,
}

var calorieAdjustments = map[domain.Goal]map[domain.WeightGoalRate]float64{
	domain.GoalLose: {
		domain.RateSlow:       -250,
		domain.RateModerate:   -500,
		domain.RateAggressive: -750,
	},
	domain.GoalGain: {
		domain.RateSlow:       250,
		domain.RateModerate:   350,
		domain.RateAggressive: 500,
	},
}

// BMR computes basal metabolic rate (kcal/day) with the Mifflin-St Jeor
// formula. Only the male and female variants exist in the formula.
func BMR(gender domain.Gender, weightKg, heightCm float64, age int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == domain.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the fixed factor for the activity level.
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	return bmr * activityFactors[level]
}

// CalorieGoal applies the signed (goal, rate) offset to TDEE and clamps
// the result to [MinCalorieGoal, MaxCalorieGoal]. Maintain, or an
// absent rate, returns TDEE unchanged.
func CalorieGoal(tdee float64, goal domain.Goal, rate domain.WeightGoalRate) float64 {
	if goal == domain.GoalMaintain || rate == "" {
		return tdee
	}
	adjusted := tdee + calorieAdjustments[goal][rate]
	if adjusted < MinCalorieGoal {
		return MinCalorieGoal
	}
	if adjusted > MaxCalorieGoal {
		return MaxCalorieGoal
	}
	return adjusted
}

// MacroGrams converts a percentage split of totalCalories into gram
// targets at 4 kcal/g for protein and carbs, 9 kcal/g for fats.
// Percentages are not required to sum to 100; normalization policy is
// the caller's.
func MacroGrams(p domain.MacroPercentages, totalCalories float64) domain.MacroGoals {
	return domain.MacroGoals{
		Protein: p.Protein / 100 * totalCalories / kcalPerGramProtein,
		Carbs:   p.Carbs / 100 * totalCalories / kcalPerGramCarbs,
		Fats:    p.Fats / 100 * totalCalories / kcalPerGramFats,
	}
}

// DefaultMealType maps an hour of day onto the meal it most likely
// belongs to: [5,11) breakfast, [11,16) lunch, [16,21) dinner, the rest
// snacks.
func DefaultMealType(hour int) domain.MealType {
	switch {
	case hour >= 5 && hour < 11:
		return domain.MealBreakfast
	case hour >= 11 && hour < 16:
		return domain.MealLunch
	case hour >= 16 && hour < 21:
		return domain.MealDinner
	default:
		return domain.MealSnacks
	}
}
