package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkadyvolkov/nutrition-helper/internal/domain"
)

func TestRebalancePercentages(t *testing.T) {
	balanced := domain.MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}

	tests := []struct {
		name    string
		current domain.MacroPercentages
		field   MacroField
		value   float64
		want    domain.MacroPercentages
	}{
		{
			name:    "raising protein takes the overflow from carbs",
			current: balanced,
			field:   FieldProtein,
			value:   50,
			want:    domain.MacroPercentages{Protein: 50, Carbs: 20, Fats: 30},
		},
		{
			name:    "raising carbs takes the overflow from protein",
			current: balanced,
			field:   FieldCarbs,
			value:   60,
			want:    domain.MacroPercentages{Protein: 10, Carbs: 60, Fats: 30},
		},
		{
			name:    "raising fats also drains carbs, never itself",
			current: balanced,
			field:   FieldFats,
			value:   50,
			want:    domain.MacroPercentages{Protein: 30, Carbs: 20, Fats: 50},
		},
		{
			name:    "lowering a field leaves the others untouched",
			current: balanced,
			field:   FieldProtein,
			value:   20,
			want:    domain.MacroPercentages{Protein: 20, Carbs: 40, Fats: 30},
		},
		{
			name:    "carbs floors at zero and the sum may stay above 100",
			current: domain.MacroPercentages{Protein: 30, Carbs: 10, Fats: 30},
			field:   FieldProtein,
			value:   90,
			want:    domain.MacroPercentages{Protein: 90, Carbs: 0, Fats: 30},
		},
		{
			name:    "protein floors at zero when carbs is the edited field",
			current: domain.MacroPercentages{Protein: 10, Carbs: 40, Fats: 30},
			field:   FieldCarbs,
			value:   90,
			want:    domain.MacroPercentages{Protein: 0, Carbs: 90, Fats: 30},
		},
		{
			name:    "negative input clamps to zero",
			current: balanced,
			field:   FieldProtein,
			value:   -5,
			want:    domain.MacroPercentages{Protein: 0, Carbs: 40, Fats: 30},
		},
		{
			name:    "input above 100 clamps to 100",
			current: balanced,
			field:   FieldProtein,
			value:   150,
			want:    domain.MacroPercentages{Protein: 100, Carbs: 0, Fats: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RebalancePercentages(tt.current, tt.field, tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Fats is never the compensating field, whatever gets edited.
func TestRebalanceNeverTouchesFats(t *testing.T) {
	for _, field := range []MacroField{FieldProtein, FieldCarbs} {
		for _, value := range []float64{0, 25, 60, 100} {
			got := RebalancePercentages(domain.MacroPercentages{Protein: 30, Carbs: 40, Fats: 30}, field, value)
			assert.Equal(t, float64(30), got.Fats, "field %s value %v", field, value)
		}
	}
}

func TestMacroPresetsSumToHundred(t *testing.T) {
	for _, p := range MacroPresets {
		assert.InDelta(t, 100, p.Values.Sum(), 0.001, "preset %s", p.Name)
	}
}
