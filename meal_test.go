package eatfood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalorieCalculator_SampleLunch(t *testing.T) {
	c := NewCalorieCalculator(DefaultFoodTable())
	res := c.CalculateMeal(SampleLunch())

	require.Len(t, res.Foods, 5)
	assert.Empty(t, res.Skipped)
	assert.InDelta(t, 555.4, res.Total.Calories, 1e-6)
	assert.InDelta(t, 36.0, res.Total.Protein, 1e-6)
	assert.InDelta(t, 18.49, res.Total.Fat, 1e-6)
	assert.InDelta(t, 61.85, res.Total.Carbs, 1e-6)

	assert.Equal(t, "米饭", res.Foods[0].Name)
	assert.Equal(t, 232.0, res.Foods[0].Nutrients.Calories)
	assert.Equal(t, 199.5, res.Foods[1].Nutrients.Calories)

	assert.InDelta(t, 144, res.Split.ProteinKcal, 1e-6)
	assert.InDelta(t, 144/555.4*100, res.Split.ProteinPct, 1e-6)
	require.Len(t, res.Advice, 1)
	assert.Equal(t, AdviceOK, res.Advice[0].Level)
}

func TestCalorieCalculator_UnknownFoodsAreSkipped(t *testing.T) {
	c := NewCalorieCalculator(DefaultFoodTable())
	res := c.CalculateMeal([]Portion{
		{Name: "火锅", Grams: 300},
		{Name: " 米饭 ", Grams: 100},
	})

	assert.Equal(t, []string{"火锅"}, res.Skipped)
	require.Len(t, res.Foods, 1)
	assert.Equal(t, "米饭", res.Foods[0].Name)
	assert.InDelta(t, 116, res.Total.Calories, 1e-9)
}

func TestCalorieCalculator_Advice(t *testing.T) {
	c := NewCalorieCalculator(DefaultFoodTable())

	res := c.CalculateMeal([]Portion{{Name: "鸡胸肉", Grams: 100}})
	require.Len(t, res.Advice, 2)
	assert.Equal(t, AdviceHigh, res.Advice[0].Level) // protein about 58%
	assert.Equal(t, AdviceHigh, res.Advice[1].Level) // fat about 34%

	res = c.CalculateMeal([]Portion{{Name: "白糖", Grams: 20}})
	require.Len(t, res.Advice, 1)
	assert.Equal(t, AdviceLow, res.Advice[0].Level)
}

func TestCalorieCalculator_NoCalories(t *testing.T) {
	c := NewCalorieCalculator(DefaultFoodTable())
	res := c.CalculateMeal([]Portion{{Name: "盐", Grams: 5}})

	assert.Len(t, res.Foods, 1)
	assert.Zero(t, res.Total.Calories)
	assert.Equal(t, EnergySplit{}, res.Split)
	assert.Empty(t, res.Advice)
}
