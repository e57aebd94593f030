package eatfood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceEstimator_Estimate(t *testing.T) {
	pe := NewPriceEstimator(DefaultPriceTable(), DefaultPricePerKg)

	tests := []struct {
		name  string
		grams float64
		want  float64
	}{
		{"油", 15, 0.225},
		{"香油", 5, 0.075},
		{"大米", 200, 1.6},
		{"牛肉", 500, 40},
		{"蒜", 3, 0.06},
		{"水", 400, 8},
		{"鸡蛋", 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, pe.Estimate(tt.name, tt.grams), 1e-9, tt.name)
	}
}

func TestPriceEstimator_FirstMatchWins(t *testing.T) {
	pe := NewPriceEstimator(DefaultPriceTable(), DefaultPricePerKg)

	// both 鸡蛋 and 油 occur; 鸡蛋 is declared first
	perKg, ok := pe.PerKg("鸡蛋油饼")
	assert.True(t, ok)
	assert.Equal(t, 12.0, perKg)

	reordered := NewPriceEstimator(PriceTable{
		{Key: "油", PerKg: 15},
		{Key: "鸡蛋", PerKg: 12},
	}, DefaultPricePerKg)
	perKg, _ = reordered.PerKg("鸡蛋油饼")
	assert.Equal(t, 15.0, perKg)
}

func TestPriceEstimator_Default(t *testing.T) {
	pe := NewPriceEstimator(nil, 33)
	perKg, ok := pe.PerKg("任何东西")
	assert.False(t, ok)
	assert.Equal(t, 33.0, perKg)
	assert.InDelta(t, 3.3, pe.Estimate("任何东西", 100), 1e-9)
}
