package eatfood

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientParser_Parse(t *testing.T) {
	p := NewIngredientParser(DefaultUnitTable())

	tests := []struct {
		name  string
		in    string
		want  string
		grams float64
	}{
		{"count unit", "鸡蛋 3个", "鸡蛋", 3},
		{"grams", "大米 200克", "大米", 200},
		{"oil in grams", "油 15克", "油", 15},
		{"kilograms decimal", "大米 1.5千克", "大米", 1500},
		{"jin", "猪肉 2斤", "猪肉", 1000},
		{"liang", "牛肉 3两", "牛肉", 150},
		{"tablespoon", "酱油 2汤匙", "酱油", 30},
		{"teaspoon", "盐 1茶匙", "盐", 5},
		{"litre", "牛奶 1.2升", "牛奶", 1200},
		{"no separator", "鸡蛋3个", "鸡蛋", 3},
		{"extra whitespace", "  番茄    2   个  ", "番茄", 2},
		{"leading dot decimal", "糖 .5克", "糖", 0.5},
		{"rounds to two decimals", "糖 0.333克", "糖", 0.33},
		{"no quantity", "鸡蛋", "鸡蛋", 1},
		{"unit without quantity", "番茄 个", "番茄", 1},
		{"unknown unit is grams", "黄瓜 2根", "黄瓜", 2},
		{"latin letters", "egg 3 pcs", "egg", 3},
		{"full-width digits and space", "鸡蛋　３个", "鸡蛋", 3},
		{"name stops at punctuation", "五花肉(斤装) 600克", "五花肉", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.in)
			assert.Equal(t, tt.want, got.Name)
			assert.InDelta(t, tt.grams, got.Grams, 1e-9)
		})
	}
}

func TestIngredientParser_Unparseable(t *testing.T) {
	p := NewIngredientParser(DefaultUnitTable())

	inputs := []string{
		"3个鸡蛋", "  (特价)猪肉 ", "123", "",
		// full-width and circled forms are kept as typed
		"３个鸡蛋", "（特价）猪肉", " ①号鸡蛋　",
	}
	for _, in := range inputs {
		got := p.Parse(in)
		assert.Equal(t, NormalizedIngredient{Name: strings.TrimSpace(in), Grams: 1}, got, "input %q", in)
	}
}

func TestIngredientParser_UnicodeDigitsAndSpaces(t *testing.T) {
	p := NewIngredientParser(DefaultUnitTable())

	tests := []struct {
		name  string
		in    string
		want  string
		grams float64
	}{
		{"arabic-indic digit", "鸡蛋 ٣个", "鸡蛋", 3},
		{"extended arabic-indic decimal", "大米 ۱۲.۵克", "大米", 12.5},
		{"devanagari digits", "大米 २००克", "大米", 200},
		{"vertical tab", "鸡蛋\v3个", "鸡蛋", 3},
		{"no-break space", "鸡蛋\u00a03\u00a0个", "鸡蛋", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.in)
			assert.Equal(t, tt.want, got.Name)
			assert.InDelta(t, tt.grams, got.Grams, 1e-9)
		})
	}
}

func TestIngredientParser_QuantityOverflow(t *testing.T) {
	p := NewIngredientParser(DefaultUnitTable())

	got := p.Parse("米 " + strings.Repeat("9", 400) + "克")
	assert.Equal(t, "米", got.Name)
	assert.True(t, math.IsInf(got.Grams, 1), "grams = %v", got.Grams)
}

func TestIngredientParser_KnownUnitsScale(t *testing.T) {
	units := DefaultUnitTable()
	p := NewIngredientParser(units)

	for unit, factor := range units {
		for _, qty := range []string{"1", "2", "0.5", "3.25", "12"} {
			got := p.Parse("面粉 " + qty + unit)
			q := mustFloat(t, qty)
			assert.InDelta(t, Round2(q*factor), got.Grams, 1e-9, "%s%s", qty, unit)
		}
	}
}

func TestIngredientParser_NoNumberMeansOneGram(t *testing.T) {
	p := NewIngredientParser(DefaultUnitTable())
	for _, in := range []string{"鸡蛋", "鸡蛋 个", "葱 少许", "salt"} {
		assert.Equal(t, 1.0, p.Parse(in).Grams, in)
	}
}

func TestIngredientParser_CustomUnits(t *testing.T) {
	p := NewIngredientParser(UnitTable{"根": 150})
	assert.Equal(t, 300.0, p.Parse("黄瓜 2根").Grams)
	// the count unit is not in this table, so the bare quantity is kept
	assert.Equal(t, 4.0, p.Parse("鸡蛋 4").Grams)
}
