package eatfood

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// name, optional quantity, optional unit. Digits and spaces are taken in
// the Unicode sense.
var ingredientPattern = regexp.MustCompile(
	`^(\p{L}+)[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]*(\p{Nd}*\.?\p{Nd}+)?[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]*(\p{L}+)?`)

type NormalizedIngredient struct {
	Name  string
	Grams float64
}

type IngredientParser struct {
	units UnitTable
}

func NewIngredientParser(units UnitTable) *IngredientParser {
	return &IngredientParser{units: units}
}

// Parse turns a line such as "鸡蛋 3个" into a name and a weight in grams.
// It never fails: a line without a leading name comes back trimmed but
// otherwise untouched, with 1 g.
func (p *IngredientParser) Parse(line string) NormalizedIngredient {
	raw := strings.TrimSpace(line)
	line = strings.TrimSpace(norm.NFKC.String(raw))

	m := ingredientPattern.FindStringSubmatch(line)
	if m == nil {
		return NormalizedIngredient{Name: raw, Grams: 1}
	}

	qty := 1.0
	if m[2] != "" {
		// out of range keeps the ±Inf or 0 ParseFloat returns
		v, err := strconv.ParseFloat(asciiDigits(m[2]), 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			qty = v
		}
	}
	unit := m[3]
	if unit == "" {
		unit = UnitCount
	}

	return NormalizedIngredient{
		Name:  m[1],
		Grams: Round2(p.units.ToGrams(qty, unit)),
	}
}

// asciiDigits rewrites decimal digits of any script as 0-9. Unicode lays
// every digit set out as runs of ten starting at zero.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 || !unicode.IsDigit(r) {
			return r
		}
		n := 0
		for unicode.IsDigit(r - rune(n) - 1) {
			n++
		}
		return '0' + rune(n%10)
	}, s)
}
