package eatfood

import (
	"fmt"
	"strings"
)

const (
	UnitCount    = "个"
	UnitGram     = "克"
	UnitKilogram = "千克"
	UnitJin      = "斤"
	UnitLiang    = "两"
	UnitMl       = "毫升"
	UnitLiter    = "升"
	UnitTbsp     = "汤匙"
	UnitTsp      = "茶匙"
)

// UnitTable maps a unit name to how many grams one of it weighs.
// Volumes are taken at 1 g/ml.
type UnitTable map[string]float64

func DefaultUnitTable() UnitTable {
	return UnitTable{
		UnitCount:    1,
		UnitGram:     1,
		UnitKilogram: 1000,
		UnitJin:      500,
		UnitLiang:    50,
		UnitMl:       1,
		UnitLiter:    1000,
		UnitTbsp:     15,
		UnitTsp:      5,
	}
}

// ToGrams converts qty of unit into grams.
func (ut UnitTable) ToGrams(qty float64, unit string) float64 {
	if factor, ok := ut[unit]; ok {
		return qty * factor
	}
	return qty // assume already grams
}

func (ut UnitTable) Has(unit string) bool {
	_, ok := ut[unit]
	return ok
}

// UnitFormatter renders grams back into the unit a shopper would use.
type UnitFormatter struct{}

func NewUnitFormatter() *UnitFormatter {
	return &UnitFormatter{}
}

// Format picks the first rule that applies: kilograms from 1000 g, jin for
// items sold by the jin from 500 g, liang for items sold by the liang from
// 50 g, plain grams otherwise.
func (f *UnitFormatter) Format(grams float64, name string) string {
	switch {
	case grams >= 1000:
		return fmt.Sprintf("%.2f%s", grams/1000, UnitKilogram)
	case grams >= 500 && strings.Contains(name, UnitJin):
		return fmt.Sprintf("%.2f%s", grams/500, UnitJin)
	case grams >= 50 && strings.Contains(name, UnitLiang):
		return fmt.Sprintf("%.2f%s", grams/50, UnitLiang)
	default:
		return fmt.Sprintf("%.0f%s", grams, UnitGram)
	}
}
