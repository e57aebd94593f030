package eatfood

import "strings"

const DefaultPricePerKg = 20

type PriceRule struct {
	Key   string  `yaml:"key"`
	PerKg float64 `yaml:"per_kg"`
}

// PriceTable is scanned in declaration order, so more specific keys must
// come before the shorter keys they contain.
type PriceTable []PriceRule

func DefaultPriceTable() PriceTable {
	return PriceTable{
		{Key: "大米", PerKg: 8},
		{Key: "鸡蛋", PerKg: 12},
		{Key: "番茄", PerKg: 6},
		{Key: "黄瓜", PerKg: 5},
		{Key: "鸡肉", PerKg: 20},
		{Key: "猪肉", PerKg: 30},
		{Key: "牛肉", PerKg: 80},
		{Key: "油", PerKg: 15}, // per litre, sold by volume
		{Key: "盐", PerKg: 5},
		{Key: "糖", PerKg: 10},
	}
}

type PriceEstimator struct {
	table        PriceTable
	defaultPerKg float64
}

func NewPriceEstimator(table PriceTable, defaultPerKg float64) *PriceEstimator {
	return &PriceEstimator{
		table:        table,
		defaultPerKg: defaultPerKg,
	}
}

// PerKg returns the price of the first rule whose key occurs in name.
func (pe *PriceEstimator) PerKg(name string) (float64, bool) {
	for _, rule := range pe.table {
		if strings.Contains(name, rule.Key) {
			return rule.PerKg, true
		}
	}
	return pe.defaultPerKg, false // fallback: market average
}

// Estimate prices grams of name. The result is not rounded.
func (pe *PriceEstimator) Estimate(name string, grams float64) float64 {
	perKg, _ := pe.PerKg(name)
	return grams / 1000 * perKg
}
