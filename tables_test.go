package eatfood

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()
	require.NoError(t, tables.Validate())
	assert.Equal(t, 500.0, tables.Units[UnitJin])
	assert.Equal(t, "大米", tables.Prices[0].Key)
	assert.Equal(t, 20.0, tables.DefaultPricePerKg)
	assert.Len(t, tables.Categories, 4)

	_, ok := tables.Foods.Lookup("菠菜")
	assert.True(t, ok)
}

func TestParseTables_PartialOverride(t *testing.T) {
	data := []byte(`
prices:
  - key: 香油
    per_kg: 60
  - key: 油
    per_kg: 15
default_price_per_kg: 25
`)
	tables, err := ParseTables(data)
	require.NoError(t, err)

	want := PriceTable{{Key: "香油", PerKg: 60}, {Key: "油", PerKg: 15}}
	if diff := cmp.Diff(want, tables.Prices); diff != "" {
		t.Errorf("prices mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 25.0, tables.DefaultPricePerKg)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultUnitTable(), tables.Units)
	assert.Equal(t, DefaultCategories(), tables.Categories)

	pe := NewPriceEstimator(tables.Prices, tables.DefaultPricePerKg)
	assert.InDelta(t, 0.3, pe.Estimate("香油", 5), 1e-9)
}

func TestParseTables_Foods(t *testing.T) {
	tables, err := ParseTables([]byte(`
foods:
  - name: 燕麦
    calories: 367
    protein: 15
    fat: 6.7
    carbs: 61.6
    fiber: 5.3
`))
	require.NoError(t, err)
	require.Len(t, tables.Foods, 1)

	f, ok := tables.Foods.Lookup("燕麦")
	require.True(t, ok)
	assert.Equal(t, 367.0, f.Calories)
	assert.Equal(t, 5.3, f.Fiber)
}

func TestParseTables_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "units: [",
		"zero unit":      "units: {个: 0}",
		"empty key":      "prices: [{key: '', per_kg: 3}]",
		"negative price": "prices: [{key: 米, per_kg: -1}]",
		"empty label":    "categories: [{label: '', markers: [a]}]",
		"duplicate food": "foods: [{name: 米}, {name: 米}]",
	}
	for name, data := range cases {
		_, err := ParseTables([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestTables_DumpLoad(t *testing.T) {
	data, err := DefaultTables().Dump()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadTables(path)
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultTables(), loaded); diff != "" {
		t.Errorf("dumped tables do not load back (-want +got):\n%s", diff)
	}
}

func TestLoadTables_Missing(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
