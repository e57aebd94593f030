package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"eatfood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var at = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func sampleShopping() *eatfood.ShoppingResult {
	res := eatfood.NewGenerator(eatfood.DefaultTables()).Generate(eatfood.SampleRecipes())
	res.CreatedAt = at
	return &res
}

func TestRenderShopping(t *testing.T) {
	var buf bytes.Buffer
	RenderShopping(&buf, sampleShopping())
	out := buf.String()

	assert.Contains(t, out, "番茄炒蛋")
	assert.Contains(t, out, "    • 鸡蛋 3个")
	assert.Contains(t, out, "200克")
	assert.Contains(t, out, "≈ 1.60元")
	assert.Contains(t, out, "💰 预估总花费: 10.27元")
	assert.Contains(t, out, "其他")
	// vegetables come before the catch-all
	assert.Less(t, strings.Index(out, "蔬菜类"), strings.Index(out, "其他"))
}

func TestRenderMeal(t *testing.T) {
	res := eatfood.NewCalorieCalculator(eatfood.DefaultFoodTable()).CalculateMeal(append(eatfood.SampleLunch(), eatfood.Portion{Name: "火锅", Grams: 100}))
	var buf bytes.Buffer
	RenderMeal(&buf, &res)
	out := buf.String()

	assert.Contains(t, out, "📝 米饭: 200g")
	assert.Contains(t, out, "总热量: 555.4 千卡")
	assert.Contains(t, out, "未找到数据: 火锅")
	assert.Contains(t, out, "蛋白质摄入比例合理")
}

func TestRenderDay(t *testing.T) {
	rep := eatfood.NewDietAnalyzer(eatfood.DefaultFoodTable(), eatfood.DefaultDailyReference()).AnalyzeDay(eatfood.SampleDay())
	var buf bytes.Buffer
	RenderDay(&buf, &rep)
	out := buf.String()

	assert.Contains(t, out, "早餐")
	assert.Contains(t, out, "🔥 总热量: ")
	assert.Contains(t, out, "达到推荐量的60.0%")
	assert.Contains(t, out, "脂肪摄入偏低（建议>50.0g）")
	assert.Contains(t, out, "70/100")
}

func TestRenderDay_FoodCaloriesRoundedOnce(t *testing.T) {
	rep := eatfood.NewDietAnalyzer(eatfood.DefaultFoodTable(), eatfood.DefaultDailyReference()).
		AnalyzeDay([]eatfood.Meal{{Name: "午餐", Foods: []eatfood.Portion{{Name: "米饭", Grams: 21.97}}}})
	var buf bytes.Buffer
	RenderDay(&buf, &rep)

	// 25.4852 kcal
	assert.Contains(t, buf.String(), "→ 25千卡")
	assert.NotContains(t, buf.String(), "→ 26千卡")
}

func TestSaveShoppingList(t *testing.T) {
	dir := t.TempDir()
	res := sampleShopping()

	saved := SaveShoppingList(dir, res)
	require.True(t, saved.OK(), "%v", saved.Err)
	assert.Equal(t, filepath.Join(dir, "shopping_list_20240501_1230.txt"), saved.Path)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "生成时间: 2024-05-01 12:30")
	assert.Contains(t, string(data), "  • 凉拌黄瓜")
	assert.Contains(t, string(data), "  ✓ 大米: 200克")
	assert.Contains(t, string(data), "💰 预估总花费: 10.27元")
}

func TestSave_FailureIsReported(t *testing.T) {
	// a regular file where the report directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	dir := filepath.Join(blocker, "reports")

	saved := SaveShoppingList(dir, sampleShopping())
	assert.False(t, saved.OK())
	assert.Error(t, saved.Err)

	meal := eatfood.MealResult{}
	assert.False(t, AppendMealLog(dir, at, &meal).OK())
}

func TestAppendMealLog(t *testing.T) {
	dir := t.TempDir()
	res := eatfood.NewCalorieCalculator(eatfood.DefaultFoodTable()).CalculateMeal(eatfood.SampleLunch())

	for i := 0; i < 2; i++ {
		saved := AppendMealLog(dir, at, &res)
		require.True(t, saved.OK(), "%v", saved.Err)
	}

	data, err := os.ReadFile(filepath.Join(dir, MealLogName))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "记录时间: 2024-05-01 12:30"))
	assert.Contains(t, string(data), "米饭: 200g = 232.0千卡")
}

func TestSaveDayReport(t *testing.T) {
	dir := t.TempDir()
	meals := eatfood.SampleDay()
	rep := eatfood.NewDietAnalyzer(eatfood.DefaultFoodTable(), eatfood.DefaultDailyReference()).AnalyzeDay(meals)

	saved := SaveDayReport(dir, at, meals, &rep)
	require.True(t, saved.OK(), "%v", saved.Err)
	assert.Equal(t, "diet_report_20240501.txt", filepath.Base(saved.Path))

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  • 牛奶: 250g")
	assert.Contains(t, string(data), "健康评分: 70/100")
	assert.Contains(t, string(data), "钙: 260mg")
}

func TestExportShoppingXLSX(t *testing.T) {
	dir := t.TempDir()
	res := sampleShopping()

	saved := ExportShoppingXLSX(dir, res)
	require.True(t, saved.OK(), "%v", saved.Err)
	assert.Equal(t, "shopping_list_20240501_1230.xlsx", filepath.Base(saved.Path))

	f, err := excelize.OpenFile(saved.Path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(shoppingSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(res.Items)+2)
	assert.Equal(t, "食材", rows[0][0])
	assert.Equal(t, res.Items[0].Name, rows[1][0])
	assert.Equal(t, res.Items[0].Display, rows[1][1])
	assert.Equal(t, "合计", rows[len(rows)-1][0])
	assert.Equal(t, "10.27", rows[len(rows)-1][4])
}
