package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eatfood"
)

const MealLogName = "calorie_result.txt"

// SaveResult tells the caller where a report went, or why it did not.
// A failed save never invalidates the result it was rendering.
type SaveResult struct {
	Path string
	Err  error
}

func (r SaveResult) OK() bool {
	return r.Err == nil
}

func ShoppingFileName(at time.Time) string {
	return "shopping_list_" + at.Format("20060102_1504") + ".txt"
}

func DayReportFileName(at time.Time) string {
	return "diet_report_" + at.Format("20060102") + ".txt"
}

func ShoppingText(res *eatfood.ShoppingResult) string {
	var b strings.Builder
	b.WriteString(rule("=", 50) + "\n")
	b.WriteString("🛒 购物清单\n")
	b.WriteString(rule("=", 50) + "\n\n")
	fmt.Fprintf(&b, "生成时间: %s\n\n", res.CreatedAt.Format("2006-01-02 15:04"))

	b.WriteString("📝 菜谱:\n")
	for _, r := range res.Recipes {
		fmt.Fprintf(&b, "  • %s\n", r.Name)
	}

	b.WriteString("\n📋 需要购买:\n")
	for _, it := range res.Items {
		fmt.Fprintf(&b, "  ✓ %s: %s\n", it.Name, it.Display)
	}

	fmt.Fprintf(&b, "\n💰 预估总花费: %.2f元\n", res.TotalCost)
	b.WriteString(rule("=", 50) + "\n")
	return b.String()
}

func MealText(at time.Time, res *eatfood.MealResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", rule("=", 40))
	fmt.Fprintf(&b, "记录时间: %s\n", at.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "总热量: %.1f千卡\n", res.Total.Calories)
	for _, f := range res.Foods {
		fmt.Fprintf(&b, "%s: %gg = %.1f千卡\n", f.Name, f.Grams, f.Nutrients.Calories)
	}
	return b.String()
}

func DayText(at time.Time, meals []eatfood.Meal, rep *eatfood.DayReport) string {
	var b strings.Builder
	b.WriteString(rule("=", 60) + "\n")
	b.WriteString("📊 饮食分析报告\n")
	b.WriteString(rule("=", 60) + "\n\n")
	fmt.Fprintf(&b, "分析时间: %s\n\n", at.Format("2006-01-02 15:04"))

	b.WriteString("🍽️ 三餐记录:\n")
	for _, m := range meals {
		fmt.Fprintf(&b, "\n%s:\n", m.Name)
		for _, f := range m.Foods {
			fmt.Fprintf(&b, "  • %s: %gg\n", f.Name, f.Grams)
		}
	}

	t := rep.Total
	b.WriteString("\n" + rule("=", 60) + "\n")
	b.WriteString("📈 营养分析:\n")
	b.WriteString(rule("-", 60) + "\n")
	fmt.Fprintf(&b, "总热量: %.0f千卡\n", t.Calories)
	fmt.Fprintf(&b, "蛋白质: %.1fg\n", t.Protein)
	fmt.Fprintf(&b, "脂肪: %.1fg\n", t.Fat)
	fmt.Fprintf(&b, "碳水: %.1fg\n", t.Carbs)
	fmt.Fprintf(&b, "膳食纤维: %.1fg\n", t.Fiber)
	fmt.Fprintf(&b, "钙: %.0fmg\n", t.Calcium)
	fmt.Fprintf(&b, "铁: %.1fmg\n", t.Iron)
	fmt.Fprintf(&b, "维生素C: %.0fmg\n\n", t.VitaminC)
	fmt.Fprintf(&b, "健康评分: %d/100\n", rep.Score)

	b.WriteString("\n💡 建议:\n")
	if len(rep.Recommendations) == 0 {
		b.WriteString("保持均衡饮食，多吃蔬菜水果，适量摄入蛋白质\n")
	}
	for _, r := range rep.Recommendations {
		b.WriteString(r + "\n")
	}
	b.WriteString(rule("=", 60) + "\n")
	return b.String()
}

func writeFile(path, content string) SaveResult {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("create report dir: %w", err)}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("write report: %w", err)}
	}
	return SaveResult{Path: path}
}

// SaveShoppingList writes a new file per run, named after its creation time.
func SaveShoppingList(dir string, res *eatfood.ShoppingResult) SaveResult {
	return writeFile(filepath.Join(dir, ShoppingFileName(res.CreatedAt)), ShoppingText(res))
}

// SaveDayReport overwrites the report of the same day.
func SaveDayReport(dir string, at time.Time, meals []eatfood.Meal, rep *eatfood.DayReport) SaveResult {
	return writeFile(filepath.Join(dir, DayReportFileName(at)), DayText(at, meals, rep))
}

// AppendMealLog adds the meal to the running calorie log.
func AppendMealLog(dir string, at time.Time, res *eatfood.MealResult) SaveResult {
	path := filepath.Join(dir, MealLogName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("create report dir: %w", err)}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("open meal log: %w", err)}
	}
	if _, err := f.WriteString(MealText(at, res)); err != nil {
		f.Close()
		return SaveResult{Path: path, Err: fmt.Errorf("append meal log: %w", err)}
	}
	if err := f.Close(); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("close meal log: %w", err)}
	}
	return SaveResult{Path: path}
}
