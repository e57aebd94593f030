// Package report renders tool results for the terminal and writes the
// report files each tool leaves behind.
package report

import (
	"fmt"
	"io"
	"strings"

	"eatfood"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

const nameWidth = 12

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

// pad fills s to width display columns; CJK runes count as two.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func RenderShopping(w io.Writer, res *eatfood.ShoppingResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("🛒 智能购物清单生成器"))
	fmt.Fprintln(w, rule("=", 50))

	for _, r := range res.Recipes {
		fmt.Fprintf(w, "\n📝 菜谱: %s\n", headingStyle.Render(r.Name))
		fmt.Fprintln(w, "  需要食材:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(w, "    • %s\n", ing)
		}
	}

	fmt.Fprintln(w, "\n"+rule("=", 50))
	fmt.Fprintln(w, headingStyle.Render("📋 总计需要购买:"))
	for _, c := range res.Categories {
		fmt.Fprintf(w, "\n%s:\n", headingStyle.Render(c.Label))
		for _, it := range c.Items {
			fmt.Fprintf(w, "  ✓ %s %s ≈ %.2f元\n", pad(it.Name+":", nameWidth), pad(it.Display, 10), it.Cost)
		}
	}

	fmt.Fprintln(w, "\n"+rule("=", 50))
	fmt.Fprintf(w, "💰 预估总花费: %.2f元\n", res.TotalCost)

	fmt.Fprintln(w, "\n📊 分类花费:")
	for _, c := range res.Categories {
		fmt.Fprintf(w, "  %s %.2f元 (%.1f%%)\n", pad(c.Label+":", nameWidth), c.Cost, c.Percent)
	}
}

func RenderMeal(w io.Writer, res *eatfood.MealResult) {
	fmt.Fprintln(w, "\n"+rule("=", 50))
	fmt.Fprintln(w, titleStyle.Render("🍽️  真实热量计算器 - 基于《中国食物成分表》"))
	fmt.Fprintln(w, rule("=", 50))

	for _, f := range res.Foods {
		n := f.Nutrients
		fmt.Fprintf(w, "📝 %s: %gg\n", f.Name, f.Grams)
		fmt.Fprintf(w, "   🔥 %.1f千卡 | 🥚 %.1fg蛋白 | 🥑 %.1fg脂肪 | 🍚 %.1fg碳水\n",
			n.Calories, n.Protein, n.Fat, n.Carbs)
	}
	for _, name := range res.Skipped {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("⚠️  未找到数据: %s (已跳过)", name)))
	}

	fmt.Fprintln(w, rule("-", 50))
	fmt.Fprintln(w, headingStyle.Render("📊 营养总计:"))
	fmt.Fprintf(w, "   总热量: %.1f 千卡\n", res.Total.Calories)
	fmt.Fprintf(w, "   蛋白质: %.1fg\n", res.Total.Protein)
	fmt.Fprintf(w, "   脂肪: %.1fg\n", res.Total.Fat)
	fmt.Fprintf(w, "   碳水化合物: %.1fg\n", res.Total.Carbs)

	if res.Total.Calories > 0 {
		s := res.Split
		fmt.Fprintln(w, "\n📈 热量来源比例:")
		fmt.Fprintf(w, "   蛋白质: %.1f%% (%.1f千卡)\n", s.ProteinPct, s.ProteinKcal)
		fmt.Fprintf(w, "   脂肪: %.1f%% (%.1f千卡)\n", s.FatPct, s.FatKcal)
		fmt.Fprintf(w, "   碳水: %.1f%% (%.1f千卡)\n", s.CarbsPct, s.CarbsKcal)
	}

	if len(res.Advice) > 0 {
		fmt.Fprintln(w, "\n💡 健康建议:")
		for _, a := range res.Advice {
			if a.Level == eatfood.AdviceOK {
				fmt.Fprintln(w, okStyle.Render("   ✅ "+a.Message))
			} else {
				fmt.Fprintln(w, warnStyle.Render("   ⚠️  "+a.Message))
			}
		}
	}
	fmt.Fprintln(w, rule("=", 50))
}

func RenderDay(w io.Writer, rep *eatfood.DayReport) {
	fmt.Fprintln(w, "\n"+rule("=", 60))
	fmt.Fprintln(w, titleStyle.Render("📊 饮食分析报告"))
	fmt.Fprintln(w, rule("=", 60))

	for _, m := range rep.Meals {
		fmt.Fprintf(w, "\n🍽️  %s:\n", headingStyle.Render(m.Name))
		fmt.Fprintln(w, rule("-", 40))
		for _, f := range m.Foods {
			fmt.Fprintf(w, "  %s %gg\n", pad(f.Name+":", nameWidth), f.Grams)
			fmt.Fprintf(w, "    → %.0f千卡\n", f.Nutrients.Calories)
		}
		for _, name := range m.Unknown {
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  ⚠️  %s: 营养数据未知", name)))
		}
		fmt.Fprintln(w, "\n  📈 本餐总计:")
		fmt.Fprintf(w, "    热量: %.0f千卡\n", m.Total.Calories)
		fmt.Fprintf(w, "    蛋白质: %.1fg\n", m.Total.Protein)
		fmt.Fprintf(w, "    脂肪: %.1fg\n", m.Total.Fat)
		fmt.Fprintf(w, "    碳水: %.1fg\n", m.Total.Carbs)
	}

	t, ref := rep.Total, rep.Reference
	fmt.Fprintln(w, "\n"+rule("=", 60))
	fmt.Fprintln(w, headingStyle.Render("📈 全天营养摄入:"))
	fmt.Fprintln(w, rule("-", 60))
	fmt.Fprintf(w, "🔥 总热量: %.0f千卡\n", t.Calories)
	fmt.Fprintf(w, "   📊 达到推荐量的%.1f%%\n", rep.CaloriesPct)
	fmt.Fprintf(w, "🥚 蛋白质: %.1fg\n", t.Protein)
	fmt.Fprintf(w, "   📊 达到推荐量的%.1f%%\n", rep.ProteinPct)
	fmt.Fprintf(w, "🥑 脂肪: %.1fg\n", t.Fat)
	switch rep.FatStatus {
	case eatfood.FatLow:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("   ⚠️  脂肪摄入偏低（建议>%.1fg）", rep.FatMin)))
	case eatfood.FatHigh:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("   ⚠️  脂肪摄入偏高（建议<%.1fg）", rep.FatMax)))
	default:
		fmt.Fprintln(w, okStyle.Render("   ✅ 脂肪摄入合理"))
	}

	if t.Calories > 0 {
		s := rep.Split
		fmt.Fprintln(w, "\n📊 热量来源比例:")
		fmt.Fprintf(w, "   蛋白质: %.1f%% （推荐: 10-15%%）\n", s.ProteinPct)
		fmt.Fprintf(w, "   脂肪: %.1f%% （推荐: 20-30%%）\n", s.FatPct)
		fmt.Fprintf(w, "   碳水: %.1f%% （推荐: 50-65%%）\n", s.CarbsPct)
	}

	fmt.Fprintln(w, "\n💊 其他营养素:")
	fmt.Fprintf(w, "   膳食纤维: %.1fg （推荐: %gg）\n", t.Fiber, ref.Fiber)
	fmt.Fprintf(w, "   钙: %.0fmg （推荐: %gmg）\n", t.Calcium, ref.Calcium)
	fmt.Fprintf(w, "   铁: %.1fmg （推荐: %gmg）\n", t.Iron, ref.Iron)
	fmt.Fprintf(w, "   维生素C: %.0fmg （推荐: %gmg）\n", t.VitaminC, ref.VitaminC)

	fmt.Fprintf(w, "\n⭐ 健康评分: %s\n", headingStyle.Render(fmt.Sprintf("%d/100", rep.Score)))

	fmt.Fprintln(w, "\n💡 饮食建议:")
	if len(rep.Recommendations) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("   保持均衡饮食"))
	}
	for _, r := range rep.Recommendations {
		fmt.Fprintf(w, "   • %s\n", r)
	}
}
