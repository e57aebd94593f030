package main

import (
	"fmt"
	"io"
	"time"

	"eatfood"
	"eatfood/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	caloriesFile        string
	caloriesInteractive bool
)

var caloriesCmd = &cobra.Command{
	Use:   "calories [name=grams...]",
	Short: "Calculate calories and macronutrients of a meal",
	Long: `Looks every food up in the food composition table and sums its
nutrients. Unknown foods are listed and skipped.

The meal comes from --file (YAML with "name" and "foods"), from name=grams
arguments, or from the built-in sample lunch. With --interactive each food
entered is calculated and logged on its own until "q".`,
	Example: `  eatfood calories
  eatfood calories 米饭=200 鸡胸肉=150
  eatfood calories --file lunch.yaml
  eatfood calories --interactive`,
	RunE: runCalories,
}

func runCalories(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	calc := eatfood.NewCalorieCalculator(tables.Foods)

	if caloriesInteractive {
		p := newPrompter(cmd.InOrStdin(), out)
		known := tables.Foods.Names()
		fmt.Fprintln(out, "\n🎮 开始自定义计算（输入'q'退出）")
		for {
			portion, ok := p.askPortion(calc, known)
			if !ok {
				break
			}
			meal := eatfood.Meal{Name: portion.Name, Foods: []eatfood.Portion{portion}}
			calculateMeal(cmd, out, calc, meal)
		}
		fmt.Fprintln(out, "\n👋 再见！")
		return nil
	}

	meal, err := mealFromInput(args)
	if err != nil {
		return err
	}
	calculateMeal(cmd, out, calc, meal)
	return nil
}

func mealFromInput(args []string) (eatfood.Meal, error) {
	switch {
	case caloriesFile != "":
		var m eatfood.Meal
		if err := readYAML(caloriesFile, &m); err != nil {
			return eatfood.Meal{}, err
		}
		if m.Name == "" {
			m.Name = "自定义"
		}
		return m, nil
	case len(args) > 0:
		m := eatfood.Meal{Name: "自定义"}
		for _, arg := range args {
			p, err := parsePortionArg(arg)
			if err != nil {
				return eatfood.Meal{}, err
			}
			m.Foods = append(m.Foods, p)
		}
		return m, nil
	default:
		return eatfood.Meal{Name: "午餐", Foods: eatfood.SampleLunch()}, nil
	}
}

func calculateMeal(cmd *cobra.Command, out io.Writer, calc *eatfood.CalorieCalculator, meal eatfood.Meal) {
	at := time.Now()
	res := calc.CalculateMeal(meal.Foods)
	if len(res.Skipped) > 0 {
		logger.Debug("unknown foods skipped", zap.Strings("foods", res.Skipped))
	}
	report.RenderMeal(out, &res)

	if cfg.Reports.Text {
		printSave(out, "计算结果", report.AppendMealLog(cfg.DataDir, at, &res))
	}
	if s := openHistory(cmd.Context()); s != nil {
		defer s.Close()
		id, err := s.SaveMeal(cmd.Context(), meal.Name, at, &res)
		if err != nil {
			logger.Warn("failed to record meal", zap.String("meal", meal.Name), zap.Error(err))
			return
		}
		logger.Debug("meal recorded", zap.String("id", id))
	}
}

func init() {
	caloriesCmd.Flags().StringVarP(&caloriesFile, "file", "f", "", "YAML file with one meal")
	caloriesCmd.Flags().BoolVarP(&caloriesInteractive, "interactive", "i", false, "Enter foods interactively")
}
