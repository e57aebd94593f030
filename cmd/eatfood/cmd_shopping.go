package main

import (
	"fmt"
	"io"
	"strings"

	"eatfood"
	"eatfood/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	shoppingFile        string
	shoppingInteractive bool
	shoppingXLSX        bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Generate a shopping list from recipes",
	Long: `Merges the ingredients of every recipe, converts amounts to grams,
groups them by category and estimates the cost.

Recipes come from --file (YAML with a "recipes" list), from --interactive
prompts, or from the built-in sample recipes.`,
	Example: `  eatfood shopping
  eatfood shopping --file week.yaml --xlsx
  eatfood shopping --interactive`,
	RunE: runShopping,
}

func runShopping(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var recipes []eatfood.Recipe
	switch {
	case shoppingFile != "":
		var f recipeFile
		if err := readYAML(shoppingFile, &f); err != nil {
			return err
		}
		recipes = f.Recipes
	case shoppingInteractive:
		recipes = newPrompter(cmd.InOrStdin(), out).askRecipes()
		if len(recipes) == 0 {
			fmt.Fprintln(out, "⚠️  没有输入任何菜谱")
			return nil
		}
		fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
		fmt.Fprintln(out, "开始生成购物清单...")
	default:
		recipes = eatfood.SampleRecipes()
	}

	logger.Debug("generating shopping list", zap.Int("recipes", len(recipes)))
	res := eatfood.NewGenerator(tables).Generate(recipes)
	report.RenderShopping(out, &res)

	persistShopping(cmd, out, &res)
	return nil
}

func persistShopping(cmd *cobra.Command, out io.Writer, res *eatfood.ShoppingResult) {
	if cfg.Reports.Text {
		printSave(out, "购物清单", report.SaveShoppingList(cfg.DataDir, res))
	}
	if cfg.Reports.XLSX || (shoppingXLSX && !noSave) {
		printSave(out, "购物清单表格", report.ExportShoppingXLSX(cfg.DataDir, res))
	}

	if s := openHistory(cmd.Context()); s != nil {
		defer s.Close()
		if err := s.SaveShopping(cmd.Context(), res); err != nil {
			logger.Warn("failed to record shopping list", zap.String("id", res.ID), zap.Error(err))
			return
		}
		logger.Debug("shopping list recorded", zap.String("id", res.ID))
	}
}

// printSave reports a saved file; failures are logged and never abort the run.
func printSave(out io.Writer, what string, r report.SaveResult) {
	if !r.OK() {
		logger.Warn("failed to save report", zap.String("path", r.Path), zap.Error(r.Err))
		fmt.Fprintf(out, "💾 保存失败: %v\n", r.Err)
		return
	}
	fmt.Fprintf(out, "💾 %s已保存到: %s\n", what, r.Path)
}

func init() {
	shoppingCmd.Flags().StringVarP(&shoppingFile, "file", "f", "", "YAML file with recipes")
	shoppingCmd.Flags().BoolVarP(&shoppingInteractive, "interactive", "i", false, "Enter recipes interactively")
	shoppingCmd.Flags().BoolVar(&shoppingXLSX, "xlsx", false, "Also export the list as an XLSX workbook")
}
