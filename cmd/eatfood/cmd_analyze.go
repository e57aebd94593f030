package main

import (
	"time"

	"eatfood"
	"eatfood/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a day of meals against reference intakes",
	Long: `Totals every meal of the day, compares the result with the daily
reference intakes, scores the day and gives recommendations.

Meals come from --file (YAML with a "meals" list) or the built-in sample day.`,
	Example: `  eatfood analyze
  eatfood analyze --file today.yaml`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	meals := eatfood.SampleDay()
	if analyzeFile != "" {
		var f dayFile
		if err := readYAML(analyzeFile, &f); err != nil {
			return err
		}
		meals = f.Meals
	}

	at := time.Now()
	rep := eatfood.NewDietAnalyzer(tables.Foods, tables.Reference).AnalyzeDay(meals)
	logger.Debug("day analyzed", zap.Int("meals", len(meals)), zap.Int("score", rep.Score))
	report.RenderDay(out, &rep)

	if cfg.Reports.Text {
		printSave(out, "报告", report.SaveDayReport(cfg.DataDir, at, meals, &rep))
	}
	if s := openHistory(cmd.Context()); s != nil {
		defer s.Close()
		id, err := s.SaveDay(cmd.Context(), at, &rep)
		if err != nil {
			logger.Warn("failed to record day", zap.Error(err))
			return nil
		}
		logger.Debug("day recorded", zap.String("id", id))
	}
	return nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "YAML file with the day's meals")
}
