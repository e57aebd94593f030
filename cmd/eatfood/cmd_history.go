package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"eatfood"
	eatfoodmsgpack "eatfood/msgpack"
	"eatfood/report"
	"eatfood/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyKind  string
	historyLimit int
	historyOut   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and export recorded runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a recorded run again",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every recorded run as a msgpack record stream",
	RunE:  runHistoryExport,
}

// historyStore opens the database even when --no-save turned recording off;
// reading history is always allowed.
func historyStore(cmd *cobra.Command) (*store.Store, error) {
	path := cfg.ResolvedDBPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no history at %s: %w", path, err)
	}
	return store.Open(cmd.Context(), path, logger)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	switch historyKind {
	case "", eatfoodmsgpack.KindShopping, eatfoodmsgpack.KindMeal, eatfoodmsgpack.KindDay:
	default:
		return fmt.Errorf("unknown kind %q (want shopping, meal or day)", historyKind)
	}

	s, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.List(cmd.Context(), historyKind, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		value := fmt.Sprintf("%.0f kcal", r.Value)
		if r.Kind == eatfoodmsgpack.KindShopping {
			value = fmt.Sprintf("¥%.2f", r.Value)
		}
		fmt.Fprintf(out, "%s  %-8s  %s  %-12s  %s\n",
			r.ID, r.Kind, r.CreatedAt.Format("2006-01-02 15:04"), value, r.Label)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	s, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	id := args[0]
	out := cmd.OutOrStdout()

	res, err := s.LoadShopping(ctx, id)
	if err == nil {
		report.RenderShopping(out, res)
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	meal, err := s.LoadMeal(ctx, id)
	if err == nil {
		report.RenderMeal(out, eatfoodmsgpack.ToMealResult(meal))
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	day, err := s.LoadDay(ctx, id)
	if err != nil {
		return err
	}
	// Stored days keep their foods, so the report is rebuilt with the
	// current tables.
	rep := eatfood.NewDietAnalyzer(tables.Foods, tables.Reference).AnalyzeDay(eatfoodmsgpack.ToMeals(day))
	if rep.Score != day.Score {
		logger.Debug("score differs from the recorded one", zap.Int("recorded", day.Score), zap.Int("now", rep.Score))
	}
	report.RenderDay(out, &rep)
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	s, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var n int
	if historyOut == "-" {
		n, err = s.Export(cmd.Context(), cmd.OutOrStdout())
	} else {
		f, ferr := os.Create(historyOut)
		if ferr != nil {
			return fmt.Errorf("failed to create %s: %w", historyOut, ferr)
		}
		n, err = exportTo(cmd.Context(), s, f)
	}
	if err != nil {
		return fmt.Errorf("failed to export history to %s: %w", historyOut, err)
	}
	logger.Info("history exported", zap.String("out", historyOut), zap.Int("records", n))
	return nil
}

// exportTo writes the history to wc and closes it. A failed close is an
// export failure, since buffered records may not have reached disk.
func exportTo(ctx context.Context, s *store.Store, wc io.WriteCloser) (int, error) {
	n, err := s.Export(ctx, wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func init() {
	historyListCmd.Flags().StringVar(&historyKind, "kind", "", "Only list runs of this kind (shopping, meal, day)")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs (0 for all)")
	historyExportCmd.Flags().StringVarP(&historyOut, "out", "o", "eatfood-history.msgpack", "Output file, - for stdout")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
}
