package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eatfood"

	"github.com/xuri/excelize/v2"
)

const shoppingSheet = "购物清单"

func ShoppingXLSXName(res *eatfood.ShoppingResult) string {
	return strings.TrimSuffix(ShoppingFileName(res.CreatedAt), ".txt") + ".xlsx"
}

// ExportShoppingXLSX writes the list as a spreadsheet: one row per item in
// category order, then a total row.
func ExportShoppingXLSX(dir string, res *eatfood.ShoppingResult) SaveResult {
	path := filepath.Join(dir, ShoppingXLSXName(res))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", shoppingSheet); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("rename sheet: %w", err)}
	}

	header := []any{"食材", "数量", "克数", "类别", "预估价格(元)"}
	if err := f.SetSheetRow(shoppingSheet, "A1", &header); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("write header: %w", err)}
	}

	row := 2
	for _, it := range res.Items {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return SaveResult{Path: path, Err: err}
		}
		values := []any{it.Name, it.Display, it.Grams, it.Category, eatfood.Round2(it.Cost)}
		if err := f.SetSheetRow(shoppingSheet, cell, &values); err != nil {
			return SaveResult{Path: path, Err: fmt.Errorf("write row %d: %w", row, err)}
		}
		row++
	}

	totalCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return SaveResult{Path: path, Err: err}
	}
	total := []any{"合计", "", "", "", eatfood.Round2(res.TotalCost)}
	if err := f.SetSheetRow(shoppingSheet, totalCell, &total); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("write total: %w", err)}
	}

	if err := f.SetColWidth(shoppingSheet, "A", "E", 14); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("set column width: %w", err)}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("create report dir: %w", err)}
	}
	if err := f.SaveAs(path); err != nil {
		return SaveResult{Path: path, Err: fmt.Errorf("save xlsx: %w", err)}
	}
	return SaveResult{Path: path}
}
