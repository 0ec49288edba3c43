package exporter_test

import (
	"strings"
	"testing"

	"github.com/w4sspr/rockfon-reorder/internal/exporter"
	"github.com/w4sspr/rockfon-reorder/internal/model"
)

func sampleItems() []model.InventoryItem {
	return []model.InventoryItem{
		{
			ItemID:            "A",
			SKU:               "SKU-A",
			Category:          "Tiles",
			DisplayName:       "Tile White 600",
			QOH:               0,
			MonthlyAverage:    5,
			MonthsOfStock:     0,
			Urgency:           model.UrgencyCritical,
			SuggestedOrderQty: 15,
		},
		{
			ItemID:            "B",
			SKU:               "SKU-B",
			Category:          "Metal",
			DisplayName:       "Panel, White", // 内嵌逗号，CSV 必须加引号
			QOH:               10,
			MonthlyAverage:    20.25,
			MonthsOfStock:     0.4938,
			Urgency:           model.UrgencyUrgent,
			SuggestedOrderQty: 50,
		},
		{
			ItemID:            "C",
			SKU:               "SKU-C",
			Category:          "Wood",
			DisplayName:       "Wood Panel Oak",
			QOH:               5000,
			MonthlyAverage:    2,
			MonthsOfStock:     2500, // 近乎无限
			Urgency:           model.UrgencyOK,
			SuggestedOrderQty: 0,
		},
	}
}

func TestToCSVHeaderIsStable(t *testing.T) {
	csv := exporter.ToCSV(sampleItems())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	want := "Urgency,Product,SKU,Category,QOH,Monthly Average,Months of Stock,Suggested Order Qty"
	if lines[0] != want {
		t.Fatalf("header=%q, want %q", lines[0], want)
	}
	if got, want := len(lines), 4; got != want {
		t.Fatalf("len(lines)=%d, want %d", got, want)
	}
}

func TestToCSVRows(t *testing.T) {
	csv := exporter.ToCSV(sampleItems())
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if got, want := lines[1], "Critical,Tile White 600,SKU-A,Tiles,0,5,0,15"; got != want {
		t.Fatalf("line1=%q, want %q", got, want)
	}

	// 内嵌逗号按标准 CSV 引号转义；覆盖月数保留 2 位小数
	if got, want := lines[2], `Urgent,"Panel, White",SKU-B,Metal,10,20.25,0.49,50`; got != want {
		t.Fatalf("line2=%q, want %q", got, want)
	}

	// 覆盖月数 >= 100 时导出为空
	if got, want := lines[3], "OK,Wood Panel Oak,SKU-C,Wood,5000,2,,0"; got != want {
		t.Fatalf("line3=%q, want %q", got, want)
	}
}

func TestToCSVEmpty(t *testing.T) {
	csv := exporter.ToCSV(nil)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if got, want := len(lines), 1; got != want {
		t.Fatalf("len(lines)=%d, want %d (header only)", got, want)
	}
}

func TestToDisplayRows(t *testing.T) {
	rows := exporter.ToDisplayRows(sampleItems())

	if got, want := len(rows), 3; got != want {
		t.Fatalf("len(rows)=%d, want %d", got, want)
	}

	a := rows[0]
	if a.Status != model.UrgencyCritical.Emoji() {
		t.Fatalf("Status=%q, want critical emoji", a.Status)
	}
	if a.Product != "Tile White 600" || a.SKU != "SKU-A" || a.Category != "Tiles" {
		t.Fatalf("unexpected row fields: %+v", a)
	}
	if a.QOH != 0 || a.SuggestedOrder != 15 {
		t.Fatalf("QOH=%d order=%d, want 0 15", a.QOH, a.SuggestedOrder)
	}

	// 月均用量保留 1 位小数
	b := rows[1]
	if got, want := b.MonthlyUse, 20.3; got != want {
		t.Fatalf("MonthlyUse=%v, want %v", got, want)
	}
	if got, want := b.MonthsLeft, "0.5"; got != want {
		t.Fatalf("MonthsLeft=%q, want %q", got, want)
	}

	// 近乎无限显示占位符
	c := rows[2]
	if got, want := c.MonthsLeft, "-"; got != want {
		t.Fatalf("MonthsLeft=%q, want %q", got, want)
	}
}
