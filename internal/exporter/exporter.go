package exporter

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"

	"github.com/w4sspr/rockfon-reorder/internal/model"
)

// UnboundedDisplayThreshold 覆盖月数超过该值按"近乎无限"展示
// 这是展示层的约定，不进入数据模型
const UnboundedDisplayThreshold = 100.0

// CSVFileName CSV 下载的默认文件名
const CSVFileName = "rockfon_reorder_alerts.csv"

// csvHeader CSV 表头，列名与顺序是对外契约，下游自动化依赖它，不能改
var csvHeader = []string{
	"Urgency",
	"Product",
	"SKU",
	"Category",
	"QOH",
	"Monthly Average",
	"Months of Stock",
	"Suggested Order Qty",
}

// DisplayRow 展示表格的一行
type DisplayRow struct {
	Status         string  `json:"status"` // 状态圆点
	Product        string  `json:"product"`
	SKU            string  `json:"sku"`
	Category       string  `json:"category"`
	QOH            int     `json:"qoh"`
	MonthlyUse     float64 `json:"monthlyUse"`     // 保留 1 位小数
	MonthsLeft     string  `json:"monthsLeft"`     // 1 位小数，近乎无限时为 "-"
	SuggestedOrder int     `json:"suggestedOrder"` // 建议订货量
}

// ToDisplayRows 转换为展示投影，顺序与输入一致
func ToDisplayRows(items []model.InventoryItem) []DisplayRow {
	rows := make([]DisplayRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, DisplayRow{
			Status:         item.Urgency.Emoji(),
			Product:        item.DisplayName,
			SKU:            item.SKU,
			Category:       item.Category,
			QOH:            item.QOH,
			MonthlyUse:     round1(item.MonthlyAverage),
			MonthsLeft:     formatMonthsLeft(item.MonthsOfStock),
			SuggestedOrder: item.SuggestedOrderQty,
		})
	}
	return rows
}

// ToCSV 导出 CSV 文本，行顺序与输入一致
// 表头固定为 csvHeader，内嵌逗号按标准 CSV 引号转义
func ToCSV(items []model.InventoryItem) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeader)
	for _, item := range items {
		_ = w.Write([]string{
			item.Urgency.Label(),
			item.DisplayName,
			item.SKU,
			item.Category,
			strconv.Itoa(item.QOH),
			strconv.FormatFloat(item.MonthlyAverage, 'f', -1, 64),
			formatMonthsCSV(item.MonthsOfStock),
			strconv.Itoa(item.SuggestedOrderQty),
		})
	}
	w.Flush()

	return buf.String()
}

func formatMonthsLeft(months float64) string {
	if months >= UnboundedDisplayThreshold {
		return "-"
	}
	return strconv.FormatFloat(round1(months), 'f', -1, 64)
}

func formatMonthsCSV(months float64) string {
	if months >= UnboundedDisplayThreshold {
		return ""
	}
	return strconv.FormatFloat(math.Round(months*100)/100, 'f', -1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
