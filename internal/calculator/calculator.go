package calculator

import (
	"sort"
	"strings"

	"github.com/w4sspr/rockfon-reorder/internal/model"
)

// 业务阈值（固定常量，不走配置）
const (
	// TargetMonths 建议订货量的目标覆盖月数
	TargetMonths = 3

	// UrgentCutoffMonths 库存不足该月数 => Urgent
	UrgentCutoffMonths = 1.0
	// WarningCutoffMonths 库存不足该月数 => Warning
	WarningCutoffMonths = 2.0
)

// CalculateUrgency 根据库存量与月均用量判定紧急程度
// 月均用量 <= 0 表示无活跃需求，返回 ok=false，该条目不参与追踪
func CalculateUrgency(qoh, monthlyAvg float64) (urgency model.Urgency, months float64, ok bool) {
	if monthlyAvg <= 0 {
		return 0, 0, false
	}

	// 有需求但已断货
	if qoh <= 0 {
		return model.UrgencyCritical, 0, true
	}

	months = qoh / monthlyAvg

	switch {
	case months < UrgentCutoffMonths:
		return model.UrgencyUrgent, months, true
	case months < WarningCutoffMonths:
		return model.UrgencyWarning, months, true
	default:
		return model.UrgencyOK, months, true
	}
}

// CalculateSuggestedOrder 计算补齐到目标覆盖月数所需的订货量
// 公式：TargetMonths * 月均用量 - QOH，向零截断，不会为负
func CalculateSuggestedOrder(qoh, monthlyAvg float64) int {
	if monthlyAvg <= 0 {
		return 0
	}

	needed := int(TargetMonths*monthlyAvg - qoh)
	if needed < 0 {
		return 0
	}
	return needed
}

// isValidRow 行有效性检查：数值齐全且非负，关键文本列没有公式错误残留
func isValidRow(row model.RawRow) bool {
	if row.QOH == nil || row.MonthlyAverage == nil {
		return false
	}
	if *row.QOH < 0 || *row.MonthlyAverage < 0 {
		return false
	}
	for _, cell := range []string{row.ItemID, row.SKU, row.DisplayName} {
		if strings.HasPrefix(cell, "#") {
			return false
		}
	}
	return true
}

// ProcessInventory 将原始行转换为库存条目
// 无效行与无需求行直接丢弃，输出保持输入顺序
func ProcessInventory(rows []model.RawRow) []model.InventoryItem {
	items := make([]model.InventoryItem, 0, len(rows))

	for _, row := range rows {
		if !isValidRow(row) {
			continue
		}

		qoh := *row.QOH
		avg := *row.MonthlyAverage

		urgency, months, ok := CalculateUrgency(qoh, avg)
		if !ok {
			continue
		}

		items = append(items, model.InventoryItem{
			ItemID:            row.ItemID,
			SKU:               row.SKU,
			Category:          row.Category,
			DisplayName:       row.DisplayName,
			QOH:               int(qoh),
			MonthlyAverage:    avg,
			MonthsOfStock:     months,
			Urgency:           urgency,
			SuggestedOrderQty: CalculateSuggestedOrder(qoh, avg),
		})
	}

	return items
}

// SortItems 稳定排序：先按紧急程度（Critical 在前），同档按月均用量降序
// 紧急且用量大的条目排在最上面
func SortItems(items []model.InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Urgency != items[j].Urgency {
			return items[i].Urgency < items[j].Urgency
		}
		return items[i].MonthlyAverage > items[j].MonthlyAverage
	})
}

// FilterAlerts 过滤出需要关注的条目（默认排除 OK 档）
func FilterAlerts(items []model.InventoryItem, includeOK bool) []model.InventoryItem {
	if includeOK {
		return items
	}
	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Urgency != model.UrgencyOK {
			out = append(out, item)
		}
	}
	return out
}

// CountByUrgency 按紧急程度计数，四个档位都会出现（无条目时为 0）
func CountByUrgency(items []model.InventoryItem) map[model.Urgency]int {
	counts := make(map[model.Urgency]int, len(model.AllUrgencies))
	for _, u := range model.AllUrgencies {
		counts[u] = 0
	}
	for _, item := range items {
		counts[item.Urgency]++
	}
	return counts
}
