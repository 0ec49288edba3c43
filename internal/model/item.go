package model

// Urgency 库存紧急程度，数值越小越紧急（用于排序主键）
type Urgency int

const (
	UrgencyCritical Urgency = 1 // 有需求但已断货，正在丢单
	UrgencyUrgent   Urgency = 2 // 库存不足 1 个月
	UrgencyWarning  Urgency = 3 // 库存不足 2 个月
	UrgencyOK       Urgency = 4 // 库存 >= 2 个月，充足
)

// AllUrgencies 按严重程度排列的全部档位
var AllUrgencies = []Urgency{UrgencyCritical, UrgencyUrgent, UrgencyWarning, UrgencyOK}

// Label 英文文本标签（CSV 导出用）
func (u Urgency) Label() string {
	switch u {
	case UrgencyCritical:
		return "Critical"
	case UrgencyUrgent:
		return "Urgent"
	case UrgencyWarning:
		return "Warning"
	case UrgencyOK:
		return "OK"
	default:
		return "Unknown"
	}
}

// Emoji 状态圆点（展示表格用）
func (u Urgency) Emoji() string {
	switch u {
	case UrgencyCritical:
		return "\U0001F534"
	case UrgencyUrgent:
		return "\U0001F7E0"
	case UrgencyWarning:
		return "\U0001F7E1"
	case UrgencyOK:
		return "\U0001F7E2"
	default:
		return ""
	}
}

func (u Urgency) String() string {
	return u.Label()
}

// RawRow 提取后、校验前的原始行
// QOH / MonthlyAverage 为 nil 表示原始单元格缺失或无法转换为数值
type RawRow struct {
	ItemID         string
	SKU            string
	Category       string // 来源 sheet 名
	DisplayName    string
	QOH            *float64
	MonthlyAverage *float64
}

// InventoryItem 分类后的库存条目，创建后不再修改
// 不变式：MonthlyAverage > 0（无需求的行在分类阶段已被丢弃）
type InventoryItem struct {
	ItemID            string  `json:"itemId"`
	SKU               string  `json:"sku"`
	Category          string  `json:"category"`
	DisplayName       string  `json:"displayName"`
	QOH               int     `json:"qoh"`
	MonthlyAverage    float64 `json:"monthlyAverage"`
	MonthsOfStock     float64 `json:"monthsOfStock"`
	Urgency           Urgency `json:"urgency"`
	SuggestedOrderQty int     `json:"suggestedOrderQty"`
}
