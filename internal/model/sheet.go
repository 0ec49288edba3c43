package model

// InventorySheets 需要解析的库存 sheet（固定白名单）
var InventorySheets = []string{
	"Kits",
	"kit Components",
	"ColorChip",
	"Fleece",
	"Tiles",
	"Metal",
	"Wood",
	"Marketing",
}

// IgnoreSheets 显式跳过的 sheet（查找表、辅助计算表）
var IgnoreSheets = []string{
	"FULL 4 LOOK UP KEEP",
	"Componet Averages",
}

// ColumnLayout 单个 sheet 的固定列位置（0 起始，列名不可靠，按位置取）
type ColumnLayout struct {
	Item    int
	SKU     int
	Display int
	QOH     int
	Avg     int
}

// MaxIndex 布局需要的最大列下标
func (l ColumnLayout) MaxIndex() int {
	max := l.Item
	for _, i := range []int{l.SKU, l.Display, l.QOH, l.Avg} {
		if i > max {
			max = i
		}
	}
	return max
}

// StandardLayout 多数 sheet 的标准布局（A 列为空列）
var StandardLayout = ColumnLayout{
	Item:    1, // B 列
	SKU:     2, // C 列
	Display: 4, // E 列
	QOH:     5, // F 列
	Avg:     6, // G 列
}

// WoodLayout Wood sheet 的布局：F 列是 Lead Time，QOH 后移到 H 列
var WoodLayout = ColumnLayout{
	Item:    1,
	SKU:     2,
	Display: 4,
	Avg:     6, // G 列
	QOH:     7, // H 列
}

// sheetLayouts 特殊布局表，未列出的 sheet 一律使用标准布局
var sheetLayouts = map[string]ColumnLayout{
	"Wood": WoodLayout,
}

// LayoutFor 取 sheet 对应的列布局
func LayoutFor(sheetName string) ColumnLayout {
	if layout, ok := sheetLayouts[sheetName]; ok {
		return layout
	}
	return StandardLayout
}
