package parser

import (
	"fmt"

	"github.com/w4sspr/rockfon-reorder/internal/model"
)

// FormulaErrorTokens Excel 公式错误标记（公式失效后残留在单元格里的文本）
var FormulaErrorTokens = []string{"#N/A", "#REF!", "#VALUE!"}

// Issues 检查提取结果的数据质量问题，返回人类可读的提示列表
// 仅作提示，不阻断后续处理
func Issues(rows []model.RawRow) []string {
	issues := make([]string, 0)

	errorCells := 0
	missingQOH := 0
	missingAvg := 0

	for _, row := range rows {
		for _, cell := range []string{row.ItemID, row.SKU, row.DisplayName} {
			if isFormulaError(cell) {
				errorCells++
			}
		}
		if row.QOH == nil {
			missingQOH++
		}
		if row.MonthlyAverage == nil {
			missingAvg++
		}
	}

	if errorCells > 0 {
		issues = append(issues, fmt.Sprintf("%d 个单元格包含 Excel 公式错误 (#N/A, #REF! 等)", errorCells))
	}
	if missingQOH > 0 {
		issues = append(issues, fmt.Sprintf("%d 行缺少 QOH 数值", missingQOH))
	}
	if missingAvg > 0 {
		issues = append(issues, fmt.Sprintf("%d 行缺少月均用量数值", missingAvg))
	}

	return issues
}

func isFormulaError(cell string) bool {
	for _, token := range FormulaErrorTokens {
		if cell == token {
			return true
		}
	}
	return false
}
