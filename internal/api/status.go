package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/w4sspr/rockfon-reorder/internal/calculator"
	"github.com/w4sspr/rockfon-reorder/internal/model"
)

// StatusResponse 系统状态响应
// 固定业务常量一并返回，前端渲染说明文字时不用再复制一份
type StatusResponse struct {
	Version             string   `json:"version"`
	TargetMonths        int      `json:"targetMonths"`        // 建议订货的目标覆盖月数
	UrgentCutoffMonths  float64  `json:"urgentCutoffMonths"`  // 不足该月数 => Urgent
	WarningCutoffMonths float64  `json:"warningCutoffMonths"` // 不足该月数 => Warning
	InventorySheets     []string `json:"inventorySheets"`     // 解析的 sheet 白名单
	IgnoreSheets        []string `json:"ignoreSheets"`        // 跳过的 sheet
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Version:             Version,
		TargetMonths:        calculator.TargetMonths,
		UrgentCutoffMonths:  calculator.UrgentCutoffMonths,
		WarningCutoffMonths: calculator.WarningCutoffMonths,
		InventorySheets:     model.InventorySheets,
		IgnoreSheets:        model.IgnoreSheets,
	})
}
