package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/w4sspr/rockfon-reorder/internal/calculator"
	"github.com/w4sspr/rockfon-reorder/internal/exporter"
	"github.com/w4sspr/rockfon-reorder/internal/model"
	"github.com/w4sspr/rockfon-reorder/internal/parser"
)

// 可区分的失败状态码，调用方据此提示用户重新上传
const (
	codeInvalidWorkbook = "invalid_workbook"   // 工作簿无法读取
	codeNoInventoryData = "no_inventory_data"  // 已知 sheet 均未产出数据
	codeNoActiveDemand  = "no_active_demand"   // 提取到数据但没有有需求的条目
)

// downloadTTL CSV 下载链接有效期
const downloadTTL = 10 * time.Minute

// UrgencyCounts 各档位条目数（四个档位都会返回）
type UrgencyCounts struct {
	Critical int `json:"critical"`
	Urgent   int `json:"urgent"`
	Warning  int `json:"warning"`
	OK       int `json:"ok"`
}

// ReportSummary 汇总信息
type ReportSummary struct {
	Counts     UrgencyCounts `json:"counts"`
	TotalItems int           `json:"totalItems"` // 有活跃需求的 SKU 总数
	AlertCount int           `json:"alertCount"` // 需要关注的条目数（非 OK）
}

// ReportResponse 分析结果
type ReportResponse struct {
	ReportID    string                `json:"reportId"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Summary     ReportSummary         `json:"summary"`
	SheetStats  map[string]int        `json:"sheetStats"` // 各 sheet 导入行数
	Issues      []string              `json:"issues"`     // 数据质量提示，不阻断处理
	Items       []exporter.DisplayRow `json:"items"`
	DownloadURL string                `json:"downloadUrl"`
}

// AnalyzeReport 上传库存 Excel 并生成补货预警报表
// POST /api/report
func (h *Handler) AnalyzeReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "上传文件过大"})
		return
	}

	includeOK := c.DefaultPostForm("includeOk", "false") == "true"

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取上传文件失败"})
		return
	}
	defer file.Close()

	ext := parser.NewExtractor()
	if err := ext.LoadReader(file); err != nil {
		h.logger.Warn("工作簿打开失败",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  codeInvalidWorkbook,
			"error": "无法读取 Excel 文件，请确认上传的是 Rockfon 库存报表",
		})
		return
	}
	defer ext.Close()

	rows, stats, err := ext.Extract()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "解析失败"})
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":  codeNoInventoryData,
			"error": "未在上传文件中找到库存数据",
		})
		return
	}

	issues := parser.Issues(rows)

	items := calculator.ProcessInventory(rows)
	if len(items) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":  codeNoActiveDemand,
			"error": "库存数据中没有有活跃需求的条目",
		})
		return
	}

	calculator.SortItems(items)

	counts := calculator.CountByUrgency(items)
	alerts := calculator.FilterAlerts(items, false)

	// 展示与导出使用同一个视图：默认隐藏 OK 档
	view := calculator.FilterAlerts(items, includeOK)

	token := h.downloads.put([]byte(exporter.ToCSV(view)), exporter.CSVFileName, downloadTTL)

	h.logger.Info("报表生成完成",
		zap.String("reportId", ext.FileID()),
		zap.String("filename", fileHeader.Filename),
		zap.Int("rawRows", len(rows)),
		zap.Int("items", len(items)),
		zap.Int("alerts", len(alerts)))

	c.JSON(http.StatusOK, ReportResponse{
		ReportID:    ext.FileID(),
		GeneratedAt: time.Now(),
		Summary: ReportSummary{
			Counts: UrgencyCounts{
				Critical: counts[model.UrgencyCritical],
				Urgent:   counts[model.UrgencyUrgent],
				Warning:  counts[model.UrgencyWarning],
				OK:       counts[model.UrgencyOK],
			},
			TotalItems: len(items),
			AlertCount: len(alerts),
		},
		SheetStats:  stats,
		Issues:      issues,
		Items:       exporter.ToDisplayRows(view),
		DownloadURL: "/api/report/download/" + token,
	})
}
