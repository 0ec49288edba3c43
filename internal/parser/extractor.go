package parser

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/w4sspr/rockfon-reorder/internal/model"
)

// Extractor Excel 库存提取器
type Extractor struct {
	file   *excelize.File
	fileID string
}

// NewExtractor 创建提取器
func NewExtractor() *Extractor {
	return &Extractor{
		fileID: uuid.New().String(),
	}
}

// LoadReader 从字节流加载 Excel 文件
func (e *Extractor) LoadReader(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	e.file = file
	return nil
}

// LoadFile 从路径加载 Excel 文件
func (e *Extractor) LoadFile(path string) error {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	e.file = file
	return nil
}

// FileID 获取文件ID
func (e *Extractor) FileID() string {
	return e.fileID
}

// Close 关闭文件
func (e *Extractor) Close() error {
	if e.file != nil {
		return e.file.Close()
	}
	return nil
}

// Extract 提取全部已知库存 sheet，返回原始行序列和各 sheet 行数统计
// 没有产出数据的 sheet 不计入统计；全部 sheet 均无数据时返回空序列 + 空统计
func (e *Extractor) Extract() ([]model.RawRow, map[string]int, error) {
	if e.file == nil {
		return nil, nil, errors.New("no file loaded")
	}

	rows := make([]model.RawRow, 0)
	stats := make(map[string]int)

	for _, sheetName := range e.file.GetSheetList() {
		if slices.Contains(model.IgnoreSheets, sheetName) {
			continue
		}
		if !slices.Contains(model.InventorySheets, sheetName) {
			continue
		}

		sheetRows := e.extractSheet(sheetName)
		if len(sheetRows) > 0 {
			stats[sheetName] = len(sheetRows)
			rows = append(rows, sheetRows...)
		}
	}

	return rows, stats, nil
}

// extractSheet 按固定列位置提取单个 sheet
// 第 0 行是标题行，第 1 行是表头，数据从第 2 行开始
func (e *Extractor) extractSheet(sheetName string) []model.RawRow {
	rows, err := e.file.GetRows(sheetName)
	if err != nil {
		// 单个 sheet 读取失败不影响其余 sheet
		return nil
	}
	if len(rows) <= 2 {
		return nil
	}

	layout := model.LayoutFor(sheetName)

	// 列数不足时整个 sheet 视为无数据
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width <= layout.MaxIndex() {
		return nil
	}

	out := make([]model.RawRow, 0, len(rows)-2)
	for _, row := range rows[2:] {
		out = append(out, model.RawRow{
			ItemID:         getCell(row, layout.Item),
			SKU:            getCell(row, layout.SKU),
			DisplayName:    getCell(row, layout.Display),
			QOH:            parseOptionalNumber(getCell(row, layout.QOH)),
			MonthlyAverage: parseOptionalNumber(getCell(row, layout.Avg)),
			Category:       sheetName,
		})
	}

	return out
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseOptionalNumber 数值转换，失败返回 nil 而不是报错
func parseOptionalNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// 移除千分位分隔符
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
