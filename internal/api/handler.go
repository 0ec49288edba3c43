package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Version 服务版本号
const Version = "1.0.0"

// Handler API 处理器
type Handler struct {
	logger         *zap.Logger
	downloads      *downloadStore
	maxUploadBytes int64
}

// NewHandler 创建 API 处理器
func NewHandler(logger *zap.Logger, maxUploadMB int64) *Handler {
	return &Handler{
		logger:         logger,
		downloads:      newDownloadStore(),
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态与固定业务常量
	router.GET("/status", h.GetStatus)

	// 上传库存报表并分析
	router.POST("/report", h.AnalyzeReport)
	// CSV 下载（一次性链接）
	router.GET("/report/download/:token", h.DownloadReport)
}
