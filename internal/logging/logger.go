package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 按运行模式构建 zap 日志器
// 开发模式输出彩色控制台日志，生产模式输出 JSON
func New(devMode bool) (*zap.Logger, error) {
	if devMode {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	return zap.NewProduction()
}
