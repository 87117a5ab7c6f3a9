// Package logger 基于zap构建全局日志器
//
// 配置来源：config.LogConfig（level/format/output/enable_caller）
//   - format=console：开发环境，彩色级别、易读时间
//   - format=json：生产环境，便于ELK/Loki采集
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// New 根据配置创建zap.Logger
func New(cfg config.LogConfig) (*zap.Logger, error) {
	// 1. 解析日志级别（默认info）
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
		}
	}

	// 2. 选择编码器
	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = level
	zapCfg.EncoderConfig.TimeKey = "time"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.DisableCaller = !cfg.EnableCaller

	// 3. 输出位置：stdout | stderr | 文件路径
	output := cfg.Output
	if output == "" {
		output = "stdout"
	}
	zapCfg.OutputPaths = []string{output}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
