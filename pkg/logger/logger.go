// Package logger 基于zap的结构化日志
//
// 设计说明:
// 1. release模式使用JSON输出,debug模式使用彩色console输出
// 2. New之后调用zap.ReplaceGlobals,没有注入logger的地方用L()兜底
// 3. 业务代码只记录需要排查的事件,NotFound等正常结果不打ERROR
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置(与config.LogConfig字段一致,避免pkg依赖internal)
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// New 创建zap logger并替换全局logger
func New(cfg Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableCaller = !cfg.EnableCaller

	if cfg.Output != "" {
		zcfg.OutputPaths = []string{cfg.Output}
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

// L 返回全局logger
func L() *zap.Logger {
	return zap.L()
}

// Named 返回带模块名的子logger
func Named(name string) *zap.Logger {
	return zap.L().Named(name)
}
