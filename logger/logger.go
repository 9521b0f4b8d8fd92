package logger

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// New 根据运行模式与日志级别创建 zap logger
// release 模式输出 JSON，其余模式输出带颜色的控制台格式
func New(mode, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if mode == "release" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// gormWriter 将 gorm 日志写入 zap
type gormWriter struct {
	sugar *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.sugar.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// NewGormLogger gorm 日志适配器，debug 模式打印全部 SQL，其余只打印慢查询与错误
func NewGormLogger(l *zap.Logger, mode string) gormlogger.Interface {
	level := gormlogger.Warn
	if mode == "debug" {
		level = gormlogger.Info
	}
	return gormlogger.New(gormWriter{sugar: l.Sugar()}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
