package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	Debug         bool
	SlowThreshold time.Duration
}

// zapLogger routes gorm's logging through the process zap logger.
type zapLogger struct {
	o     Options
	level gormlogger.LogLevel
}

func NewLogger(o Options) gormlogger.Interface {
	level := gormlogger.Warn
	if o.Debug {
		level = gormlogger.Info
	}
	return &zapLogger{o: o, level: level}
}

func (l *zapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *zapLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		logger.L().Info("gorm info", zap.String("msg", fmt.Sprintf(msg, data...)))
	}
}

func (l *zapLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		logger.L().Warn("gorm warn", zap.String("msg", fmt.Sprintf(msg, data...)))
	}
}

func (l *zapLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		logger.L().Error("gorm error", zap.String("msg", fmt.Sprintf(msg, data...)))
	}
}

func (l *zapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		logger.L().Error("gorm sql error", zap.Duration("elapsed", elapsed), zap.Error(err), zap.String("sql", sql), zap.Int64("rows", rows))
	case l.o.SlowThreshold > 0 && elapsed > l.o.SlowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logger.L().Warn("slow sql", zap.Duration("elapsed", elapsed), zap.String("sql", sql), zap.Int64("rows", rows))
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		logger.L().Debug("gorm sql", zap.Duration("elapsed", elapsed), zap.String("sql", sql), zap.Int64("rows", rows))
	}
}
