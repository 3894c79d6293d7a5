package logger

import (
	// 外部依赖
	"context"
	"os"
	"sync"

	otelzap "github.com/uptrace/opentelemetry-go-extra/otelzap"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

var (
	base   *zap.Logger
	sugar  *otelzap.SugaredLogger
	initMu sync.Mutex
)

// Init 初始化全局日志，文件走 lumberjack 滚动，控制台同步输出
func Init(conf *LogConfig) {
	initMu.Lock()
	defer initMu.Unlock()

	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encConf)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), level),
	}
	if conf.Path != "" {
		w := &lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    100, // MB
			MaxBackups: 10,
			MaxAge:     7, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), level))
	}

	base = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("platform", conf.ServiceEnv.Platform),
			zap.String("service", conf.ServiceEnv.Service),
			zap.String("env", conf.ServiceEnv.Env),
		))
	sugar = otelzap.New(base, otelzap.WithMinLevel(level)).Sugar()
}

func Close() {
	if base != nil {
		_ = base.Sync()
	}
}

func l() *otelzap.SugaredLogger {
	if sugar == nil {
		Init(&LogConfig{LogLevel: "info"})
	}
	return sugar
}

func Debugf(ctx context.Context, format string, args ...any) {
	l().Ctx(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	l().Ctx(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	l().Ctx(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	l().Ctx(ctx).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	l().Ctx(ctx).Fatalf(format, args...)
}
