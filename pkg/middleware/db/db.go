package db

import (
	// 外部依赖
	"context"
	"fmt"
	"time"

	postgres "gorm.io/driver/postgres"
	sqlite "gorm.io/driver/sqlite"
	gorm "gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	tracing "gorm.io/plugin/opentelemetry/tracing"

	// 内部引用
	logger "github.com/openbench/labbook/pkg/middleware/logger"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
}

// Datastore 持有全局 gorm 连接，事务通过 context 透传
type Datastore struct {
	db *gorm.DB
}

var store *Datastore

type txKey struct{}

func gormConfig(level string) *gorm.Config {
	logLevel := gormlogger.Warn
	if level == "debug" {
		logLevel = gormlogger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	}
}

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig(conf.LogConf.Level))
	if err != nil {
		logger.Fatalf(ctx, "init postgres fail err: %+v", err)
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		logger.Warnf(ctx, "register gorm otel plugin err: %+v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db fail err: %+v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	store = &Datastore{db: db}
}

// InitSqlite 本地开发与单测使用
func InitSqlite(ctx context.Context, dsn string) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig("warn"))
	if err != nil {
		logger.Fatalf(ctx, "init sqlite fail err: %+v", err)
	}
	store = &Datastore{db: db}
}

func ClosePostgres(_ context.Context) {
	if store == nil {
		return
	}
	if sqlDB, err := store.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	store = nil
}

func DB() *Datastore {
	return store
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext 事务上下文中返回事务句柄，否则返回带 ctx 的连接
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.db.WithContext(ctx)
}

// ExecTx 在事务中执行 fn，事务句柄写入 ctx 供嵌套仓储复用
func (d *Datastore) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.DBWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
