package repo

import (
	// 外部依赖
	"context"

	gorm "gorm.io/gorm"

	// 内部引用
	db "github.com/openbench/labbook/pkg/middleware/db"
)

// Base 通用存储能力，领域仓储内嵌复用
type Base interface {
	DBWithContext(ctx context.Context) *gorm.DB
	CreateData(ctx context.Context, data any) error
	ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type baseDB struct{}

func NewBaseDB() Base {
	return &baseDB{}
}

func (b *baseDB) DBWithContext(ctx context.Context) *gorm.DB {
	return db.DB().DBWithContext(ctx)
}

// CreateData 返回原始 gorm 错误，冲突归类由调用方完成
func (b *baseDB) CreateData(ctx context.Context, data any) error {
	return b.DBWithContext(ctx).Create(data).Error
}

func (b *baseDB) ExecTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return db.DB().ExecTx(ctx, fn)
}
