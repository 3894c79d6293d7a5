package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	model "github.com/openbench/labbook/pkg/model"
)

type ReagentRepo interface {
	Base

	// CreateReagent 入库，名称或结构撞唯一索引时返回 code.DataExistErr
	CreateReagent(ctx context.Context, data *model.Reagent) error
	// FindByName 精确名称查询，未命中返回 code.RecordNotFound
	FindByName(ctx context.Context, name string) (*model.Reagent, error)
	// FindByCanonicalSmiles 标准化结构精确查询，未命中返回 code.RecordNotFound
	FindByCanonicalSmiles(ctx context.Context, smiles string) (*model.Reagent, error)
	// SimilarByName 名称前缀检索，未命中返回空列表
	SimilarByName(ctx context.Context, prefix string) ([]*model.Reagent, error)
}
