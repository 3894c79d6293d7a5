package reagent

import (
	// 外部依赖
	"context"
	"errors"
	"strings"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
)

type reagentImpl struct {
	repo.Base
}

func New() repo.ReagentRepo {
	return &reagentImpl{Base: repo.NewBaseDB()}
}

func (r *reagentImpl) CreateReagent(ctx context.Context, data *model.Reagent) error {
	if err := r.DBWithContext(ctx).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return code.DataExistErr.WithErr(err)
		}
		logger.Errorf(ctx, "CreateReagent err: %+v", err)
		return code.CreateDataErr.WithErr(err)
	}
	return nil
}

func (r *reagentImpl) FindByName(ctx context.Context, name string) (*model.Reagent, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *reagentImpl) FindByCanonicalSmiles(ctx context.Context, smiles string) (*model.Reagent, error) {
	return r.findOne(ctx, "canonical_smiles = ?", smiles)
}

// findOne 多条命中时以 id 升序取首条，保证可重复的裁决顺序
func (r *reagentImpl) findOne(ctx context.Context, cond string, arg any) (*model.Reagent, error) {
	data := &model.Reagent{}
	if err := r.DBWithContext(ctx).
		Where(cond, arg).
		Order("id ASC").
		First(data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.RecordNotFound
		}
		logger.Errorf(ctx, "find reagent err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

// SimilarByName 名称统一小写入库，小写前缀 LIKE 即为大小写不敏感匹配
func (r *reagentImpl) SimilarByName(ctx context.Context, prefix string) ([]*model.Reagent, error) {
	list := make([]*model.Reagent, 0)
	if err := r.DBWithContext(ctx).
		Where("name LIKE ?", strings.ToLower(prefix)+"%").
		Order("id ASC").
		Find(&list).Error; err != nil {
		logger.Errorf(ctx, "SimilarByName err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}
