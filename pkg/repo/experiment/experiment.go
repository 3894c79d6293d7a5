package experiment

import (
	// 外部依赖
	"context"
	"errors"

	gorm "gorm.io/gorm"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
)

type experimentImpl struct {
	repo.Base
}

func New() repo.ExperimentRepo {
	return &experimentImpl{Base: repo.NewBaseDB()}
}

func (e *experimentImpl) CreateExperiment(ctx context.Context, data *model.Experiment) error {
	if err := e.DBWithContext(ctx).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return code.ProjectNotFound.WithMsgf("parent project %d not found", data.ParentID)
		}
		logger.Errorf(ctx, "CreateExperiment err: %+v", err)
		return code.ExperimentCreateErr.WithErr(err)
	}
	return nil
}

func (e *experimentImpl) GetExperiment(ctx context.Context, id int64) (*model.Experiment, error) {
	data := &model.Experiment{}
	if err := e.DBWithContext(ctx).
		Preload("Reagents", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Reagents.Reagent").
		Where("id = ?", id).
		Take(data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ExperimentNotFound.WithMsgf("experiment id=%d not found", id)
		}
		logger.Errorf(ctx, "GetExperiment err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

// AssignReagent 不做 check-then-insert，唯一约束与外键由存储层裁决
func (e *experimentImpl) AssignReagent(ctx context.Context, data *model.ExperimentReagent) error {
	if err := e.DBWithContext(ctx).Create(data).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return code.ReagentAssignedErr.WithMsgf(
				"reagent %d already assigned to experiment %d", data.ReagentID, data.ExperimentID)
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// 实验在入口处已校验，外键失败按试剂缺失处理
			return code.ReagentNotFound.WithMsgf("reagent %d not in DB", data.ReagentID)
		default:
			logger.Errorf(ctx, "AssignReagent err: %+v", err)
			return code.CreateDataErr.WithErr(err)
		}
	}
	return nil
}
