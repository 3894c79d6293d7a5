package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	model "github.com/openbench/labbook/pkg/model"
)

type ExperimentRepo interface {
	Base

	// CreateExperiment 创建实验，父项目不存在时返回 code.ProjectNotFound
	CreateExperiment(ctx context.Context, data *model.Experiment) error
	// GetExperiment 按 id 查询实验及其全部试剂关联
	GetExperiment(ctx context.Context, id int64) (*model.Experiment, error)
	// AssignReagent 写入实验-试剂关联，唯一约束与外键由存储层裁决
	AssignReagent(ctx context.Context, data *model.ExperimentReagent) error
}
