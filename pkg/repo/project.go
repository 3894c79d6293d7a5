package repo

import (
	// 外部依赖
	"context"

	// 内部引用
	model "github.com/openbench/labbook/pkg/model"
)

type ProjectRepo interface {
	Base

	// CreateProject 创建项目，父项目不存在时返回 code.ProjectNotFound
	CreateProject(ctx context.Context, data *model.Project) error
	// RootProjects 查询全部根项目（parent_id IS NULL）
	RootProjects(ctx context.Context) ([]*model.Project, error)
	// GetProject 按 id 查询单个项目
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	// GetChildren 查询直接子项目
	GetChildren(ctx context.Context, parentID int64) ([]*model.Project, error)
	// PathToRoot 自叶到根的祖先链，含自身
	PathToRoot(ctx context.Context, id int64) ([]*model.Project, error)
}
