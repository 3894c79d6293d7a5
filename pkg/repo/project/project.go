package project

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

// maxPathDepth 祖先链防御上限，父指针成环时报错而不是死循环
const maxPathDepth = 64

type projectImpl struct {
	repo.Base
}

func New() repo.ProjectRepo {
	return &projectImpl{Base: repo.NewBaseDB()}
}

func (p *projectImpl) CreateProject(ctx context.Context, data *model.Project) error {
	if err := p.DBWithContext(ctx).Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return code.ProjectNotFound.WithMsgf("parent project %d not found", *data.ParentID)
		}
		logger.Errorf(ctx, "CreateProject err: %+v", err)
		return code.ProjectCreateErr.WithErr(err)
	}
	return nil
}

func (p *projectImpl) RootProjects(ctx context.Context) ([]*model.Project, error) {
	list := make([]*model.Project, 0)
	if err := p.DBWithContext(ctx).
		Where("parent_id IS NULL").
		Order("id ASC").
		Find(&list).Error; err != nil {
		logger.Errorf(ctx, "RootProjects err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}

func (p *projectImpl) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	data := &model.Project{}
	if err := p.DBWithContext(ctx).
		Where("id = ?", id).
		Take(data).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ProjectNotFound.WithMsgf("project id=%d not found", id)
		}
		logger.Errorf(ctx, "GetProject err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return data, nil
}

func (p *projectImpl) GetChildren(ctx context.Context, parentID int64) ([]*model.Project, error) {
	list := make([]*model.Project, 0)
	if err := p.DBWithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		logger.Errorf(ctx, "GetChildren err: %+v", err)
		return nil, code.QueryRecordErr.WithErr(err)
	}
	return list, nil
}

// PathToRoot 沿父指针逐级上溯，存储无关，避免方言化的递归 CTE
func (p *projectImpl) PathToRoot(ctx context.Context, id int64) ([]*model.Project, error) {
	path := make([]*model.Project, 0, 4)
	cur, err := p.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	path = append(path, cur)

	for cur.ParentID != nil {
		if len(path) >= maxPathDepth {
			return nil, code.ProjectPathArcErr.WithMsgf("ancestor chain of project %d exceeds %d", id, maxPathDepth)
		}
		if cur, err = p.GetProject(ctx, *cur.ParentID); err != nil {
			return nil, err
		}
		path = append(path, cur)
	}
	return path, nil
}
