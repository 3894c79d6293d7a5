package project

import (
	// 外部依赖
	"context"
	"encoding/base64"
	"strings"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	core "github.com/openbench/labbook/pkg/core/project"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
	repoProject "github.com/openbench/labbook/pkg/repo/project"
	utils "github.com/openbench/labbook/pkg/utils"
)

type projectImpl struct {
	projectStore repo.ProjectRepo
}

func New() core.Service {
	return &projectImpl{projectStore: repoProject.New()}
}

func (p *projectImpl) Create(ctx context.Context, req *core.CreateReq, image []byte) (*core.ProjectWrap, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, code.ParamErr.WithMsg("name is required")
	}

	var thumb []byte
	if len(image) > 0 {
		var err error
		thumb, err = fitImage(image, maxImageEdge, maxImageEdge)
		if err != nil {
			logger.Warnf(ctx, "decode project image fail: %+v", err)
			return nil, code.ProjectImageErr.WithErr(err)
		}
	}

	data := &model.Project{
		Name:     name,
		ParentID: req.ParentID,
		Image:    thumb,
	}
	if err := p.projectStore.CreateProject(ctx, data); err != nil {
		return nil, err
	}
	return &core.ProjectWrap{Project: toResp(data)}, nil
}

func (p *projectImpl) Roots(ctx context.Context) (*core.ListResp, error) {
	datas, err := p.projectStore.RootProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &core.ListResp{Projects: utils.Slice(datas, toResp)}, nil
}

func (p *projectImpl) ByID(ctx context.Context, req *core.IDReq) (*core.ProjectWrap, error) {
	data, err := p.projectStore.GetProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	children, err := p.projectStore.GetChildren(ctx, data.ID)
	if err != nil {
		return nil, err
	}
	resp := toResp(data)
	resp.Children = utils.Slice(children, toResp)
	return &core.ProjectWrap{Project: resp}, nil
}

func (p *projectImpl) PathToRoot(ctx context.Context, req *core.IDReq) (*core.PathResp, error) {
	datas, err := p.projectStore.PathToRoot(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &core.PathResp{Path: utils.Slice(datas, toResp)}, nil
}

func toResp(data *model.Project) *core.ProjectResp {
	resp := &core.ProjectResp{
		ID:       data.ID,
		Name:     data.Name,
		ParentID: data.ParentID,
	}
	if len(data.Image) > 0 {
		resp.Image = base64.StdEncoding.EncodeToString(data.Image)
	}
	return resp
}
