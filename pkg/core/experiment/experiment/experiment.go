package experiment

import (
	// 外部依赖
	"context"
	"strings"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	core "github.com/openbench/labbook/pkg/core/experiment"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
	repoExperiment "github.com/openbench/labbook/pkg/repo/experiment"
)

type experimentImpl struct {
	experimentStore repo.ExperimentRepo
}

func New() core.Service {
	return &experimentImpl{experimentStore: repoExperiment.New()}
}

func (e *experimentImpl) Create(ctx context.Context, req *core.CreateReq) (*core.ExperimentWrap, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, code.ParamErr.WithMsg("name is required")
	}

	data := &model.Experiment{
		Name:     name,
		ParentID: req.ParentID,
	}
	if err := e.experimentStore.CreateExperiment(ctx, data); err != nil {
		return nil, err
	}
	return &core.ExperimentWrap{Experiment: toResp(data)}, nil
}

func (e *experimentImpl) ByID(ctx context.Context, req *core.IDReq) (*core.ExperimentWrap, error) {
	data, err := e.experimentStore.GetExperiment(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &core.ExperimentWrap{Experiment: toResp(data)}, nil
}

func (e *experimentImpl) AssignReagent(ctx context.Context, req *core.AssignReq) (*core.ExperimentWrap, error) {
	if !req.ReactionSchemeLocation.Valid() {
		return nil, code.ParamErr.WithMsgf("invalid reactionSchemeLocation %q", req.ReactionSchemeLocation)
	}
	if req.Equivalents <= 0 {
		return nil, code.ParamErr.WithMsg("equivalents must be greater than zero")
	}

	var data *model.Experiment
	err := e.experimentStore.ExecTx(ctx, func(txCtx context.Context) error {
		// 先确认实验存在，后续外键失败即可归因于试剂缺失
		if _, err := e.experimentStore.GetExperiment(txCtx, req.ExperimentID); err != nil {
			return err
		}
		assignment := &model.ExperimentReagent{
			ExperimentID:           req.ExperimentID,
			ReagentID:              req.ReagentID,
			ReactionSchemeLocation: req.ReactionSchemeLocation,
			Equivalents:            req.Equivalents,
		}
		if err := e.experimentStore.AssignReagent(txCtx, assignment); err != nil {
			return err
		}
		fresh, err := e.experimentStore.GetExperiment(txCtx, req.ExperimentID)
		if err != nil {
			return err
		}
		data = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &core.ExperimentWrap{Experiment: toResp(data)}, nil
}

func toResp(data *model.Experiment) *core.ExperimentResp {
	resp := &core.ExperimentResp{
		ID:       data.ID,
		Name:     data.Name,
		ParentID: data.ParentID,
		Reagents: make([]*core.AssignmentResp, 0, len(data.Reagents)),
	}
	for _, assignment := range data.Reagents {
		resp.Reagents = append(resp.Reagents, &core.AssignmentResp{
			ID:                     assignment.ID,
			ExperimentID:           assignment.ExperimentID,
			ReagentID:              assignment.ReagentID,
			ReactionSchemeLocation: assignment.ReactionSchemeLocation,
			Equivalents:            assignment.Equivalents,
		})
	}
	return resp
}
