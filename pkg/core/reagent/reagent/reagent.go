package reagent

import (
	// 外部依赖
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
	core "github.com/openbench/labbook/pkg/core/reagent"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	model "github.com/openbench/labbook/pkg/model"
	repo "github.com/openbench/labbook/pkg/repo"
	repoPubchem "github.com/openbench/labbook/pkg/repo/pubchem"
	repoRdkit "github.com/openbench/labbook/pkg/repo/rdkit"
	repoReagent "github.com/openbench/labbook/pkg/repo/reagent"
	utils "github.com/openbench/labbook/pkg/utils"
)

type reagentImpl struct {
	reagentStore  repo.ReagentRepo
	canonicalizer repo.Canonicalizer
	pubchem       repo.PubChemRepo
}

func New() core.Service {
	return NewWithDeps(repoReagent.New(), repoRdkit.NewCanonicalizer(), repoPubchem.NewPubChemRepo())
}

// NewWithDeps 供测试注入替身实现
func NewWithDeps(store repo.ReagentRepo, canonicalizer repo.Canonicalizer, pubchem repo.PubChemRepo) core.Service {
	return &reagentImpl{
		reagentStore:  store,
		canonicalizer: canonicalizer,
		pubchem:       pubchem,
	}
}

func (r *reagentImpl) Add(ctx context.Context, req *core.AddReq) (*core.ReagentWrap, error) {
	if req.MolecularWeight == nil {
		return nil, code.MolWeightRequiredErr
	}

	name := ""
	if req.ReagentName != nil {
		name = strings.ToLower(strings.TrimSpace(*req.ReagentName))
	}
	smiles := ""
	if req.CanonicalSMILES != nil {
		smiles = strings.TrimSpace(*req.CanonicalSMILES)
	}
	if name == "" && smiles == "" {
		return nil, code.ParamErr.WithMsg("reagentName or canonicalSMILES is required")
	}

	data := &model.Reagent{
		MolecularWeight: *req.MolecularWeight,
		Density:         req.Density,
	}
	if name != "" {
		data.Name = &name
	}
	if smiles != "" {
		result, err := r.canonicalizer.Canonicalize(ctx, smiles)
		if err != nil {
			return nil, err
		}
		data.CanonicalSmiles = &result.CanonicalSMILES
	}
	if name != "" {
		// 尽力补充公共化合物库的属性，失败不阻断入库
		if info, err := r.pubchem.GetCompoundByName(ctx, name); err == nil {
			if raw, err := json.Marshal(info); err == nil {
				data.Properties = datatypes.JSON(raw)
			}
		} else if !errors.Is(err, code.CompoundNotFoundErr) {
			logger.Warnf(ctx, "lookup compound %s fail: %+v", name, err)
		}
	}

	if err := r.reagentStore.CreateReagent(ctx, data); err != nil {
		if errors.Is(err, code.DataExistErr) {
			ident := name
			if ident == "" {
				ident = smiles
			}
			return nil, code.ReagentExistErr.WithMsgf("Reagent %s already stored", ident)
		}
		return nil, err
	}
	return &core.ReagentWrap{Reagent: toResp(data)}, nil
}

func (r *reagentImpl) Find(ctx context.Context, req *core.FindReq) (*core.ReagentWrap, error) {
	smiles := strings.TrimSpace(req.SMILES)
	name := strings.ToLower(strings.TrimSpace(req.Name))

	var (
		data *model.Reagent
		err  error
	)
	switch {
	case smiles != "":
		// 按标准化后的结构做等价比较
		result, cErr := r.canonicalizer.Canonicalize(ctx, smiles)
		if cErr != nil {
			return nil, cErr
		}
		data, err = r.reagentStore.FindByCanonicalSmiles(ctx, result.CanonicalSMILES)
	case name != "":
		data, err = r.reagentStore.FindByName(ctx, name)
	default:
		return nil, code.ParamErr.WithMsg("name or smiles is required")
	}

	if err != nil {
		if errors.Is(err, code.RecordNotFound) {
			return &core.ReagentWrap{Reagent: nil}, nil
		}
		return nil, err
	}
	return &core.ReagentWrap{Reagent: toResp(data)}, nil
}

func (r *reagentImpl) SimilarByName(ctx context.Context, req *core.SimilarReq) (*core.ListResp, error) {
	prefix := strings.ToLower(strings.TrimSpace(req.Name))
	if prefix == "" {
		return nil, code.ParamErr.WithMsg("name is required")
	}
	datas, err := r.reagentStore.SimilarByName(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return &core.ListResp{Reagents: utils.Slice(datas, toResp)}, nil
}

func (r *reagentImpl) LookupCompound(ctx context.Context, req *core.LookupReq) (*core.CompoundResp, error) {
	info, err := r.pubchem.GetCompoundByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &core.CompoundResp{
		Name:             info.Name,
		MolecularFormula: info.MolecularFormula,
		MolecularWeight:  info.MolecularWeight,
		SMILES:           info.SMILES,
	}, nil
}

func toResp(data *model.Reagent) *core.ReagentResp {
	return &core.ReagentResp{
		ID:              data.ID,
		Name:            data.Name,
		CanonicalSMILES: data.CanonicalSmiles,
		MolecularWeight: data.MolecularWeight,
		Density:         data.Density,
		Properties:      json.RawMessage(data.Properties),
	}
}
