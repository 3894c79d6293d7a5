package pubchem

import (
	// 外部依赖
	"context"
	"net/http"
	"strconv"
	"time"

	resty "github.com/go-resty/resty/v2"

	// 内部引用
	config "github.com/openbench/labbook/internal/config"
	code "github.com/openbench/labbook/pkg/common/code"
	logger "github.com/openbench/labbook/pkg/middleware/logger"
	repo "github.com/openbench/labbook/pkg/repo"
)

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	// PUG REST 以字符串返回分子量
	MolecularWeight string `json:"MolecularWeight"`
	IUPACName       string `json:"IUPACName"`
	IsomericSMILES  string `json:"IsomericSMILES"`
	CanonicalSMILES string `json:"CanonicalSMILES"`
	SMILES          string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
}

func NewPubChemRepo() repo.PubChemRepo {
	baseURL := config.Global().RPC.PubChem.Addr

	return &pubchemImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			EnableTrace().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (p *pubchemImpl) GetCompoundByName(ctx context.Context, name string) (*repo.CompoundInfo, error) {
	properties := "Title,MolecularFormula,MolecularWeight,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"
	urlPath := "/rest/pug/compound/name/{name}/property/{props}/JSON"

	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"props": properties,
			"name":  name,
		}).
		SetResult(propResp).
		Get(urlPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to request properties from PubChem: %v", err)
		return nil, code.RPCHttpErr.WithErr(err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, code.CompoundNotFoundErr.WithMsgf("compound %s not found", name)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, code.RPCHttpCodeErr.WithMsgf("PubChem property query failed: status %d", res.StatusCode())
	}

	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.RPCHttpRespErr.WithMsg("Failed to parse PubChem property response")
	}

	propData := propResp.PropertyTable.Properties[0]

	compoundName := propData.Title
	if compoundName == "" {
		compoundName = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}

	weight, err := strconv.ParseFloat(propData.MolecularWeight, 64)
	if err != nil {
		logger.Warnf(ctx, "parse PubChem molecular weight %q err: %v", propData.MolecularWeight, err)
	}

	return &repo.CompoundInfo{
		Name:             compoundName,
		MolecularFormula: propData.MolecularFormula,
		MolecularWeight:  weight,
		SMILES:           smiles,
	}, nil
}
