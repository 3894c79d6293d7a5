package reagent

import (
	"encoding/json"
)

type AddReq struct {
	ReagentName     *string  `json:"reagentName"`
	CanonicalSMILES *string  `json:"canonicalSMILES"`
	MolecularWeight *float64 `json:"molecularWeight"`
	Density         *float64 `json:"density"`
}

type FindReq struct {
	Name   string `form:"name"`
	SMILES string `form:"smiles"`
}

type SimilarReq struct {
	Name string `form:"name" binding:"required"`
}

type LookupReq struct {
	Name string `form:"name" binding:"required"`
}

type ReagentResp struct {
	ID              int64           `json:"id"`
	Name            *string         `json:"name"`
	CanonicalSMILES *string         `json:"canonicalSMILES"`
	MolecularWeight float64         `json:"molecularWeight"`
	Density         *float64        `json:"density"`
	Properties      json.RawMessage `json:"properties,omitempty"`
}

// ReagentWrap 查询未命中时 Reagent 为 null，而非报错
type ReagentWrap struct {
	Reagent *ReagentResp `json:"reagent"`
}

type ListResp struct {
	Reagents []*ReagentResp `json:"reagents"`
}

type CompoundResp struct {
	Name             string  `json:"name"`
	MolecularFormula string  `json:"molecularFormula"`
	MolecularWeight  float64 `json:"molecularWeight"`
	SMILES           string  `json:"smiles"`
}
