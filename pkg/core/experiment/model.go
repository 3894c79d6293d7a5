package experiment

import (
	model "github.com/openbench/labbook/pkg/model"
)

type CreateReq struct {
	Name     string `json:"name" binding:"required"`
	ParentID int64  `json:"parentId" binding:"required"`
}

type IDReq struct {
	ID int64 `uri:"id" binding:"required"`
}

type AssignReq struct {
	ExperimentID           int64                        `json:"experimentId" binding:"required"`
	ReagentID              int64                        `json:"reagentId" binding:"required"`
	ReactionSchemeLocation model.ReactionSchemeLocation `json:"reactionSchemeLocation" binding:"required"`
	Equivalents            float64                      `json:"equivalents" binding:"required"`
}

type AssignmentResp struct {
	ID                     int64                        `json:"id"`
	ExperimentID           int64                        `json:"experimentId"`
	ReagentID              int64                        `json:"reagentId"`
	ReactionSchemeLocation model.ReactionSchemeLocation `json:"reactionSchemeLocation"`
	Equivalents            float64                      `json:"equivalents"`
}

type ExperimentResp struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	ParentID int64             `json:"parentId"`
	Reagents []*AssignmentResp `json:"reagents"`
}

type ExperimentWrap struct {
	Experiment *ExperimentResp `json:"experiment"`
}
