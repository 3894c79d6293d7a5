package experiment

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/openbench/labbook/pkg/common"
	code "github.com/openbench/labbook/pkg/common/code"
	coreExperiment "github.com/openbench/labbook/pkg/core/experiment"
	experimentImpl "github.com/openbench/labbook/pkg/core/experiment/experiment"
)

type Handle struct{ svc coreExperiment.Service }

func NewHandle() *Handle { return &Handle{svc: experimentImpl.New()} }

func (h *Handle) Create(ctx *gin.Context) {
	in := &coreExperiment.CreateReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Create(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	in := &coreExperiment.IDReq{}
	if err := ctx.ShouldBindUri(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.ByID(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) AssignReagent(ctx *gin.Context) {
	in := &coreExperiment.AssignReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.AssignReagent(ctx, in)
	common.Reply(ctx, err, resp)
}
