package reagent

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/openbench/labbook/pkg/common"
	code "github.com/openbench/labbook/pkg/common/code"
	coreReagent "github.com/openbench/labbook/pkg/core/reagent"
	reagentImpl "github.com/openbench/labbook/pkg/core/reagent/reagent"
)

type Handle struct{ svc coreReagent.Service }

func NewHandle() *Handle { return &Handle{svc: reagentImpl.New()} }

func (h *Handle) Add(ctx *gin.Context) {
	in := &coreReagent.AddReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Add(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Find(ctx *gin.Context) {
	in := &coreReagent.FindReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Find(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Similar(ctx *gin.Context) {
	in := &coreReagent.SimilarReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.SimilarByName(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) LookupCompound(ctx *gin.Context) {
	in := &coreReagent.LookupReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.LookupCompound(ctx, in)
	common.Reply(ctx, err, resp)
}
