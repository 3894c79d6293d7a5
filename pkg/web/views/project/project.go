package project

import (
	// 外部依赖
	"io"

	gin "github.com/gin-gonic/gin"

	// 内部引用
	common "github.com/openbench/labbook/pkg/common"
	code "github.com/openbench/labbook/pkg/common/code"
	coreProject "github.com/openbench/labbook/pkg/core/project"
	projectImpl "github.com/openbench/labbook/pkg/core/project/project"
)

type Handle struct{ svc coreProject.Service }

func NewHandle() *Handle { return &Handle{svc: projectImpl.New()} }

// Create 接收 multipart 表单：name、parentId（可选）、projectImage（可选）
func (h *Handle) Create(ctx *gin.Context) {
	in := &coreProject.CreateReq{}
	if err := ctx.ShouldBind(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	var image []byte
	if file, err := ctx.FormFile("projectImage"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			common.ReplyErr(ctx, code.ProjectImageErr.WithErr(err))
			return
		}
		defer func() { _ = f.Close() }()
		image, err = io.ReadAll(f)
		if err != nil {
			common.ReplyErr(ctx, code.ProjectImageErr.WithErr(err))
			return
		}
	}

	resp, err := h.svc.Create(ctx, in, image)
	common.Reply(ctx, err, resp)
}

func (h *Handle) List(ctx *gin.Context) {
	resp, err := h.svc.Roots(ctx)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Get(ctx *gin.Context) {
	in := &coreProject.IDReq{}
	if err := ctx.ShouldBindUri(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.ByID(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) PathToProject(ctx *gin.Context) {
	in := &coreProject.IDReq{}
	if err := ctx.ShouldBindUri(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.PathToRoot(ctx, in)
	common.Reply(ctx, err, resp)
}
