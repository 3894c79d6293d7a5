package common

import (
	// 外部依赖
	gin "github.com/gin-gonic/gin"

	// 内部引用
	code "github.com/openbench/labbook/pkg/common/code"
)

// ErrResp 错误返回体，成功时直接返回业务数据
type ErrResp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// ReplyErr 按错误码写回 HTTP 状态与错误体
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	c := code.From(err)
	msg := c.Msg()
	if len(msgs) > 0 && msgs[0] != "" {
		msg = msgs[0]
	}
	ctx.AbortWithStatusJSON(c.HTTPStatus(), &ErrResp{
		Code: c.Code(),
		Msg:  msg,
	})
}

// ReplyOk 成功返回，data 缺省时仅回状态
func ReplyOk(ctx *gin.Context, datas ...any) {
	if len(datas) > 0 && datas[0] != nil {
		ctx.JSON(code.Success.HTTPStatus(), datas[0])
		return
	}
	ctx.JSON(code.Success.HTTPStatus(), &ErrResp{Code: code.Success.Code(), Msg: code.Success.Msg()})
}

// Reply 通用返回：err 非空走错误分支，否则返回 data
func Reply(ctx *gin.Context, err error, datas ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, datas...)
}
