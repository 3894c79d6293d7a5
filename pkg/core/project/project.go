package project

import (
	// 外部依赖
	"context"
)

// Service 项目树业务接口
//
// 所有方法均接受 context.Context，web 层可直接传入 *gin.Context
type Service interface {
	// Create 创建项目，image 为可选的反应式示意图原始字节
	Create(ctx context.Context, req *CreateReq, image []byte) (*ProjectWrap, error)
	// Roots 查询全部根项目
	Roots(ctx context.Context) (*ListResp, error)
	// ByID 查询项目及其直接子项目
	ByID(ctx context.Context, req *IDReq) (*ProjectWrap, error)
	// PathToRoot 查询自叶到根的祖先链（含自身）
	PathToRoot(ctx context.Context, req *IDReq) (*PathResp, error)
}
