package reagent

import (
	// 外部依赖
	"context"
)

// Service 试剂注册表业务接口
type Service interface {
	// Add 登记试剂，名称小写入库，结构先经标准化
	Add(ctx context.Context, req *AddReq) (*ReagentWrap, error)
	// Find 按结构等价或精确名称查询，未命中时 reagent 置空
	Find(ctx context.Context, req *FindReq) (*ReagentWrap, error)
	// SimilarByName 按名称前缀检索
	SimilarByName(ctx context.Context, req *SimilarReq) (*ListResp, error)
	// LookupCompound 按化合物名称查询公共化合物库
	LookupCompound(ctx context.Context, req *LookupReq) (*CompoundResp, error)
}
