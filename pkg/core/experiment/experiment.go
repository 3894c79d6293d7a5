package experiment

import (
	// 外部依赖
	"context"
)

// Service 实验业务接口
type Service interface {
	// Create 在指定项目下创建实验
	Create(ctx context.Context, req *CreateReq) (*ExperimentWrap, error)
	// ByID 查询实验及其全部试剂分配
	ByID(ctx context.Context, req *IDReq) (*ExperimentWrap, error)
	// AssignReagent 将登记过的试剂分配到实验
	AssignReagent(ctx context.Context, req *AssignReq) (*ExperimentWrap, error)
}
