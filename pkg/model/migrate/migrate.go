package migrate

import (
	// 外部依赖
	"context"

	// 内部引用
	db "github.com/openbench/labbook/pkg/middleware/db"
	model "github.com/openbench/labbook/pkg/model"
	utils "github.com/openbench/labbook/pkg/utils"
)

func Table(_ context.Context) error {
	return utils.IfErrReturn(func() error {
		return db.DB().DBIns().AutoMigrate(
			&model.Project{},           // 项目树
			&model.Experiment{},        // 实验记录
			&model.Reagent{},           // 试剂注册表
			&model.ExperimentReagent{}, // 实验-试剂关联
		)
	}, func() error {
		// 名称前缀检索
		return db.DB().DBIns().Exec(`CREATE INDEX IF NOT EXISTS idx_reagent_name_pattern ON reagent (name text_pattern_ops);`).Error
	})
}
