package model

type Project struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null;index:idx_project_name" json:"name"`
	ParentID *int64 `gorm:"index:idx_project_parent_id" json:"parent_id"`
	// 反应式示意图，入库前已缩放到 300x300 以内
	Image []byte `gorm:"type:bytea" json:"-"`

	Parent   *Project  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Project `gorm:"foreignKey:ParentID" json:"-"`
}

func (*Project) TableName() string { return "project" }
