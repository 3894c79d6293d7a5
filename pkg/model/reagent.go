package model

import (
	// 外部依赖
	datatypes "gorm.io/datatypes"
)

type Reagent struct {
	BaseModel
	// 名称小写入库，唯一
	Name *string `gorm:"type:varchar(255);uniqueIndex:idx_reagent_name" json:"name"`
	// RDKit 标准化后的 SMILES，结构等价查询的主键
	CanonicalSmiles *string  `gorm:"type:text;uniqueIndex:idx_reagent_smiles" json:"canonical_smiles"`
	MolecularWeight float64  `gorm:"type:numeric(12,4);not null" json:"molecular_weight"`
	Density         *float64 `gorm:"type:numeric(12,4)" json:"density"`
	// PubChem 补充信息（分子式、IUPAC 名等）
	Properties datatypes.JSON `json:"properties,omitempty"`
}

func (*Reagent) TableName() string { return "reagent" }
