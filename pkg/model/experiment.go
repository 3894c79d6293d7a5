package model

// ReactionSchemeLocation 试剂在反应式中的摆放位置
type ReactionSchemeLocation string

const (
	LeftSide   ReactionSchemeLocation = "LEFT_SIDE"
	AboveArrow ReactionSchemeLocation = "ABOVE_ARROW"
	BelowArrow ReactionSchemeLocation = "BELOW_ARROW"
	RightSide  ReactionSchemeLocation = "RIGHT_SIDE"
)

func (l ReactionSchemeLocation) Valid() bool {
	switch l {
	case LeftSide, AboveArrow, BelowArrow, RightSide:
		return true
	}
	return false
}

type Experiment struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	ParentID int64  `gorm:"not null;index:idx_experiment_parent_id" json:"parent_id"`

	Parent   *Project            `gorm:"foreignKey:ParentID" json:"-"`
	Reagents []ExperimentReagent `gorm:"foreignKey:ExperimentID" json:"reagents,omitempty"`
}

func (*Experiment) TableName() string { return "experiment" }

// ExperimentReagent 实验与试剂的关联，(experiment_id, reagent_id) 唯一
type ExperimentReagent struct {
	BaseModel
	ExperimentID           int64                  `gorm:"not null;uniqueIndex:idx_experiment_reagent" json:"experiment_id"`
	ReagentID              int64                  `gorm:"not null;uniqueIndex:idx_experiment_reagent" json:"reagent_id"`
	ReactionSchemeLocation ReactionSchemeLocation `gorm:"type:varchar(32);not null" json:"reaction_scheme_location"`
	Equivalents            float64                `gorm:"type:numeric(12,4);not null;check:equivalents > 0" json:"equivalents"`

	Experiment *Experiment `gorm:"foreignKey:ExperimentID" json:"-"`
	Reagent    *Reagent    `gorm:"foreignKey:ReagentID" json:"reagent,omitempty"`
}

func (*ExperimentReagent) TableName() string { return "experiment_reagent" }
