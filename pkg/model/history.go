package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type History struct {
	BaseModel
	ObjectID    uuid.UUID      `json:"object_id" sql:"index" gorm:"column:object_id;type:uuid;not null;" valid:"Required"` // store_id | session_id
	ObjectTable string         `json:"object_table" sql:"index" gorm:"column:object_table;not null;" valid:"Required"`
	Action      string         `json:"action" sql:"index" gorm:"column:action;not null;" valid:"Required"`
	Description string         `json:"description" gorm:"null"`
	Data        datatypes.JSON `json:"data" gorm:"type:jsonb;null"`
	Worker      string         `json:"worker" sql:"index" gorm:"column:worker;not null;" valid:"Required"`
}

func (History) TableName() string {
	return "history"
}
