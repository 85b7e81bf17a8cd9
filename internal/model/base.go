package model

import "time"

// BaseModel 通用时间戳字段（聚合根模型嵌入，子表 Meal/AbsenceRecord 不带）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
