package model

import "time"

// Snapshot 各状态机序列化后的持久化快照，按字符串键存取
type Snapshot struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}
