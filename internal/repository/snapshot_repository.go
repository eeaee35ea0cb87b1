package repository

import (
	"encoding/json"
	"errors"
	"time"

	"studytrack_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository 按字符串键存取各状态机的 JSON 快照
type SnapshotRepository struct {
	DB *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db}
}

// Get 读取快照并反序列化到 out，快照不存在时返回 false
// 快照损坏视同读取失败，由调用方回退到默认状态
func (r *SnapshotRepository) Get(key string, out interface{}) (bool, error) {
	var snapshot model.Snapshot
	err := r.DB.Where("key = ?", key).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(snapshot.Value), out); err != nil {
		return false, err
	}
	return true, nil
}

// Set 序列化并落盘快照，存在则覆盖
func (r *SnapshotRepository) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	snapshot := model.Snapshot{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snapshot).Error
}

// Remove 删除快照，键不存在时不报错
func (r *SnapshotRepository) Remove(key string) error {
	return r.DB.Where("key = ?", key).Delete(&model.Snapshot{}).Error
}
