package repository

import (
	"time"

	"studytrack_backend/internal/model"

	"gorm.io/gorm"
)

type QuoteRepository struct {
	DB *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

// 获取启用的名言
func (r *QuoteRepository) GetEnabled() ([]*model.Quote, error) {
	var quotes []*model.Quote
	err := r.DB.Where("is_enabled = ?", true).Find(&quotes).Error
	return quotes, err
}

// 获取当前展示的名言
func (r *QuoteRepository) GetCurrent() (*model.Quote, error) {
	var quote model.Quote
	err := r.DB.Where("is_currently_used = ?", true).First(&quote).Error
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// 设置当前展示的名言
func (r *QuoteRepository) SetCurrent(id uint) error {
	tx := r.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&model.Quote{}).Where("is_currently_used = ?", true).Update("is_currently_used", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&model.Quote{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_currently_used": true,
		"last_used_at":      time.Now(),
	}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
