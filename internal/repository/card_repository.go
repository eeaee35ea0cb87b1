package repository

import (
	"errors"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"

	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{DB: db}
}

// List 按类别与难度过滤卡片，"all" 表示不过滤，按ID稳定排序
func (r *CardRepository) List(category, difficulty string) ([]model.StudyCard, error) {
	query := r.DB.Model(&model.StudyCard{})
	if category != "" && category != util.FilterAll {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" && difficulty != util.FilterAll {
		query = query.Where("difficulty = ?", difficulty)
	}

	var cards []model.StudyCard
	err := query.Order("id").Find(&cards).Error
	return cards, err
}

func (r *CardRepository) FindByID(id string) (*model.StudyCard, error) {
	var card model.StudyCard
	err := r.DB.Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudyCard{}).Count(&count).Error
	return count, err
}
