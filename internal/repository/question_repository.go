package repository

import (
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// List 按类别与难度过滤题目，"all" 表示不过滤
func (r *QuestionRepository) List(category, difficulty string) ([]model.QuizQuestion, error) {
	query := r.DB.Model(&model.QuizQuestion{})
	if category != "" && category != util.FilterAll {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" && difficulty != util.FilterAll {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []model.QuizQuestion
	err := query.Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByIDs(ids []string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizQuestion{}).Count(&count).Error
	return count, err
}
