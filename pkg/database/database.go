package database

import (
	"log"

	"studytrack_backend/internal/config"
	"studytrack_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Snapshot{},
		&model.StudyCard{},
		&model.QuizQuestion{},
		&model.Quote{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedContent(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedContent 内容目录为只读素材，仅在空库时灌入
func seedContent(db *gorm.DB) error {
	var cardCount int64
	db.Model(&model.StudyCard{}).Count(&cardCount)
	if cardCount == 0 {
		for _, card := range defaultCards {
			if err := db.Create(&card).Error; err != nil {
				return err
			}
		}
	}

	var questionCount int64
	db.Model(&model.QuizQuestion{}).Count(&questionCount)
	if questionCount == 0 {
		for _, q := range defaultQuestions {
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
	}

	var quoteCount int64
	db.Model(&model.Quote{}).Count(&quoteCount)
	if quoteCount == 0 {
		for i, q := range defaultQuotes {
			q.IsEnabled = true
			q.IsCurrentlyUsed = i == 0
			if err := db.Create(&q).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
