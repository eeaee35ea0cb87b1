package model

import "time"

// StudyCard 卡片内容，迁移时一次性灌入，运行期只读
// swagger:model StudyCard
type StudyCard struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Category        string `gorm:"index;not null" json:"category"`
	Difficulty      string `gorm:"index;not null" json:"difficulty"`
	Front           string `gorm:"type:text;not null" json:"front"`
	BackExplanation string `gorm:"type:text" json:"backExplanation"`
	BackExample     string `gorm:"type:text" json:"backExample"`
	Philosopher     string `json:"philosopher,omitempty"`
}

func (StudyCard) TableName() string {
	return "study_cards"
}

// QuizQuestion 题库中的单选题，运行期只读
// swagger:model QuizQuestion
type QuizQuestion struct {
	ID            string   `gorm:"primaryKey" json:"id"`
	Prompt        string   `gorm:"type:text;not null" json:"prompt"`
	Options       []string `gorm:"serializer:json" json:"options"`
	CorrectOption int      `gorm:"not null" json:"correctOption"`
	Explanation   string   `gorm:"type:text" json:"explanation"`
	Category      string   `gorm:"index" json:"category"`
	Difficulty    string   `gorm:"index" json:"difficulty"`
	Philosopher   string   `json:"philosopher,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// Quote 休息时展示的哲学名言
type Quote struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Text            string    `gorm:"type:text;not null" json:"text"`
	Author          string    `json:"author"`
	Era             string    `json:"era"`
	IsEnabled       bool      `gorm:"default:true" json:"isEnabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"isCurrentlyUsed"`
	LastUsedAt      time.Time `json:"lastUsedAt"`
}

func (Quote) TableName() string {
	return "quotes"
}
