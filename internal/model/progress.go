package model

import "time"

// StudyProgress 学习会话状态快照
// MasteredIDs 与 ReviewingIDs 互斥；Cursor 始终落在当前过滤视图范围内
type StudyProgress struct {
	MasteredIDs      []string `json:"masteredIds"`
	ReviewingIDs     []string `json:"reviewingIds"`
	Cursor           int      `json:"cursor"`
	CategoryFilter   string   `json:"categoryFilter"`
	DifficultyFilter string   `json:"difficultyFilter"`
	Mode             string   `json:"mode"`
	// 随机模式下固定的卡片顺序，切换过滤条件或模式时重新洗牌
	ShuffledIDs []string `json:"shuffledIds,omitempty"`
}

// QuizAttempt 单次测验成绩，创建后不可变
type QuizAttempt struct {
	AttemptID    string    `json:"attemptId"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correctCount"`
	TotalCount   int       `json:"totalCount"`
	CompletedAt  time.Time `json:"completedAt"`
}

// CustomQuiz 用户自建测验，题目在创建时快照，后续题库变更不影响
type CustomQuiz struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"createdAt"`
	Questions []QuizQuestion `json:"questions"`
	Attempts  []QuizAttempt  `json:"attempts"`
}

// QuizState 测验引擎状态快照
type QuizState struct {
	DailyQuizCompletedDate string         `json:"dailyQuizCompletedDate"`
	LastDailyScore         int            `json:"lastDailyScore"`
	SelectedAnswers        []int          `json:"selectedAnswers"`
	CustomQuizzes          []CustomQuiz   `json:"customQuizzes"`
	CompletedQuizIDs       []string       `json:"completedQuizIds"`
	LastScoreByQuizID      map[string]int `json:"lastScoreByQuizId"`
}

// DailyActivity 单日活动计数，各计数器在当日内单调不减
type DailyActivity struct {
	Flashcards int `json:"flashcards"`
	Quizzes    int `json:"quizzes"`
	Pomodoros  int `json:"pomodoros"`
}

// StreakState 连续学习天数状态快照
type StreakState struct {
	CurrentStreak    int                      `json:"currentStreak"`
	HighestStreak    int                      `json:"highestStreak"`
	LastActivityDate string                   `json:"lastActivityDate"`
	Calendar         map[string]DailyActivity `json:"calendar"`
}

// PomodoroSettings 番茄钟配置，独立于运行状态持久化
type PomodoroSettings struct {
	WorkMinutes            int  `json:"workMinutes"`
	ShortBreakMinutes      int  `json:"shortBreakMinutes"`
	LongBreakMinutes       int  `json:"longBreakMinutes"`
	SessionsUntilLongBreak int  `json:"sessionsUntilLongBreak"`
	SoundEnabled           bool `json:"soundEnabled"`
}

// PomodoroState 番茄钟运行状态快照
// LastUpdated 为最近一次落盘的毫秒时间戳，重启后据此折算离线经过的秒数
type PomodoroState struct {
	SessionKind           string `json:"sessionKind"`
	SecondsRemaining      int    `json:"secondsRemaining"`
	IsRunning             bool   `json:"isRunning"`
	CompletedWorkSessions int    `json:"completedWorkSessions"`
	LastUpdated           int64  `json:"lastUpdated"`
}
