package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 各状态机持久化快照的存储键
const (
	SnapshotKeyStudySession     = "study-session"
	SnapshotKeyQuizState        = "quiz-state"
	SnapshotKeyStreakState      = "streak-state"
	SnapshotKeyPomodoroState    = "pomodoro-state"
	SnapshotKeyPomodoroSettings = "pomodoro-settings"
)

// 学习模式
const (
	StudyModeSequential = "sequential"
	StudyModeRandom     = "random"
	StudyModeReview     = "review"
)

// 番茄钟阶段
const (
	SessionKindWork       = "work"
	SessionKindShortBreak = "shortBreak"
	SessionKindLongBreak  = "longBreak"
)

// 日历活动类型
const (
	ActivityFlashcards = "flashcards"
	ActivityQuizzes    = "quizzes"
	ActivityPomodoros  = "pomodoros"
)

const FilterAll = "all"
