package service

import (
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"
	"time"
)

// DashboardService 聚合四个状态机的只读概览
type DashboardService struct {
	study    *StudySessionService
	quiz     *QuizService
	streak   *StreakService
	pomodoro *PomodoroService
	cards    CardCatalog
	now      func() time.Time
}

// Dashboard 学习看板
type Dashboard struct {
	CurrentStreak         int                 `json:"currentStreak"`
	HighestStreak         int                 `json:"highestStreak"`
	TotalActivities       int                 `json:"totalActivities"`
	TotalCards            int64               `json:"totalCards"`
	MasteredCount         int                 `json:"masteredCount"`
	ReviewingCount        int                 `json:"reviewingCount"`
	DailyQuizCompleted    bool                `json:"dailyQuizCompleted"`
	LastDailyScore        int                 `json:"lastDailyScore"`
	CompletedWorkSessions int                 `json:"completedWorkSessions"`
	FocusMinutes          int                 `json:"focusMinutes"`
	TodayActivity         model.DailyActivity `json:"todayActivity"`
}

func NewDashboardService(study *StudySessionService, quiz *QuizService, streak *StreakService, pomodoro *PomodoroService, cards CardCatalog) *DashboardService {
	return &DashboardService{
		study:    study,
		quiz:     quiz,
		streak:   streak,
		pomodoro: pomodoro,
		cards:    cards,
		now:      time.Now,
	}
}

func (s *DashboardService) GetDashboard() (*Dashboard, error) {
	totalCards, err := s.cards.Count()
	if err != nil {
		return nil, err
	}

	streakState := s.streak.State()
	progress := s.study.Progress()
	pomodoroState := s.pomodoro.State()
	settings := s.pomodoro.Settings()

	today, _ := s.streak.ActivityForDate(util.DateString(s.now()))

	return &Dashboard{
		CurrentStreak:         streakState.CurrentStreak,
		HighestStreak:         streakState.HighestStreak,
		TotalActivities:       s.streak.TotalActivities(),
		TotalCards:            totalCards,
		MasteredCount:         len(progress.MasteredIDs),
		ReviewingCount:        len(progress.ReviewingIDs),
		DailyQuizCompleted:    s.quiz.IsDailyQuizCompletedToday(),
		LastDailyScore:        s.quiz.LastDailyScore(),
		CompletedWorkSessions: pomodoroState.CompletedWorkSessions,
		FocusMinutes:          pomodoroState.CompletedWorkSessions * settings.WorkMinutes,
		TodayActivity:         today,
	}, nil
}
