package service

import (
	"sync"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"
	"studytrack_backend/pkg/logger"
	"studytrack_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// StreakService 维护学习日历与连续学习天数
type StreakService struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	state     *model.StreakState
	now       func() time.Time
}

func NewStreakService(snapshots SnapshotStore) *StreakService {
	s := &StreakService{
		snapshots: snapshots,
		now:       time.Now,
	}
	s.state = s.loadState()
	return s
}

func (s *StreakService) loadState() *model.StreakState {
	var state model.StreakState
	ok, err := s.snapshots.Get(util.SnapshotKeyStreakState, &state)
	if err != nil {
		logger.Log.Warn("streak snapshot unreadable, falling back to defaults", zap.Error(err))
	}
	if !ok || err != nil {
		return &model.StreakState{Calendar: map[string]model.DailyActivity{}}
	}
	if state.Calendar == nil {
		state.Calendar = map[string]model.DailyActivity{}
	}
	return &state
}

// RecordActivity 将今日某类活动计数加 count 并重算连续天数
// count 小于 1 时按 1 计
func (s *StreakService) RecordActivity(kind string, count int) error {
	if kind != util.ActivityFlashcards && kind != util.ActivityQuizzes && kind != util.ActivityPomodoros {
		return util.ErrInvalidActivity
	}
	if count < 1 {
		count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := util.DateString(s.now())

	activity := s.state.Calendar[today]
	switch kind {
	case util.ActivityFlashcards:
		activity.Flashcards += count
	case util.ActivityQuizzes:
		activity.Quizzes += count
	case util.ActivityPomodoros:
		activity.Pomodoros += count
	}
	s.state.Calendar[today] = activity

	s.updateStreak(today)
	s.persist()

	monitoring.ActivityCounter.WithLabelValues(kind).Inc()
	return nil
}

// updateStreak 依据上次活动日期重算连续天数
// 同一天多次活动不重复计数；隔天 +1；断档超过一天归 1
func (s *StreakService) updateStreak(today string) {
	prior := s.state.LastActivityDate

	switch {
	case prior == "":
		s.state.CurrentStreak = 1
	case prior == today:
		return
	case util.DayGap(prior, today) == 1:
		s.state.CurrentStreak++
	default:
		s.state.CurrentStreak = 1
	}

	if s.state.CurrentStreak > s.state.HighestStreak {
		s.state.HighestStreak = s.state.CurrentStreak
	}
	s.state.LastActivityDate = today
}

// State 返回当前状态的副本
func (s *StreakService) State() model.StreakState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.state
	out.Calendar = make(map[string]model.DailyActivity, len(s.state.Calendar))
	for date, activity := range s.state.Calendar {
		out.Calendar[date] = activity
	}
	return out
}

// ActivityForDate 查询指定日期的活动计数
func (s *StreakService) ActivityForDate(date string) (model.DailyActivity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.state.Calendar[date]
	return activity, ok
}

// TotalActivities 累加日历上所有计数，纯折叠不缓存
func (s *StreakService) TotalActivities() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, activity := range s.state.Calendar {
		total += activity.Flashcards + activity.Quizzes + activity.Pomodoros
	}
	return total
}

// ResetAll 清空连续天数与整个日历
func (s *StreakService) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &model.StreakState{Calendar: map[string]model.DailyActivity{}}
	s.persist()
}

func (s *StreakService) persist() {
	if err := s.snapshots.Set(util.SnapshotKeyStreakState, s.state); err != nil {
		logger.Log.Error("failed to persist streak snapshot", zap.Error(err))
	}
}
