package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregatesAllStateMachines(t *testing.T) {
	store := newMemSnapshotStore()
	cards := &fakeCardCatalog{cards: cardFixtures()}
	questions := &fakeQuestionCatalog{questions: questionFixtures()}
	clock := func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }

	streak := NewStreakService(store)
	streak.now = clock
	study := NewStudySessionService(store, cards, streak)
	quiz := NewQuizService(store, questions, streak, 3)
	quiz.now = clock
	pomodoro := newPomodoroForTest(store, streak, &notifierStub{}, clock)

	require.NoError(t, study.MarkMastered("c1"))
	require.NoError(t, study.MarkMastered("c2"))
	require.NoError(t, study.MarkForReview("c3"))
	quiz.CompleteDailyQuiz(67)
	pomodoro.state.IsRunning = true
	pomodoro.state.SecondsRemaining = 1
	pomodoro.tick()

	svc := NewDashboardService(study, quiz, streak, pomodoro, cards)
	svc.now = clock

	dashboard, err := svc.GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.CurrentStreak)
	assert.Equal(t, int64(5), dashboard.TotalCards)
	assert.Equal(t, 2, dashboard.MasteredCount)
	assert.Equal(t, 1, dashboard.ReviewingCount)
	assert.True(t, dashboard.DailyQuizCompleted)
	assert.Equal(t, 67, dashboard.LastDailyScore)
	assert.Equal(t, 1, dashboard.CompletedWorkSessions)
	assert.Equal(t, 25, dashboard.FocusMinutes)

	// 3次卡片 + 1次测验 + 1次番茄钟
	assert.Equal(t, 5, dashboard.TotalActivities)
	assert.Equal(t, 3, dashboard.TodayActivity.Flashcards)
	assert.Equal(t, 1, dashboard.TodayActivity.Quizzes)
	assert.Equal(t, 1, dashboard.TodayActivity.Pomodoros)
}

func TestNotifierKeepsMostRecentFirst(t *testing.T) {
	n := NewLogNotifier()

	n.Notify(Notification{Kind: "pomodoro", Message: "first"})
	n.Notify(Notification{Kind: "pomodoro", Message: "second"})

	recent := n.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Message)
	assert.Equal(t, "first", recent[1].Message)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestNotifierRingDropsOldest(t *testing.T) {
	n := NewLogNotifier()
	n.limit = 3

	for _, msg := range []string{"a", "b", "c", "d"} {
		n.Notify(Notification{Kind: "pomodoro", Message: msg})
	}

	recent := n.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "b", recent[2].Message)
}

// 卡片、测验、番茄钟共用同一份打卡日历
func TestActivityKindsShareOneCalendar(t *testing.T) {
	store := newMemSnapshotStore()
	streak := NewStreakService(store)
	streak.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }

	require.NoError(t, streak.RecordActivity(util.ActivityFlashcards, 1))
	require.NoError(t, streak.RecordActivity(util.ActivityQuizzes, 1))
	require.NoError(t, streak.RecordActivity(util.ActivityPomodoros, 1))

	activity, ok := streak.ActivityForDate("2026-03-10")
	require.True(t, ok)
	assert.Equal(t, 1, activity.Flashcards)
	assert.Equal(t, 1, activity.Quizzes)
	assert.Equal(t, 1, activity.Pomodoros)
	assert.Equal(t, 1, streak.State().CurrentStreak)
}
