package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDay(day int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, day, 10, 0, 0, 0, time.Local)
	}
}

func TestStreakFirstActivityStartsAtOne(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())
	s.now = fixedDay(1)

	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	state := s.State()
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 1, state.HighestStreak)
	assert.Equal(t, "2026-03-01", state.LastActivityDate)
}

func TestStreakConsecutiveDayIncrements(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())

	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	s.now = fixedDay(2)
	require.NoError(t, s.RecordActivity(util.ActivityQuizzes, 1))

	state := s.State()
	assert.Equal(t, 2, state.CurrentStreak)
	assert.Equal(t, 2, state.HighestStreak)
}

func TestStreakSurvivesDaylightSavingSwitch(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	s := NewStreakService(newMemSnapshotStore())

	// 2026-03-08 美东进入夏令时：连续两天打卡必须加一，隔一天必须归一
	s.now = func() time.Time { return time.Date(2026, 3, 7, 20, 0, 0, 0, loc) }
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))
	s.now = func() time.Time { return time.Date(2026, 3, 8, 20, 0, 0, 0, loc) }
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	assert.Equal(t, 2, s.State().CurrentStreak)

	s.now = func() time.Time { return time.Date(2026, 3, 10, 20, 0, 0, 0, loc) }
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))
	assert.Equal(t, 1, s.State().CurrentStreak)
}

func TestStreakGapResetsToOne(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())

	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))
	s.now = fixedDay(2)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	// 3月3日无活动，3月4日归1
	s.now = fixedDay(4)
	require.NoError(t, s.RecordActivity(util.ActivityPomodoros, 1))

	state := s.State()
	assert.Equal(t, 1, state.CurrentStreak)
	assert.Equal(t, 2, state.HighestStreak, "highest keeps the prior run")
}

func TestStreakSameDayDoesNotDoubleCount(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())
	s.now = fixedDay(5)

	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))
	require.NoError(t, s.RecordActivity(util.ActivityQuizzes, 1))
	require.NoError(t, s.RecordActivity(util.ActivityPomodoros, 3))

	state := s.State()
	assert.Equal(t, 1, state.CurrentStreak)

	activity, ok := s.ActivityForDate("2026-03-05")
	require.True(t, ok)
	assert.Equal(t, 1, activity.Flashcards)
	assert.Equal(t, 1, activity.Quizzes)
	assert.Equal(t, 3, activity.Pomodoros)
}

func TestStreakInvalidKindRejected(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())

	err := s.RecordActivity("swimming", 1)
	assert.ErrorIs(t, err, util.ErrInvalidActivity)
}

func TestStreakZeroCountTreatedAsOne(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())
	s.now = fixedDay(7)

	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 0))

	activity, ok := s.ActivityForDate("2026-03-07")
	require.True(t, ok)
	assert.Equal(t, 1, activity.Flashcards)
}

func TestStreakTotalActivitiesFoldsCalendar(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())

	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 2))
	s.now = fixedDay(2)
	require.NoError(t, s.RecordActivity(util.ActivityQuizzes, 1))
	require.NoError(t, s.RecordActivity(util.ActivityPomodoros, 1))

	assert.Equal(t, 4, s.TotalActivities())
}

func TestStreakStatePersistsAcrossRestart(t *testing.T) {
	store := newMemSnapshotStore()

	s := NewStreakService(store)
	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))
	s.now = fixedDay(2)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	reloaded := NewStreakService(store)
	state := reloaded.State()
	assert.Equal(t, 2, state.CurrentStreak)
	assert.Equal(t, "2026-03-02", state.LastActivityDate)
	assert.Len(t, state.Calendar, 2)
}

func TestStreakCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	store := newMemSnapshotStore()
	store.putRaw(util.SnapshotKeyStreakState, "{not json")

	s := NewStreakService(store)
	state := s.State()
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Empty(t, state.Calendar)
}

func TestStreakResetClearsEverything(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())
	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	s.ResetAll()

	state := s.State()
	assert.Equal(t, 0, state.CurrentStreak)
	assert.Equal(t, 0, state.HighestStreak)
	assert.Equal(t, "", state.LastActivityDate)
	assert.Empty(t, state.Calendar)
}

func TestStreakStateReturnsCopy(t *testing.T) {
	s := NewStreakService(newMemSnapshotStore())
	s.now = fixedDay(1)
	require.NoError(t, s.RecordActivity(util.ActivityFlashcards, 1))

	state := s.State()
	state.Calendar["2026-03-01"] = model.DailyActivity{Flashcards: 99}

	activity, _ := s.ActivityForDate("2026-03-01")
	assert.Equal(t, 1, activity.Flashcards)
}
