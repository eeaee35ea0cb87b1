package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(t *testing.T) (*QuizService, *recorderStub) {
	t.Helper()
	rec := &recorderStub{}
	s := NewQuizService(newMemSnapshotStore(), &fakeQuestionCatalog{questions: questionFixtures()}, rec, 3)
	return s, rec
}

func TestComputeScore(t *testing.T) {
	questions := questionFixtures()[:3] // 正确答案 0, 1, 2

	tests := []struct {
		name        string
		answers     []int
		wantScore   int
		wantCorrect int
	}{
		{"all correct", []int{0, 1, 2}, 100, 3},
		{"two of three rounds up", []int{0, 1, 0}, 67, 2},
		{"one of three", []int{0, 0, 0}, 33, 1},
		{"none correct", []int{2, 0, 1}, 0, 0},
		{"unanswered counts wrong", []int{0}, 33, 1},
		{"no answers at all", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct := ComputeScore(questions, tt.answers)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantCorrect, correct)
		})
	}

	score, correct := ComputeScore(nil, nil)
	assert.Equal(t, 0, score)
	assert.Equal(t, 0, correct)
}

func TestComputeScoreHalfRoundsUp(t *testing.T) {
	// 8题对1 = 12.5 → 13
	questions := make([]model.QuizQuestion, 8)
	for i := range questions {
		questions[i] = model.QuizQuestion{CorrectOption: 0}
	}
	answers := []int{0, 1, 1, 1, 1, 1, 1, 1}

	score, correct := ComputeScore(questions, answers)
	assert.Equal(t, 13, score)
	assert.Equal(t, 1, correct)
}

func TestDailyQuestionsStableWithinDay(t *testing.T) {
	s, _ := newQuizService(t)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }

	first, err := s.DailyQuestions()
	require.NoError(t, err)
	require.Len(t, first, 3)

	s.now = func() time.Time { return time.Date(2026, 3, 10, 22, 0, 0, 0, time.Local) }
	second, err := s.DailyQuestions()
	require.NoError(t, err)
	assert.Equal(t, first, second, "same day picks the same questions")
}

func TestDailyQuestionsCappedByBankSize(t *testing.T) {
	rec := &recorderStub{}
	s := NewQuizService(newMemSnapshotStore(), &fakeQuestionCatalog{questions: questionFixtures()[:2]}, rec, 3)

	questions, err := s.DailyQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestSelectAnswerGrowsVector(t *testing.T) {
	s, _ := newQuizService(t)

	require.NoError(t, s.SelectAnswer(2, 1))
	assert.Equal(t, []int{-1, -1, 1}, s.SelectedAnswers())

	// 覆盖已有选择
	require.NoError(t, s.SelectAnswer(0, 2))
	require.NoError(t, s.SelectAnswer(0, 0))
	assert.Equal(t, []int{0, -1, 1}, s.SelectedAnswers())
}

func TestSelectAnswerRejectsNegativeIndexes(t *testing.T) {
	s, _ := newQuizService(t)

	assert.ErrorIs(t, s.SelectAnswer(-1, 0), util.ErrInvalidAnswer)
	assert.ErrorIs(t, s.SelectAnswer(0, -1), util.ErrInvalidAnswer)
}

func TestSelectAnswerRejectsIndexBeyondDailyCount(t *testing.T) {
	s, _ := newQuizService(t)

	assert.ErrorIs(t, s.SelectAnswer(3, 0), util.ErrInvalidAnswer)
	assert.ErrorIs(t, s.SelectAnswer(5_000_000, 0), util.ErrInvalidAnswer)
	assert.Empty(t, s.SelectedAnswers(), "rejected writes must not grow the vector")
}

func TestDailyQuizGateMatchesExactDate(t *testing.T) {
	s, rec := newQuizService(t)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }

	assert.False(t, s.IsDailyQuizCompletedToday())

	s.CompleteDailyQuiz(67)
	assert.True(t, s.IsDailyQuizCompletedToday())
	assert.Equal(t, 67, s.LastDailyScore())
	assert.Empty(t, s.SelectedAnswers())
	assert.Equal(t, []string{util.ActivityQuizzes}, rec.recorded())

	// 次日闸门重新打开
	s.now = func() time.Time { return time.Date(2026, 3, 11, 9, 0, 0, 0, time.Local) }
	assert.False(t, s.IsDailyQuizCompletedToday())
}

func TestDailyQuizSameDayOverwritesScore(t *testing.T) {
	s, _ := newQuizService(t)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }

	s.CompleteDailyQuiz(33)
	s.CompleteDailyQuiz(100)

	assert.True(t, s.IsDailyQuizCompletedToday())
	assert.Equal(t, 100, s.LastDailyScore())
}

func TestCreateCustomQuizCopiesQuestions(t *testing.T) {
	s, _ := newQuizService(t)

	source := questionFixtures()[:2]
	quiz, err := s.CreateCustomQuiz("Logic drill", source)
	require.NoError(t, err)
	assert.Contains(t, quiz.ID, "custom-")
	assert.Equal(t, "Logic drill", quiz.Title)
	require.Len(t, quiz.Questions, 2)

	// 修改原序列不应影响已建测验
	source[0].Prompt = "mutated"
	source[0].Options[0] = "mutated"

	stored, err := s.GetCustomQuiz(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", stored.Questions[0].Prompt)
	assert.Equal(t, "a", stored.Questions[0].Options[0])
}

func TestCreateCustomQuizRejectsEmpty(t *testing.T) {
	s, _ := newQuizService(t)

	_, err := s.CreateCustomQuiz("Empty", nil)
	assert.ErrorIs(t, err, util.ErrEmptyQuiz)
}

func TestCustomQuizIDsAreUnique(t *testing.T) {
	s, _ := newQuizService(t)

	a, err := s.CreateCustomQuiz("A", questionFixtures()[:1])
	require.NoError(t, err)
	b, err := s.CreateCustomQuiz("B", questionFixtures()[:1])
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.CustomQuizzes(), 2)
}

func TestDeleteCustomQuizRemovesHistory(t *testing.T) {
	s, _ := newQuizService(t)

	quiz, err := s.CreateCustomQuiz("A", questionFixtures()[:1])
	require.NoError(t, err)
	_, err = s.RecordAttempt(quiz.ID, 80, 4, 5)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCustomQuiz(quiz.ID))

	_, err = s.GetCustomQuiz(quiz.ID)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
	assert.ErrorIs(t, s.DeleteCustomQuiz(quiz.ID), util.ErrQuizNotFound)
}

func TestRecordAttemptAppendsAndTracksCompletion(t *testing.T) {
	s, rec := newQuizService(t)

	quiz, err := s.CreateCustomQuiz("A", questionFixtures()[:2])
	require.NoError(t, err)

	first, err := s.RecordAttempt(quiz.ID, 50, 1, 2)
	require.NoError(t, err)
	assert.Contains(t, first.AttemptID, "attempt-")

	_, err = s.RecordAttempt(quiz.ID, 100, 2, 2)
	require.NoError(t, err)

	stored, err := s.GetCustomQuiz(quiz.ID)
	require.NoError(t, err)
	require.Len(t, stored.Attempts, 2)
	assert.Equal(t, 50, stored.Attempts[0].Score)
	assert.Equal(t, 100, stored.Attempts[1].Score)

	state := s.State()
	assert.Equal(t, []string{quiz.ID}, state.CompletedQuizIDs, "completion set stays deduplicated")
	assert.Equal(t, 100, state.LastScoreByQuizID[quiz.ID])
	assert.Equal(t, []string{util.ActivityQuizzes, util.ActivityQuizzes}, rec.recorded())
}

func TestRecordAttemptUnknownQuizFails(t *testing.T) {
	s, rec := newQuizService(t)

	_, err := s.RecordAttempt("custom-missing", 50, 1, 2)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
	assert.Empty(t, rec.recorded())
}

func TestAttemptStatsAggregation(t *testing.T) {
	s, _ := newQuizService(t)

	quiz, err := s.CreateCustomQuiz("A", questionFixtures()[:2])
	require.NoError(t, err)

	stats, err := s.AttemptStats(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, QuizAttemptStats{}, stats)

	for _, score := range []int{60, 90, 75} {
		_, err := s.RecordAttempt(quiz.ID, score, 0, 2)
		require.NoError(t, err)
	}

	stats, err = s.AttemptStats(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, stats.MaxScore)
	assert.Equal(t, 75, stats.MeanScore)
	assert.Equal(t, 3, stats.Count)

	_, err = s.AttemptStats("custom-missing")
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestQuizStatePersistsAcrossRestart(t *testing.T) {
	store := newMemSnapshotStore()
	catalog := &fakeQuestionCatalog{questions: questionFixtures()}

	s := NewQuizService(store, catalog, &recorderStub{}, 3)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }
	quiz, err := s.CreateCustomQuiz("A", questionFixtures()[:1])
	require.NoError(t, err)
	s.CompleteDailyQuiz(67)

	reloaded := NewQuizService(store, catalog, &recorderStub{}, 3)
	reloaded.now = s.now
	assert.True(t, reloaded.IsDailyQuizCompletedToday())
	assert.Equal(t, 67, reloaded.LastDailyScore())

	stored, err := reloaded.GetCustomQuiz(quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Title)
}
