package service

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"
	"studytrack_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizService 测验引擎：每日测验闸门、自建测验与只增不改的成绩历史
type QuizService struct {
	mu         sync.Mutex
	snapshots  SnapshotStore
	questions  QuestionCatalog
	streak     ActivityRecorder
	state      *model.QuizState
	dailyCount int
	now        func() time.Time
}

// QuizAttemptStats 某测验全部成绩的聚合，纯推导不缓存
type QuizAttemptStats struct {
	MaxScore  int `json:"maxScore"`
	MeanScore int `json:"meanScore"`
	Count     int `json:"count"`
}

func NewQuizService(snapshots SnapshotStore, questions QuestionCatalog, streak ActivityRecorder, dailyCount int) *QuizService {
	if dailyCount < 1 {
		dailyCount = 3
	}
	s := &QuizService{
		snapshots:  snapshots,
		questions:  questions,
		streak:     streak,
		dailyCount: dailyCount,
		now:        time.Now,
	}
	s.state = s.loadState()
	return s
}

func (s *QuizService) loadState() *model.QuizState {
	var state model.QuizState
	ok, err := s.snapshots.Get(util.SnapshotKeyQuizState, &state)
	if err != nil {
		logger.Log.Warn("quiz snapshot unreadable, falling back to defaults", zap.Error(err))
	}
	if !ok || err != nil {
		return &model.QuizState{LastScoreByQuizID: map[string]int{}}
	}
	if state.LastScoreByQuizID == nil {
		state.LastScoreByQuizID = map[string]int{}
	}
	return &state
}

// DailyQuestions 返回今日测验的题目
// 以日期串为随机种子选题，保证当日内题目集合稳定
func (s *QuizService) DailyQuestions() ([]model.QuizQuestion, error) {
	bank, err := s.questions.List(util.FilterAll, util.FilterAll)
	if err != nil {
		return nil, err
	}
	if len(bank) == 0 {
		return []model.QuizQuestion{}, nil
	}

	h := fnv.New64a()
	h.Write([]byte(util.DateString(s.now())))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	count := s.dailyCount
	if count > len(bank) {
		count = len(bank)
	}

	picked := make([]model.QuizQuestion, 0, count)
	for _, i := range rng.Perm(len(bank))[:count] {
		picked = append(picked, bank[i])
	}
	return picked, nil
}

// SelectAnswer 记录第 questionIndex 题的选项，可重复调用覆盖之前的选择
// 题号上限为每日题数，作答向量不会超过它增长
func (s *QuizService) SelectAnswer(questionIndex, optionIndex int) error {
	if questionIndex < 0 || questionIndex >= s.dailyCount || optionIndex < 0 {
		return util.ErrInvalidAnswer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.state.SelectedAnswers) <= questionIndex {
		s.state.SelectedAnswers = append(s.state.SelectedAnswers, -1)
	}
	s.state.SelectedAnswers[questionIndex] = optionIndex
	s.persist()
	return nil
}

// SelectedAnswers 当前作答向量的副本，未作答的位置为 -1
func (s *QuizService) SelectedAnswers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int{}, s.state.SelectedAnswers...)
}

// ComputeScore 计算百分制得分，四舍五入（.5 向上）
// 空题目序列由调用方在构造时排除，这里按 0 分返回
func ComputeScore(questions []model.QuizQuestion, answers []int) (score, correct int) {
	if len(questions) == 0 {
		return 0, 0
	}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectOption {
			correct++
		}
	}
	score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return score, correct
}

// IsDailyQuizCompletedToday 今日测验是否已完成，仅当存储日期与今天完全一致
func (s *QuizService) IsDailyQuizCompletedToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DailyQuizCompletedDate == util.DateString(s.now())
}

// CompleteDailyQuiz 盖上今日完成戳并记录得分
// 同日重复调用覆盖得分，完成状态不变
func (s *QuizService) CompleteDailyQuiz(score int) {
	s.mu.Lock()
	s.state.DailyQuizCompletedDate = util.DateString(s.now())
	s.state.LastDailyScore = score
	s.state.SelectedAnswers = nil
	s.persist()
	s.mu.Unlock()

	if err := s.streak.RecordActivity(util.ActivityQuizzes, 1); err != nil {
		logger.Log.Warn("failed to record quiz activity", zap.Error(err))
	}
}

// LastDailyScore 最近一次每日测验得分
func (s *QuizService) LastDailyScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastDailyScore
}

// CreateCustomQuiz 创建自建测验
// 题目序列做防御性拷贝，之后题库变更不影响已建测验
func (s *QuizService) CreateCustomQuiz(title string, questions []model.QuizQuestion) (*model.CustomQuiz, error) {
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuiz
	}

	quiz := model.CustomQuiz{
		ID:        "custom-" + uuid.NewString(),
		Title:     title,
		CreatedAt: s.now(),
		Questions: copyQuestions(questions),
		Attempts:  []model.QuizAttempt{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CustomQuizzes = append(s.state.CustomQuizzes, quiz)
	s.persist()

	out := quiz
	return &out, nil
}

// CustomQuizzes 全部自建测验的副本
func (s *QuizService) CustomQuizzes() []model.CustomQuiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CustomQuiz, len(s.state.CustomQuizzes))
	copy(out, s.state.CustomQuizzes)
	return out
}

// GetCustomQuiz 按ID查找自建测验
func (s *QuizService) GetCustomQuiz(id string) (*model.CustomQuiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, quiz := range s.state.CustomQuizzes {
		if quiz.ID == id {
			out := quiz
			return &out, nil
		}
	}
	return nil, util.ErrQuizNotFound
}

// DeleteCustomQuiz 删除测验及其全部成绩历史，不可恢复
func (s *QuizService) DeleteCustomQuiz(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, quiz := range s.state.CustomQuizzes {
		if quiz.ID == id {
			s.state.CustomQuizzes = append(s.state.CustomQuizzes[:i], s.state.CustomQuizzes[i+1:]...)
			s.persist()
			return nil
		}
	}
	return util.ErrQuizNotFound
}

// RecordAttempt 向指定测验追加一条成绩记录
// 同时把该测验记入全局完成集合并更新最近得分
func (s *QuizService) RecordAttempt(quizID string, score, correctCount, totalCount int) (*model.QuizAttempt, error) {
	s.mu.Lock()

	idx := -1
	for i, quiz := range s.state.CustomQuizzes {
		if quiz.ID == quizID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil, util.ErrQuizNotFound
	}

	attempt := model.QuizAttempt{
		AttemptID:    "attempt-" + uuid.NewString(),
		Score:        score,
		CorrectCount: correctCount,
		TotalCount:   totalCount,
		CompletedAt:  s.now(),
	}

	s.state.CustomQuizzes[idx].Attempts = append(s.state.CustomQuizzes[idx].Attempts, attempt)
	if !containsString(s.state.CompletedQuizIDs, quizID) {
		s.state.CompletedQuizIDs = append(s.state.CompletedQuizIDs, quizID)
	}
	s.state.LastScoreByQuizID[quizID] = score
	s.persist()
	s.mu.Unlock()

	if err := s.streak.RecordActivity(util.ActivityQuizzes, 1); err != nil {
		logger.Log.Warn("failed to record quiz activity", zap.Error(err))
	}
	return &attempt, nil
}

// AttemptStats 对某测验的成绩历史做聚合：最高分、平均分（四舍五入）、次数
func (s *QuizService) AttemptStats(quizID string) (QuizAttemptStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, quiz := range s.state.CustomQuizzes {
		if quiz.ID != quizID {
			continue
		}

		stats := QuizAttemptStats{Count: len(quiz.Attempts)}
		if stats.Count == 0 {
			return stats, nil
		}

		sum := 0
		for _, attempt := range quiz.Attempts {
			sum += attempt.Score
			if attempt.Score > stats.MaxScore {
				stats.MaxScore = attempt.Score
			}
		}
		stats.MeanScore = int(math.Round(float64(sum) / float64(stats.Count)))
		return stats, nil
	}
	return QuizAttemptStats{}, util.ErrQuizNotFound
}

// State 返回测验状态的浅副本（联调与看板用）
func (s *QuizService) State() model.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.state
	out.SelectedAnswers = append([]int{}, s.state.SelectedAnswers...)
	out.CustomQuizzes = append([]model.CustomQuiz{}, s.state.CustomQuizzes...)
	out.CompletedQuizIDs = append([]string{}, s.state.CompletedQuizIDs...)
	scores := make(map[string]int, len(s.state.LastScoreByQuizID))
	for k, v := range s.state.LastScoreByQuizID {
		scores[k] = v
	}
	out.LastScoreByQuizID = scores
	return out
}

func (s *QuizService) persist() {
	if err := s.snapshots.Set(util.SnapshotKeyQuizState, s.state); err != nil {
		logger.Log.Error("failed to persist quiz snapshot", zap.Error(err))
	}
}

func copyQuestions(questions []model.QuizQuestion) []model.QuizQuestion {
	out := make([]model.QuizQuestion, len(questions))
	copy(out, questions)
	for i := range out {
		out[i].Options = append([]string{}, out[i].Options...)
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
