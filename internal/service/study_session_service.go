package service

import (
	"math/rand"
	"sync"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"
	"studytrack_backend/pkg/logger"

	"go.uber.org/zap"
)

// StudySessionService 管理卡片学习会话：过滤视图、游标与掌握/复习集合
// 只存过滤条件、游标和集合成员，过滤后的内容永远从目录现算
type StudySessionService struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	cards     CardCatalog
	streak    ActivityRecorder
	state     *model.StudyProgress
	rng       *rand.Rand
}

// SessionView 当前会话的完整视图
type SessionView struct {
	Progress    model.StudyProgress `json:"progress"`
	Cards       []model.StudyCard   `json:"cards"`
	CurrentCard *model.StudyCard    `json:"currentCard,omitempty"`
}

func NewStudySessionService(snapshots SnapshotStore, cards CardCatalog, streak ActivityRecorder) *StudySessionService {
	s := &StudySessionService{
		snapshots: snapshots,
		cards:     cards,
		streak:    streak,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.state = s.loadState()
	return s
}

func (s *StudySessionService) loadState() *model.StudyProgress {
	var state model.StudyProgress
	ok, err := s.snapshots.Get(util.SnapshotKeyStudySession, &state)
	if err != nil {
		logger.Log.Warn("study session snapshot unreadable, falling back to defaults", zap.Error(err))
	}
	if !ok || err != nil {
		return defaultStudyProgress()
	}
	if state.Mode != util.StudyModeSequential && state.Mode != util.StudyModeRandom && state.Mode != util.StudyModeReview {
		return defaultStudyProgress()
	}
	if state.Cursor < 0 {
		state.Cursor = 0
	}
	return &state
}

func defaultStudyProgress() *model.StudyProgress {
	return &model.StudyProgress{
		MasteredIDs:      []string{},
		ReviewingIDs:     []string{},
		CategoryFilter:   util.FilterAll,
		DifficultyFilter: util.FilterAll,
		Mode:             util.StudyModeSequential,
	}
}

// Session 返回当前过滤视图与游标所指卡片
func (s *StudySessionService) Session() (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.filteredViewLocked()
	if err != nil {
		return nil, err
	}

	view := &SessionView{
		Progress: s.copyStateLocked(),
		Cards:    cards,
	}
	if len(cards) > 0 {
		card := cards[s.state.Cursor]
		view.CurrentCard = &card
	}
	return view, nil
}

// FilteredView 依次应用类别、难度、模式过滤后的卡片序列
// 无匹配卡片时返回空序列而非错误
func (s *StudySessionService) FilteredView() ([]model.StudyCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filteredViewLocked()
}

func (s *StudySessionService) filteredViewLocked() ([]model.StudyCard, error) {
	cards, err := s.cards.List(s.state.CategoryFilter, s.state.DifficultyFilter)
	if err != nil {
		return nil, err
	}

	switch s.state.Mode {
	case util.StudyModeReview:
		reviewing := make(map[string]bool, len(s.state.ReviewingIDs))
		for _, id := range s.state.ReviewingIDs {
			reviewing[id] = true
		}
		filtered := cards[:0:0]
		for _, card := range cards {
			if reviewing[card.ID] {
				filtered = append(filtered, card)
			}
		}
		cards = filtered
	case util.StudyModeRandom:
		// 洗牌顺序在进入随机模式或过滤条件变化时固定一次，
		// 之后导航保持确定性
		if len(s.state.ShuffledIDs) == 0 && len(cards) > 0 {
			s.reshuffleLocked(cards)
			s.persist()
		}
		cards = s.orderByShuffleLocked(cards)
	}

	if s.state.Cursor >= len(cards) {
		s.state.Cursor = 0
	}
	return cards, nil
}

func (s *StudySessionService) reshuffleLocked(cards []model.StudyCard) {
	ids := make([]string, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	s.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	s.state.ShuffledIDs = ids
}

// orderByShuffleLocked 按固定洗牌顺序重排当前过滤集
// 顺序中不存在的卡片按目录顺序追加，保证视图完整
func (s *StudySessionService) orderByShuffleLocked(cards []model.StudyCard) []model.StudyCard {
	byID := make(map[string]model.StudyCard, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	ordered := make([]model.StudyCard, 0, len(cards))
	seen := make(map[string]bool, len(cards))
	for _, id := range s.state.ShuffledIDs {
		if card, ok := byID[id]; ok {
			ordered = append(ordered, card)
			seen[id] = true
		}
	}
	for _, card := range cards {
		if !seen[card.ID] {
			ordered = append(ordered, card)
		}
	}
	return ordered
}

// Next 游标前进一张，越过末尾回绕到 0；空视图为空操作
func (s *StudySessionService) Next() (*model.StudyCard, error) {
	return s.move(1)
}

// Previous 游标后退一张，越过开头跳到末尾；空视图为空操作
func (s *StudySessionService) Previous() (*model.StudyCard, error) {
	return s.move(-1)
}

func (s *StudySessionService) move(delta int) (*model.StudyCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.filteredViewLocked()
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, nil
	}

	s.state.Cursor = (s.state.Cursor + delta + len(cards)) % len(cards)
	s.persist()

	card := cards[s.state.Cursor]
	return &card, nil
}

// SetCategoryFilter 切换类别过滤并将游标归零
func (s *StudySessionService) SetCategoryFilter(category string) error {
	return s.updateFilters(func() {
		s.state.CategoryFilter = category
	})
}

// SetDifficultyFilter 切换难度过滤并将游标归零
func (s *StudySessionService) SetDifficultyFilter(difficulty string) error {
	return s.updateFilters(func() {
		s.state.DifficultyFilter = difficulty
	})
}

// SetMode 切换学习模式并将游标归零
func (s *StudySessionService) SetMode(mode string) error {
	if mode != util.StudyModeSequential && mode != util.StudyModeRandom && mode != util.StudyModeReview {
		return util.ErrInvalidMode
	}
	return s.updateFilters(func() {
		s.state.Mode = mode
	})
}

func (s *StudySessionService) updateFilters(apply func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply()
	s.state.Cursor = 0
	s.state.ShuffledIDs = nil

	if s.state.Mode == util.StudyModeRandom {
		cards, err := s.cards.List(s.state.CategoryFilter, s.state.DifficultyFilter)
		if err != nil {
			return err
		}
		s.reshuffleLocked(cards)
	}

	s.persist()
	return nil
}

// MarkMastered 将卡片移入已掌握集合，并从复习集合移除
func (s *StudySessionService) MarkMastered(id string) error {
	return s.mark(id, true)
}

// MarkForReview 将卡片移入复习集合，并从已掌握集合移除
func (s *StudySessionService) MarkForReview(id string) error {
	return s.mark(id, false)
}

func (s *StudySessionService) mark(id string, mastered bool) error {
	if _, err := s.cards.FindByID(id); err != nil {
		return err
	}

	s.mu.Lock()
	s.state.MasteredIDs = removeID(s.state.MasteredIDs, id)
	s.state.ReviewingIDs = removeID(s.state.ReviewingIDs, id)
	if mastered {
		s.state.MasteredIDs = append(s.state.MasteredIDs, id)
	} else {
		s.state.ReviewingIDs = append(s.state.ReviewingIDs, id)
	}
	s.persist()
	s.mu.Unlock()

	if err := s.streak.RecordActivity(util.ActivityFlashcards, 1); err != nil {
		logger.Log.Warn("failed to record flashcard activity", zap.Error(err))
	}
	return nil
}

// ResetProgress 清空两个集合并将游标归零，过滤条件保持不变
func (s *StudySessionService) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.MasteredIDs = []string{}
	s.state.ReviewingIDs = []string{}
	s.state.Cursor = 0
	s.persist()
}

// Progress 返回当前进度状态的副本
func (s *StudySessionService) Progress() model.StudyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyStateLocked()
}

func (s *StudySessionService) copyStateLocked() model.StudyProgress {
	out := *s.state
	out.MasteredIDs = append([]string{}, s.state.MasteredIDs...)
	out.ReviewingIDs = append([]string{}, s.state.ReviewingIDs...)
	out.ShuffledIDs = append([]string(nil), s.state.ShuffledIDs...)
	return out
}

func (s *StudySessionService) persist() {
	if err := s.snapshots.Set(util.SnapshotKeyStudySession, s.state); err != nil {
		logger.Log.Error("failed to persist study session snapshot", zap.Error(err))
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
