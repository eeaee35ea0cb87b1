package service

import (
	"encoding/json"
	"sync"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/util"
)

// memSnapshotStore 进程内快照存储，序列化路径与 sqlite 实现一致
type memSnapshotStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{data: make(map[string]string)}
}

func (m *memSnapshotStore) Get(key string, out interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memSnapshotStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(raw)
	return nil
}

func (m *memSnapshotStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// putRaw 直接写入原始文本，用于模拟损坏的快照
func (m *memSnapshotStore) putRaw(key, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
}

type fakeCardCatalog struct {
	cards []model.StudyCard
}

func (f *fakeCardCatalog) List(category, difficulty string) ([]model.StudyCard, error) {
	out := []model.StudyCard{}
	for _, card := range f.cards {
		if category != util.FilterAll && card.Category != category {
			continue
		}
		if difficulty != util.FilterAll && card.Difficulty != difficulty {
			continue
		}
		out = append(out, card)
	}
	return out, nil
}

func (f *fakeCardCatalog) FindByID(id string) (*model.StudyCard, error) {
	for _, card := range f.cards {
		if card.ID == id {
			out := card
			return &out, nil
		}
	}
	return nil, util.ErrCardNotFound
}

func (f *fakeCardCatalog) Count() (int64, error) {
	return int64(len(f.cards)), nil
}

type fakeQuestionCatalog struct {
	questions []model.QuizQuestion
}

func (f *fakeQuestionCatalog) List(category, difficulty string) ([]model.QuizQuestion, error) {
	out := []model.QuizQuestion{}
	for _, q := range f.questions {
		if category != util.FilterAll && q.Category != category {
			continue
		}
		if difficulty != util.FilterAll && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuestionCatalog) Count() (int64, error) {
	return int64(len(f.questions)), nil
}

// recorderStub 记录上报的活动，供断言
type recorderStub struct {
	mu    sync.Mutex
	kinds []string
}

func (r *recorderStub) RecordActivity(kind string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < count; i++ {
		r.kinds = append(r.kinds, kind)
	}
	return nil
}

func (r *recorderStub) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.kinds...)
}

type notifierStub struct {
	mu            sync.Mutex
	notifications []Notification
}

func (n *notifierStub) Notify(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *notifierStub) sent() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification{}, n.notifications...)
}

func cardFixtures() []model.StudyCard {
	return []model.StudyCard{
		{ID: "c1", Category: "ethics", Difficulty: "easy", Front: "A"},
		{ID: "c2", Category: "ethics", Difficulty: "medium", Front: "B"},
		{ID: "c3", Category: "logic", Difficulty: "easy", Front: "C"},
		{ID: "c4", Category: "logic", Difficulty: "hard", Front: "D"},
		{ID: "c5", Category: "existence", Difficulty: "medium", Front: "E"},
	}
}

func questionFixtures() []model.QuizQuestion {
	return []model.QuizQuestion{
		{ID: "q1", Prompt: "P1", Options: []string{"a", "b", "c"}, CorrectOption: 0, Category: "ethics", Difficulty: "easy"},
		{ID: "q2", Prompt: "P2", Options: []string{"a", "b", "c"}, CorrectOption: 1, Category: "ethics", Difficulty: "medium"},
		{ID: "q3", Prompt: "P3", Options: []string{"a", "b", "c"}, CorrectOption: 2, Category: "logic", Difficulty: "easy"},
		{ID: "q4", Prompt: "P4", Options: []string{"a", "b", "c"}, CorrectOption: 0, Category: "logic", Difficulty: "hard"},
		{ID: "q5", Prompt: "P5", Options: []string{"a", "b", "c"}, CorrectOption: 1, Category: "existence", Difficulty: "medium"},
	}
}
