package service

import (
	"math/rand"
	"sync"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
	"studytrack_backend/internal/util"
)

// QuoteService 休息时展示的名言，按固定周期在启用名言间轮换
type QuoteService struct {
	mu            sync.Mutex
	quotes        *repository.QuoteRepository
	rotationHours int
}

func NewQuoteService(quotes *repository.QuoteRepository, rotationHours int) *QuoteService {
	if rotationHours < 1 {
		rotationHours = 12
	}
	return &QuoteService{quotes: quotes, rotationHours: rotationHours}
}

// SetRotationHours 配置热更新入口
func (s *QuoteService) SetRotationHours(hours int) {
	if hours < 1 {
		return
	}
	s.mu.Lock()
	s.rotationHours = hours
	s.mu.Unlock()
}

// GetCurrentQuote 获取当前展示的名言
// 超过轮换周期时从其余启用名言中随机换一条
func (s *QuoteService) GetCurrentQuote() (*model.Quote, error) {
	s.mu.Lock()
	rotation := time.Duration(s.rotationHours) * time.Hour
	s.mu.Unlock()

	current, err := s.quotes.GetCurrent()
	if err != nil {
		// 没有当前展示的，取第一条启用的顶上
		enabled, err := s.quotes.GetEnabled()
		if err != nil || len(enabled) == 0 {
			return nil, util.ErrQuoteNotAvailable
		}
		s.quotes.SetCurrent(enabled[0].ID)
		return enabled[0], nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabled, err := s.quotes.GetEnabled()

	// 只有一条启用的名言时不轮换
	if err == nil && len(enabled) > 1 && elapsed >= rotation {
		var candidates []*model.Quote
		for _, q := range enabled {
			if q.ID != current.ID {
				candidates = append(candidates, q)
			}
		}
		if len(candidates) > 0 {
			next := candidates[rand.Intn(len(candidates))]
			s.quotes.SetCurrent(next.ID)
			return next, nil
		}
	}

	return current, nil
}
