package service

import (
	"sync"
	"time"

	"studytrack_backend/pkg/logger"

	"go.uber.org/zap"
)

// Notification 发给用户的提醒，发送即忘
type Notification struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Sound     bool      `json:"sound"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier 将提醒写入日志并保留最近若干条供前端轮询
type LogNotifier struct {
	mu     sync.Mutex
	recent []Notification
	limit  int
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{limit: 20}
}

func (l *LogNotifier) Notify(n Notification) {
	n.CreatedAt = time.Now()

	logger.Log.Info("notification",
		zap.String("kind", n.Kind),
		zap.String("message", n.Message),
		zap.Bool("sound", n.Sound),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.recent = append(l.recent, n)
	if len(l.recent) > l.limit {
		l.recent = l.recent[len(l.recent)-l.limit:]
	}
}

// Recent 返回最近的提醒，新的在前
func (l *LogNotifier) Recent() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Notification, 0, len(l.recent))
	for i := len(l.recent) - 1; i >= 0; i-- {
		out = append(out, l.recent[i])
	}
	return out
}
