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

// PomodoroService 工作/休息四态定时器
// 每次状态变化（含每秒 tick）都带时间戳落盘，重启后按墙钟差折算离线时间
type PomodoroService struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	streak    ActivityRecorder
	notifier  Notifier
	settings  model.PomodoroSettings
	state     model.PomodoroState
	now       func() time.Time
	stopCh    chan struct{}
}

func defaultPomodoroSettings() model.PomodoroSettings {
	return model.PomodoroSettings{
		WorkMinutes:            25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
		SoundEnabled:           true,
	}
}

func NewPomodoroService(snapshots SnapshotStore, streak ActivityRecorder, notifier Notifier) *PomodoroService {
	s := &PomodoroService{
		snapshots: snapshots,
		streak:    streak,
		notifier:  notifier,
		now:       time.Now,
	}

	s.settings = s.loadSettings()
	s.state = s.loadState()
	s.persistState()

	// 折算后仍在运行则继续走表
	if s.state.IsRunning {
		s.startTickerLocked()
	}
	return s
}

func (s *PomodoroService) loadSettings() model.PomodoroSettings {
	var settings model.PomodoroSettings
	ok, err := s.snapshots.Get(util.SnapshotKeyPomodoroSettings, &settings)
	if err != nil {
		logger.Log.Warn("pomodoro settings snapshot unreadable, falling back to defaults", zap.Error(err))
	}
	if !ok || err != nil || settings.WorkMinutes < 1 || settings.ShortBreakMinutes < 1 ||
		settings.LongBreakMinutes < 1 || settings.SessionsUntilLongBreak < 1 {
		return defaultPomodoroSettings()
	}
	return settings
}

// loadState 读取运行状态并做掉电恢复：
// elapsed = now − lastUpdated（整秒），secondsRemaining = max(0, S − elapsed)
// 折算到 0 时置为暂停，不回放离线期间本应发生的阶段切换
func (s *PomodoroService) loadState() model.PomodoroState {
	var state model.PomodoroState
	ok, err := s.snapshots.Get(util.SnapshotKeyPomodoroState, &state)
	if err != nil {
		logger.Log.Warn("pomodoro snapshot unreadable, falling back to defaults", zap.Error(err))
	}
	if !ok || err != nil || !validSessionKind(state.SessionKind) {
		return model.PomodoroState{
			SessionKind:      util.SessionKindWork,
			SecondsRemaining: s.settings.WorkMinutes * 60,
		}
	}

	if state.SecondsRemaining < 0 {
		state.SecondsRemaining = 0
	}

	if state.IsRunning {
		elapsed := int(s.now().UnixMilli()-state.LastUpdated) / 1000
		if elapsed > 0 {
			state.SecondsRemaining -= elapsed
			if state.SecondsRemaining < 0 {
				state.SecondsRemaining = 0
			}
		}
		if state.SecondsRemaining == 0 {
			state.IsRunning = false
		}
	}
	return state
}

func validSessionKind(kind string) bool {
	return kind == util.SessionKindWork || kind == util.SessionKindShortBreak || kind == util.SessionKindLongBreak
}

// Start 启动计时，只翻转运行标志；剩余 0 秒时为空操作，需先 Reset
func (s *PomodoroService) Start() model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsRunning || s.state.SecondsRemaining == 0 {
		return s.state
	}

	s.state.IsRunning = true
	s.persistState()
	s.startTickerLocked()
	return s.state
}

// Pause 暂停计时，只翻转运行标志；取消必须立即生效，暂停后不得再有 tick
func (s *PomodoroService) Pause() model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning {
		return s.state
	}

	s.state.IsRunning = false
	s.stopTickerLocked()
	s.persistState()
	return s.state
}

// Reset 将剩余时间重置为当前阶段的配置时长并强制暂停
// 已完成的工作节数不受影响
func (s *PomodoroService) Reset() model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsRunning = false
	s.stopTickerLocked()
	s.state.SecondsRemaining = s.durationSeconds(s.state.SessionKind)
	s.persistState()
	return s.state
}

// UpdateSettings 更新配置
// 仅当计时器暂停且变更的时长属于当前阶段时立即生效，否则下次切换时生效
func (s *PomodoroService) UpdateSettings(settings model.PomodoroSettings) error {
	if settings.WorkMinutes < 1 || settings.ShortBreakMinutes < 1 ||
		settings.LongBreakMinutes < 1 || settings.SessionsUntilLongBreak < 1 {
		return util.ErrInvalidSettings
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldDuration := s.durationSeconds(s.state.SessionKind)
	s.settings = settings
	if err := s.snapshots.Set(util.SnapshotKeyPomodoroSettings, &s.settings); err != nil {
		logger.Log.Error("failed to persist pomodoro settings", zap.Error(err))
	}

	newDuration := s.durationSeconds(s.state.SessionKind)
	if !s.state.IsRunning && newDuration != oldDuration {
		s.state.SecondsRemaining = newDuration
		s.persistState()
	}
	return nil
}

// State 当前运行状态副本
func (s *PomodoroService) State() model.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settings 当前配置副本
func (s *PomodoroService) Settings() model.PomodoroSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Shutdown 进程退出前停表并落盘
// 运行标志保持不变，重启后由恢复逻辑折算离线时间
func (s *PomodoroService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTickerLocked()
	s.persistState()
}

func (s *PomodoroService) startTickerLocked() {
	stop := make(chan struct{})
	s.stopCh = stop

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

func (s *PomodoroService) stopTickerLocked() {
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

// tick 每秒递减一次；减到 0 时同步完成阶段切换
func (s *PomodoroService) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning {
		return
	}

	s.state.SecondsRemaining--
	if s.state.SecondsRemaining <= 0 {
		s.state.SecondsRemaining = 0
		s.completeSessionLocked()
	}
	s.persistState()
}

// completeSessionLocked 阶段结束时的状态迁移
// 工作阶段按完成节数取模决定长短休息；休息结束回到工作
// 切换后计时器暂停，等待用户再次启动
func (s *PomodoroService) completeSessionLocked() {
	s.state.IsRunning = false
	s.stopTickerLocked()

	if s.state.SessionKind == util.SessionKindWork {
		s.state.CompletedWorkSessions++
		monitoring.PomodoroSessionCounter.Inc()

		if err := s.streak.RecordActivity(util.ActivityPomodoros, 1); err != nil {
			logger.Log.Warn("failed to record pomodoro activity", zap.Error(err))
		}

		if s.state.CompletedWorkSessions%s.settings.SessionsUntilLongBreak == 0 {
			s.state.SessionKind = util.SessionKindLongBreak
			s.notifier.Notify(Notification{
				Kind:    "pomodoro",
				Message: "Work session completed, time for a long break",
				Sound:   s.settings.SoundEnabled,
			})
		} else {
			s.state.SessionKind = util.SessionKindShortBreak
			s.notifier.Notify(Notification{
				Kind:    "pomodoro",
				Message: "Work session completed, time for a short break",
				Sound:   s.settings.SoundEnabled,
			})
		}
	} else {
		s.state.SessionKind = util.SessionKindWork
		s.notifier.Notify(Notification{
			Kind:    "pomodoro",
			Message: "Break is over, back to work",
			Sound:   s.settings.SoundEnabled,
		})
	}

	s.state.SecondsRemaining = s.durationSeconds(s.state.SessionKind)
}

func (s *PomodoroService) durationSeconds(kind string) int {
	switch kind {
	case util.SessionKindShortBreak:
		return s.settings.ShortBreakMinutes * 60
	case util.SessionKindLongBreak:
		return s.settings.LongBreakMinutes * 60
	default:
		return s.settings.WorkMinutes * 60
	}
}

func (s *PomodoroService) persistState() {
	s.state.LastUpdated = s.now().UnixMilli()
	if err := s.snapshots.Set(util.SnapshotKeyPomodoroState, &s.state); err != nil {
		logger.Log.Error("failed to persist pomodoro snapshot", zap.Error(err))
	}
}
