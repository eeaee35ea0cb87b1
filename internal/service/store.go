package service

import "studytrack_backend/internal/model"

// SnapshotStore 状态机快照的读写抽象，由 repository.SnapshotRepository 实现
// 读取失败或快照缺失时各服务回退到默认状态，写入失败只记录日志不中断
type SnapshotStore interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
	Remove(key string) error
}

// CardCatalog 只读卡片目录（外部协作方）
type CardCatalog interface {
	List(category, difficulty string) ([]model.StudyCard, error)
	FindByID(id string) (*model.StudyCard, error)
	Count() (int64, error)
}

// QuestionCatalog 只读题库（外部协作方）
type QuestionCatalog interface {
	List(category, difficulty string) ([]model.QuizQuestion, error)
	Count() (int64, error)
}

// ActivityRecorder 学习活动上报入口，由 StreakService 实现
type ActivityRecorder interface {
	RecordActivity(kind string, count int) error
}
