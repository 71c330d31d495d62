package game

import (
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "save"
)

// ErrSaveUnreadable 存档存在但无法读取（权限、I/O 错误）
//
// 与解析失败不同，此时磁盘上的存档可能完好，调用方不应急于覆盖它。
var ErrSaveUnreadable = errors.New("save data unreadable")

// SavedAchievement 存档中的已解锁成就
//
// ID 是稳定标识；Name 是保存时的显示名称，
// 用于兼容只有名称的旧存档。
type SavedAchievement struct {
	ID   string `yaml:"id,omitempty"`
	Name string `yaml:"name"`
}

// ProgressData 存档数据结构
//
// 缺失字段取零值，未知字段在读取时忽略。
type ProgressData struct {
	LeftClicks   int                `yaml:"left_clicks"`
	RightClicks  int                `yaml:"right_clicks"`
	Achievements []SavedAchievement `yaml:"achievements"`
}

// SaveManager 进度存档管理器
//
// 职责：
//   - 从存储读取点击数和已解锁成就
//   - 把当前进度写回存储
//
// 读取失败（不存在、损坏、无法读取）不是致命错误：
// 返回零进度并由调用方记录日志。
type SaveManager struct {
	store ObjectStore // 可为 nil（降级模式，不持久化）
}

// NewSaveManager 创建存档管理器
//
// 参数：
//   - store: 键值存储，可为 nil（降级模式）
func NewSaveManager(store ObjectStore) *SaveManager {
	return &SaveManager{store: store}
}

// HasSave 返回是否存在存档
func (sm *SaveManager) HasSave() bool {
	return sm.store != nil && sm.store.ObjectPropExists(progressObject, progressProperty)
}

// Load 读取存档
//
// 返回：
//   - ProgressData: 存档内容；任何失败都返回零进度
//   - error: 失败原因（存档不存在时为 nil）
func (sm *SaveManager) Load() (ProgressData, error) {
	if !sm.HasSave() {
		return ProgressData{}, nil
	}

	data, err := sm.store.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return ProgressData{}, fmt.Errorf("%w: %w", ErrSaveUnreadable, err)
	}

	progress, err := DecodeProgress(data)
	if err != nil {
		return ProgressData{}, err
	}

	log.Printf("[SaveManager] Progress loaded: left=%d right=%d achievements=%d",
		progress.LeftClicks, progress.RightClicks, len(progress.Achievements))
	return progress, nil
}

// Save 写入存档
//
// 降级模式下不做任何事并返回 nil。
func (sm *SaveManager) Save(progress ProgressData) error {
	if sm.store == nil {
		return nil
	}

	data, err := EncodeProgress(progress)
	if err != nil {
		return err
	}

	if err := sm.store.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to write save data: %w", err)
	}

	log.Printf("[SaveManager] Progress saved: left=%d right=%d achievements=%d",
		progress.LeftClicks, progress.RightClicks, len(progress.Achievements))
	return nil
}

// EncodeProgress 把进度序列化为 YAML
func EncodeProgress(progress ProgressData) ([]byte, error) {
	data, err := yaml.Marshal(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save data: %w", err)
	}
	return data, nil
}

// DecodeProgress 解析 YAML 存档（JSON 是 YAML 的子集，旧的 JSON 存档同样可读）
func DecodeProgress(data []byte) (ProgressData, error) {
	var progress ProgressData
	if err := yaml.Unmarshal(data, &progress); err != nil {
		return ProgressData{}, fmt.Errorf("failed to parse save data: %w", err)
	}
	return progress, nil
}
