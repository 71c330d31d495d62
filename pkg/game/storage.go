package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// ObjectStore 键值存储接口（gdata.Manager 所用方法的子集）
//
// 存档和设置都通过它读写，测试中可替换为内存实现。
type ObjectStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// OpenStorage 打开 gdata 跨平台存储
//
// 参数：
//   - appName: 应用名（决定存储目录，如 ~/.local/share/{appName}）
//
// 返回：
//   - ObjectStore: 存储实例；打开失败时为 nil（调用方进入降级模式，仅内存）
//   - error: 打开失败的原因
func OpenStorage(appName string) (ObjectStore, error) {
	if err := ensureStorageDir(); err != nil {
		return nil, err
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage %q: %w", appName, err)
	}
	if manager == nil {
		return nil, fmt.Errorf("gdata storage %q is unavailable", appName)
	}

	log.Printf("[Storage] gdata storage opened: %s", appName)
	return manager, nil
}
