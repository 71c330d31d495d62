package game

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// memStore 内存版 ObjectStore
type memStore struct {
	props   map[string][]byte
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{props: make(map[string][]byte)}
}

func (s *memStore) key(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

func (s *memStore) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := s.props[s.key(objectKey, propKey)]
	return ok
}

func (s *memStore) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	data, ok := s.props[s.key(objectKey, propKey)]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (s *memStore) SaveObjectProp(objectKey, propKey string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.props[s.key(objectKey, propKey)] = append([]byte(nil), data...)
	return nil
}

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, testName string) ObjectStore {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	appName := fmt.Sprintf("eggplant_test_%s_%d", testName, time.Now().UnixNano())
	store, err := OpenStorage(appName)
	if err != nil {
		t.Skipf("Cannot create gdata storage for testing: %v", err)
	}
	return store
}
