//go:build !android

package game

// ensureStorageDir 桌面平台上 gdata 自行创建目录
func ensureStorageDir() error {
	return nil
}
