//go:build !mobile

// Package mobile 在非移动端构建时只导出占位函数，绑定代码见 mobile.go。
package mobile

// Dummy 空导出函数，让包在桌面构建时也能被引用
func Dummy() {}
