package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]。

// HalfSine 半正弦包络
// 特点：0 → 1 → 0，在 t=0.5 处达到峰值（用于点击脉冲）
// 公式：f(t) = sin(πt)
func HalfSine(t float64) float64 {
	return math.Sin(Clamp01(t) * math.Pi)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
