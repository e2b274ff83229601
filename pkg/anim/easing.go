// Package anim 提供帧驱动的动画调度器和定时插值驱动器
//
// 该包不依赖任何渲染后端：宿主在每帧调用 Scheduler.Update(dt)，
// 由调度器推进所有注册的动画任务。
package anim

// 缓动函数 (Easing Functions)
//
// 所有函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动，匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseFade 淡入淡出曲线（smoothstep）
// 特点：两端慢、中间快，适合透明度/缩放的出现与消失动画
// 公式：f(t) = t² × (3 - 2t)
func EaseFade(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
