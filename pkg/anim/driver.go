package anim

// Driver 固定时长的插值驱动器
// 在 duration 秒内把一个标量值从 from 平滑推进到 to，
// 每次 Step 返回当前插值结果以及是否已到达终点。
//
// Driver 只负责数值插值，不负责调度：调用方把 Step 包装成
// TickFunc 注册到 Scheduler 上。
type Driver struct {
	from     float64
	to       float64
	duration float64
	ease     EaseFunc
	elapsed  float64
}

// NewDriver 创建插值驱动器
//
// 参数：
//   - from, to: 插值起止值
//   - duration: 动画时长（秒），<= 0 时第一次 Step 立即完成
//   - ease: 缓动函数，nil 时使用 EaseFade
func NewDriver(from, to, duration float64, ease EaseFunc) *Driver {
	if ease == nil {
		ease = EaseFade
	}
	return &Driver{
		from:     from,
		to:       to,
		duration: duration,
		ease:     ease,
	}
}

// Step 推进 dt 秒并返回当前插值
//
// 返回：
//   - value: 当前插值结果
//   - done: 是否已到达终点（到达后 value 恒等于 to）
func (d *Driver) Step(dt float64) (value float64, done bool) {
	d.elapsed += dt
	if d.duration <= 0 || d.elapsed >= d.duration {
		return d.to, true
	}
	t := d.ease(d.elapsed / d.duration)
	return Lerp(d.from, d.to, t), false
}

// Value 不推进时间，返回当前插值
func (d *Driver) Value() float64 {
	if d.duration <= 0 || d.elapsed >= d.duration {
		return d.to
	}
	return Lerp(d.from, d.to, d.ease(d.elapsed/d.duration))
}
