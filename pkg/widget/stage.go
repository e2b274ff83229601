package widget

import (
	"github.com/decker502/tipkit/pkg/anim"
)

// Stage 根显示面
//
// Stage 持有两部分顶层内容：
//   - Root: 普通内容树的根节点
//   - 悬浮层（overlay）: 绘制在普通内容之上的顶层条目列表
//     （提示框、弹窗等），列表越靠后越在上层
//
// Stage 同时拥有动画调度器，宿主每帧调用一次 Update(dt)。
type Stage struct {
	// Root 普通内容树的根节点，尺寸与 Stage 相同
	Root *Widget

	overlays  []*Widget
	scheduler *anim.Scheduler

	width, height float64
}

// NewStage 创建指定逻辑尺寸的显示面
func NewStage(width, height float64) *Stage {
	s := &Stage{
		scheduler: anim.NewScheduler(),
		width:     width,
		height:    height,
	}
	s.Root = New(width, height)
	s.Root.stage = s
	return s
}

// Size 返回逻辑尺寸
func (s *Stage) Size() (width, height float64) {
	return s.width, s.height
}

// Scheduler 返回动画调度器
func (s *Stage) Scheduler() *anim.Scheduler {
	return s.scheduler
}

// Update 推进一帧（每帧调用一次）
// 参数：
//   - dt: 时间增量（秒）
func (s *Stage) Update(dt float64) {
	s.scheduler.Update(dt)
}

// AddOverlay 把节点插入悬浮层顶部
// 节点已在悬浮层中时为无害空操作
func (s *Stage) AddOverlay(w *Widget) {
	if w == nil || s.HasOverlay(w) {
		return
	}
	w.RemoveFromParent()
	w.stage = s
	s.overlays = append(s.overlays, w)
}

// RemoveOverlay 把节点从悬浮层移除
// 节点不在悬浮层中时为无害空操作
func (s *Stage) RemoveOverlay(w *Widget) {
	if w == nil {
		return
	}
	s.detach(w)
}

// BringToFront 把悬浮层条目移动到绘制顺序最前
// 节点不在悬浮层中时为无害空操作
func (s *Stage) BringToFront(w *Widget) {
	for i, o := range s.overlays {
		if o == w {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			s.overlays = append(s.overlays, w)
			return
		}
	}
}

// HasOverlay 判断节点是否在悬浮层中
func (s *Stage) HasOverlay(w *Widget) bool {
	for _, o := range s.overlays {
		if o == w {
			return true
		}
	}
	return false
}

// Overlays 返回悬浮层条目（按绘制顺序）
func (s *Stage) Overlays() []*Widget {
	return s.overlays
}

// HitTest 返回指定 Stage 坐标点下最上层的可见节点
// 悬浮层条目优先于普通内容树；没有命中时返回 nil
func (s *Stage) HitTest(x, y float64) *Widget {
	for i := len(s.overlays) - 1; i >= 0; i-- {
		if hit := s.overlays[i].hitTest(x, y); hit != nil {
			return hit
		}
	}
	if s.Root == nil {
		return nil
	}
	return s.Root.hitTest(x, y)
}

// detach 把节点从悬浮层摘除并清除 stage 引用
func (s *Stage) detach(w *Widget) {
	for i, o := range s.overlays {
		if o == w {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			break
		}
	}
	if w.stage == s && w != s.Root {
		w.stage = nil
	}
}
