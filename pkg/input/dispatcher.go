package input

import (
	"github.com/decker502/tipkit/pkg/widget"
)

// hoverPointer 悬停事件的指针标识（无具体触点）
const hoverPointer = -1

// HoverHandler 悬停事件处理器
// 提示框控制器实现该接口；other 为相邻节点（进入时的来源节点、
// 离开时的去往节点），供处理器做后代判断
type HoverHandler interface {
	OnPointerEnter(pointer int, other *widget.Widget)
	OnPointerExit(pointer int, other *widget.Widget)
	OnTouchDown(pointer, button int)
}

// binding 一个目标节点与其处理器的注册关系
type binding struct {
	target  *widget.Widget
	handler HoverHandler
	inside  bool // 指针当前是否在目标（含后代）内
}

// Dispatcher 指针事件分发器
// 每帧调用一次 Update()：对显示面做命中测试，跟踪指针相对每个
// 注册目标的进出状态，在边界穿越时合成进入/离开事件
type Dispatcher struct {
	stage    *widget.Stage
	input    PointerInput
	bindings []*binding
	hovered  *widget.Widget // 上一帧指针下的节点
}

// NewDispatcher 创建分发器（使用 Ebitengine 默认输入）
func NewDispatcher(stage *widget.Stage) *Dispatcher {
	return &Dispatcher{
		stage: stage,
		input: defaultPointerInput,
	}
}

// NewDispatcherWithInput 创建带自定义指针输入的分发器（用于测试）
func NewDispatcherWithInput(stage *widget.Stage, in PointerInput) *Dispatcher {
	return &Dispatcher{
		stage: stage,
		input: in,
	}
}

// Register 为目标节点注册悬停处理器
func (d *Dispatcher) Register(target *widget.Widget, h HoverHandler) {
	if target == nil || h == nil {
		return
	}
	d.bindings = append(d.bindings, &binding{target: target, handler: h})
}

// Unregister 移除目标节点的所有处理器注册
func (d *Dispatcher) Unregister(target *widget.Widget) {
	kept := d.bindings[:0]
	for _, b := range d.bindings {
		if b.target != target {
			kept = append(kept, b)
		}
	}
	d.bindings = kept
}

// Update 处理本帧指针状态（每帧调用一次）
func (d *Dispatcher) Update() {
	mx, my := d.input.CursorPosition()
	hit := d.stage.HitTest(float64(mx), float64(my))
	prev := d.hovered
	d.hovered = hit

	justPressed := d.input.IsPointerJustPressed()

	for _, b := range d.bindings {
		inside := hit != nil && hit.IsDescendantOf(b.target)

		switch {
		case inside && !b.inside:
			// 穿入目标边界：other 为指针来源节点
			b.inside = true
			b.handler.OnPointerEnter(hoverPointer, prev)
		case !inside && b.inside:
			// 穿出目标边界：other 为指针去往节点
			b.inside = false
			b.handler.OnPointerExit(hoverPointer, hit)
		}

		if justPressed && inside {
			b.handler.OnTouchDown(0, 0)
		}
	}
}
