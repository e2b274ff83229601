// Package widget 提供一个极简的保留模式场景图
//
// 场景图由 Widget 节点树和一个 Stage 根显示面组成。
// Widget 拥有位置、尺寸、原点（pivot）、统一缩放、透明度和可见性，
// 足以支撑悬浮提示框等顶层覆盖组件的定位与动画。
package widget

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Widget 保留模式场景图中的一个节点
//
// 坐标系：y 向下，位置为相对父节点的局部坐标。
// 统一缩放围绕原点 (originX, originY) 应用。
type Widget struct {
	parent   *Widget
	children []*Widget

	// stage 仅在节点直接挂到 Stage（Root 或悬浮层条目）时非 nil
	stage *Stage

	x, y          float64 // 相对父节点的位置
	width, height float64 // 测量尺寸
	originX       float64 // 缩放原点 X（局部坐标）
	originY       float64 // 缩放原点 Y（局部坐标）
	scale         float64 // 统一缩放因子
	opacity       float64 // 透明度 0.0 ~ 1.0
	visible       bool

	// sprite 可选的背景图，nil 时节点只参与布局与命中测试
	sprite *ebiten.Image
}

// New 创建指定尺寸的节点
// 初始状态：缩放 1.0、不透明、可见、无父节点
func New(width, height float64) *Widget {
	return &Widget{
		width:   width,
		height:  height,
		scale:   1.0,
		opacity: 1.0,
		visible: true,
	}
}

// Position 返回相对父节点的位置
func (w *Widget) Position() (x, y float64) {
	return w.x, w.y
}

// SetPosition 设置相对父节点的位置
func (w *Widget) SetPosition(x, y float64) {
	w.x, w.y = x, y
}

// Size 返回测量尺寸
func (w *Widget) Size() (width, height float64) {
	return w.width, w.height
}

// SetSize 设置测量尺寸
func (w *Widget) SetSize(width, height float64) {
	w.width, w.height = width, height
}

// Origin 返回缩放原点（局部坐标）
func (w *Widget) Origin() (x, y float64) {
	return w.originX, w.originY
}

// SetOrigin 设置缩放原点（局部坐标）
func (w *Widget) SetOrigin(x, y float64) {
	w.originX, w.originY = x, y
}

// Scale 返回统一缩放因子
func (w *Widget) Scale() float64 {
	return w.scale
}

// SetScale 设置统一缩放因子
func (w *Widget) SetScale(s float64) {
	w.scale = s
}

// Opacity 返回透明度（0.0 ~ 1.0）
func (w *Widget) Opacity() float64 {
	return w.opacity
}

// SetOpacity 设置透明度，超界值会被截断到 0.0 ~ 1.0
func (w *Widget) SetOpacity(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	w.opacity = a
}

// Visible 返回节点是否可见（不含父节点可见性）
func (w *Widget) Visible() bool {
	return w.visible
}

// SetVisible 设置节点可见性
func (w *Widget) SetVisible(v bool) {
	w.visible = v
}

// Parent 返回父节点，根节点返回 nil
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children 返回子节点列表（按绘制顺序，后面的在上层）
func (w *Widget) Children() []*Widget {
	return w.children
}

// AddChild 追加子节点
// 如果 child 已有父节点，先从原父节点移除
func (w *Widget) AddChild(child *Widget) {
	if child == nil || child == w {
		return
	}
	child.RemoveFromParent()
	child.parent = w
	w.children = append(w.children, child)
}

// RemoveChild 移除子节点
// child 不是本节点的子节点时为无害空操作
func (w *Widget) RemoveChild(child *Widget) {
	if child == nil || child.parent != w {
		return
	}
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// RemoveFromParent 把节点从其父节点（或所在悬浮层）中摘除
func (w *Widget) RemoveFromParent() {
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
	if w.stage != nil {
		w.stage.detach(w)
	}
}

// IsDescendantOf 判断本节点是否为 other 的后代（含自身）
func (w *Widget) IsDescendantOf(other *Widget) bool {
	if other == nil {
		return false
	}
	for n := w; n != nil; n = n.parent {
		if n == other {
			return true
		}
	}
	return false
}

// Stage 返回节点当前挂载的显示面
// 节点（或其祖先）未挂到任何 Stage 时返回 nil
func (w *Widget) Stage() *Stage {
	n := w
	for n.parent != nil {
		n = n.parent
	}
	return n.stage
}

// LocalToStage 把局部坐标点转换到 Stage 根坐标空间
// 逐级应用每个祖先围绕其原点的统一缩放，再平移到父坐标
func (w *Widget) LocalToStage(x, y float64) (sx, sy float64) {
	sx, sy = x, y
	for n := w; n != nil; n = n.parent {
		sx = (sx-n.originX)*n.scale + n.originX + n.x
		sy = (sy-n.originY)*n.scale + n.originY + n.y
	}
	return sx, sy
}

// ContainsStagePoint 判断 Stage 坐标点是否落在节点矩形内
// 忽略缩放变换：命中测试使用未缩放的布局矩形
func (w *Widget) ContainsStagePoint(sx, sy float64) bool {
	x0, y0 := w.stageOffset()
	return sx >= x0 && sx < x0+w.width &&
		sy >= y0 && sy < y0+w.height
}

// stageOffset 返回节点左上角在 Stage 空间中的位置（仅平移）
func (w *Widget) stageOffset() (float64, float64) {
	x, y := 0.0, 0.0
	for n := w; n != nil; n = n.parent {
		x += n.x
		y += n.y
	}
	return x, y
}

// hitTest 返回以本节点为根的子树中，包含指定 Stage 坐标点的最上层可见节点
func (w *Widget) hitTest(sx, sy float64) *Widget {
	if !w.visible {
		return nil
	}
	// 后加入的子节点在上层，倒序检测
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := w.children[i].hitTest(sx, sy); hit != nil {
			return hit
		}
	}
	if w.ContainsStagePoint(sx, sy) {
		return w
	}
	return nil
}
