package widget

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SetImage 设置节点的背景图
// 图片按节点的缩放与透明度绘制，不影响测量尺寸
func (w *Widget) SetImage(img *ebiten.Image) {
	w.sprite = img
}

// Image 返回节点的背景图，可能为 nil
func (w *Widget) Image() *ebiten.Image {
	return w.sprite
}

// Draw 绘制整个显示面
// 先绘制普通内容树，再按顺序绘制悬浮层条目
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.Root != nil {
		s.Root.draw(screen, 1.0)
	}
	for _, o := range s.overlays {
		o.draw(screen, 1.0)
	}
}

// draw 递归绘制节点子树
// parentAlpha 为祖先累积透明度，子节点透明度与其相乘
func (w *Widget) draw(screen *ebiten.Image, parentAlpha float64) {
	if !w.visible {
		return
	}

	alpha := parentAlpha * w.opacity

	if w.sprite != nil {
		op := &ebiten.DrawImageOptions{}

		// 把图片拉伸到节点的测量尺寸
		iw := w.sprite.Bounds().Dx()
		ih := w.sprite.Bounds().Dy()
		if iw > 0 && ih > 0 {
			op.GeoM.Scale(w.width/float64(iw), w.height/float64(ih))
		}

		// 围绕原点应用统一缩放
		op.GeoM.Translate(-w.originX, -w.originY)
		op.GeoM.Scale(w.scale, w.scale)
		op.GeoM.Translate(w.originX, w.originY)

		// 平移到 Stage 坐标
		x, y := w.stageOffset()
		op.GeoM.Translate(x, y)

		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(w.sprite, op)
	}

	for _, child := range w.children {
		child.draw(screen, alpha)
	}
}
