// Package input 提供指针事件分发器
//
// Dispatcher 每帧对显示面做命中测试，把指针的进入/离开/按下
// 合成为悬停处理器回调（提示框控制器实现该接口）。
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// CursorPosition 当前指针位置（触摸优先于鼠标）
	CursorPosition() (int, int)
	// IsPointerJustPressed 本帧是否刚发生按下（鼠标左键或触摸）
	IsPointerJustPressed() bool
}

// ebitenPointerInput Ebitengine 默认实现
// 同时支持鼠标和触摸输入，优先检测触摸
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) IsPointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}
