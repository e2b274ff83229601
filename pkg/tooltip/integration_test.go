package tooltip

import (
	"testing"

	"github.com/decker502/tipkit/pkg/input"
	"github.com/decker502/tipkit/pkg/widget"
)

// stubPointer 可编程指针输入
type stubPointer struct {
	x, y    int
	pressed bool
}

func (s *stubPointer) CursorPosition() (int, int) { return s.x, s.y }
func (s *stubPointer) IsPointerJustPressed() bool { return s.pressed }

// TestHoverLifecycleThroughDispatcher 测试经由分发器的完整悬停流程：
// 移入 → 出现动画 → Shown → 移出 → 消失动画 → Hidden
func TestHoverLifecycleThroughDispatcher(t *testing.T) {
	stage := widget.NewStage(800, 600)

	target := widget.New(120, 48)
	target.SetPosition(150, 260)
	stage.Root.AddChild(target)

	content := widget.New(160, 40)
	ctl := New(target, content, Options{
		TargetAnchor: AnchorTopCenter,
		TipAnchor:    AnchorBottomCenter,
		Animate:      true,
	})

	ptr := &stubPointer{x: 0, y: 0}
	d := input.NewDispatcherWithInput(stage, ptr)
	d.Register(target, ctl)

	// 帧 1：指针在目标外
	d.Update()
	stage.Update(frameDt)
	if ctl.State() != StateHidden {
		t.Fatalf("State: got %v, want Hidden", ctl.State())
	}

	// 移入目标：出现动画启动
	ptr.x, ptr.y = 200, 280
	d.Update()
	if ctl.State() != StateShowing {
		t.Fatalf("State after hover: got %v, want Showing", ctl.State())
	}

	// 推进到动画结束
	for i := 0; i < 30; i++ {
		d.Update()
		stage.Update(frameDt)
	}
	if ctl.State() != StateShown {
		t.Fatalf("State: got %v, want Shown", ctl.State())
	}

	// 提示框挂在按钮上方中央：下边缘中点 = 目标上边缘中点
	x, y := ctl.Container().Position()
	if x != 130 || y != 220 {
		t.Errorf("Container position: got (%v, %v), want (130, 220)", x, y)
	}

	// 移出目标：消失动画并最终移除
	ptr.x, ptr.y = 700, 500
	d.Update()
	if ctl.State() != StateHiding {
		t.Fatalf("State after unhover: got %v, want Hiding", ctl.State())
	}

	for i := 0; i < 30; i++ {
		d.Update()
		stage.Update(frameDt)
	}
	if ctl.State() != StateHidden {
		t.Errorf("State: got %v, want Hidden", ctl.State())
	}
	if stage.HasOverlay(ctl.Container()) {
		t.Error("Expected container removed from overlay")
	}
}
