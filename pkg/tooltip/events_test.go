package tooltip

import (
	"testing"

	"github.com/decker502/tipkit/pkg/widget"
)

// newEventSetup 构建带子节点的目标：icon 挂在 target 内部
func newEventSetup() (*widget.Stage, *widget.Widget, *widget.Widget, *Controller) {
	stage := widget.NewStage(800, 600)

	target := widget.New(50, 20)
	target.SetPosition(100, 100)
	stage.Root.AddChild(target)

	icon := widget.New(10, 10)
	target.AddChild(icon)

	content := widget.New(80, 30)
	ctl := New(target, content, Options{
		TargetAnchor: AnchorBottomRight,
		TipAnchor:    AnchorBottomRight,
	})
	return stage, target, icon, ctl
}

// TestPointerEnterShows 测试指针进入触发显示
func TestPointerEnterShows(t *testing.T) {
	_, _, _, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, nil)

	if ctl.State() != StateShown {
		t.Errorf("State: got %v, want Shown", ctl.State())
	}
}

// TestPointerEnterFromDescendantIgnored 测试来源为目标后代的进入事件被忽略
// （指针只是在目标内部的子节点之间移动）
func TestPointerEnterFromDescendantIgnored(t *testing.T) {
	_, _, icon, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, icon)

	if ctl.State() != StateHidden {
		t.Errorf("State: got %v, want Hidden", ctl.State())
	}
}

// TestPointerExitHides 测试指针离开触发隐藏
func TestPointerExitHides(t *testing.T) {
	stage, _, _, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, nil)
	ctl.OnPointerExit(-1, stage.Root)

	if ctl.State() != StateHidden {
		t.Errorf("State: got %v, want Hidden", ctl.State())
	}
}

// TestExitToDescendantWithoutTouchHides 测试无按下时离开到目标后代仍然隐藏
func TestExitToDescendantWithoutTouchHides(t *testing.T) {
	_, _, icon, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, nil)
	ctl.OnPointerExit(-1, icon)

	if ctl.State() != StateHidden {
		t.Errorf("State: got %v, want Hidden", ctl.State())
	}
}

// TestTouchDownSuppressesExactlyOneHide 测试按下后恰好抑制一次隐藏
// 第一次离开到目标后代被吞掉，第二次恢复正常行为
func TestTouchDownSuppressesExactlyOneHide(t *testing.T) {
	_, _, icon, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, nil)
	ctl.OnTouchDown(0, 0)

	// 按下处理器触发的迟到离开事件：被抑制
	ctl.OnPointerExit(-1, icon)
	if ctl.State() != StateShown {
		t.Fatalf("State after suppressed exit: got %v, want Shown", ctl.State())
	}

	// 第二次离开：标志已被消费，正常隐藏
	ctl.OnPointerExit(-1, icon)
	if ctl.State() != StateHidden {
		t.Errorf("State after second exit: got %v, want Hidden", ctl.State())
	}
}

// TestTouchDownFlagNotResetByEnter 测试进入事件不重置按下标志
// （抑制行为严格只消费一次，与进入次数无关）
func TestTouchDownFlagNotResetByEnter(t *testing.T) {
	_, _, icon, ctl := newEventSetup()

	ctl.OnPointerEnter(-1, nil)
	ctl.OnTouchDown(0, 0)

	// 中间插入一次进入事件，标志应保留
	ctl.OnPointerEnter(-1, icon)

	ctl.OnPointerExit(-1, icon)
	if ctl.State() != StateShown {
		t.Errorf("State: got %v, want Shown (suppression still pending)", ctl.State())
	}
}

// TestTouchDownBringsContainerToFront 测试按下把容器提到悬浮层最前
func TestTouchDownBringsContainerToFront(t *testing.T) {
	stage, _, _, ctl := newEventSetup()

	ctl.Show(true)

	// 另一个悬浮条目盖在提示框上面
	other := widget.New(10, 10)
	stage.AddOverlay(other)

	ctl.OnTouchDown(0, 0)

	overlays := stage.Overlays()
	if overlays[len(overlays)-1] != ctl.Container() {
		t.Error("Expected container at front after touch down")
	}
}

// TestTouchDownWhileHiddenHarmless 测试未显示时按下为无害空操作
func TestTouchDownWhileHiddenHarmless(t *testing.T) {
	_, _, _, ctl := newEventSetup()

	ctl.OnTouchDown(0, 0) // 不应崩溃

	if ctl.State() != StateHidden {
		t.Errorf("State: got %v, want Hidden", ctl.State())
	}
}
