package tooltip

// State 提示框可见性状态
//
// Hidden 和 Shown 是稳定状态；Showing 和 Hiding 是瞬态状态，
// 仅在有动画进行时出现
type State int

const (
	// StateHidden 完全隐藏（容器不在悬浮层中）
	StateHidden State = iota
	// StateShowing 正在播放出现动画
	StateShowing
	// StateShown 完全显示
	StateShown
	// StateHiding 正在播放消失动画
	StateHiding
)

// String 返回状态名
func (s State) String() string {
	switch s {
	case StateHidden:
		return "Hidden"
	case StateShowing:
		return "Showing"
	case StateShown:
		return "Shown"
	case StateHiding:
		return "Hiding"
	default:
		return "Unknown"
	}
}
