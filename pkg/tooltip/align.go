// Package tooltip 提供悬浮提示框控制器
//
// Controller 负责提示框的可见性状态机、锚点定位和出现/消失动画；
// 宿主的输入分发把指针进入/离开与按下事件转发给控制器即可。
package tooltip

// HAlign 水平对齐
type HAlign int

const (
	// HLeft 左边缘
	HLeft HAlign = iota
	// HCenter 水平居中
	HCenter
	// HRight 右边缘
	HRight
)

// VAlign 垂直对齐
// 坐标系 y 向下：VTop 对应 y，VBottom 对应 y+height
type VAlign int

const (
	// VTop 上边缘
	VTop VAlign = iota
	// VCenter 垂直居中
	VCenter
	// VBottom 下边缘
	VBottom
)

// Anchor 矩形上的锚点：一对水平/垂直对齐标志
// 不可变的纯值类型，同时用于目标矩形取点和提示框自身取点
type Anchor struct {
	H HAlign
	V VAlign
}

// 常用锚点组合
var (
	AnchorTopLeft      = Anchor{HLeft, VTop}
	AnchorTopCenter    = Anchor{HCenter, VTop}
	AnchorTopRight     = Anchor{HRight, VTop}
	AnchorCenterLeft   = Anchor{HLeft, VCenter}
	AnchorCenter       = Anchor{HCenter, VCenter}
	AnchorCenterRight  = Anchor{HRight, VCenter}
	AnchorBottomLeft   = Anchor{HLeft, VBottom}
	AnchorBottomCenter = Anchor{HCenter, VBottom}
	AnchorBottomRight  = Anchor{HRight, VBottom}
)

// Point 返回 width x height 矩形上锚点的局部坐标
// 左对齐为 0，右对齐为 width，居中为 width/2；垂直方向同理
func (a Anchor) Point(width, height float64) (x, y float64) {
	switch a.H {
	case HLeft:
		x = 0
	case HRight:
		x = width
	default:
		x = width / 2
	}
	switch a.V {
	case VTop:
		y = 0
	case VBottom:
		y = height
	default:
		y = height / 2
	}
	return x, y
}
