package tooltip

import (
	"github.com/decker502/tipkit/pkg/anim"
	"github.com/decker502/tipkit/pkg/config"
	"github.com/decker502/tipkit/pkg/widget"
)

// Options 控制器构造参数
type Options struct {
	// TargetAnchor 目标矩形上的锚点（提示框吸附到这个点）
	TargetAnchor Anchor

	// TipAnchor 提示框自身的锚点（这个点与目标锚点重合）
	TipAnchor Anchor

	// OffsetX/Y 对齐后的微调偏移（像素）
	// 都为 0 时使用配置中的默认偏移
	OffsetX, OffsetY float64

	// Animate 是否播放出现/消失动画
	// 配置中 AnimationsEnabled 为 false 时强制关闭
	Animate bool

	// ForcedWidth/Height 内容尺寸覆盖值
	// 非均匀缩放的内容测量尺寸不可靠时使用；都 > 0 时生效
	ForcedWidth, ForcedHeight float64

	// Config 提示框配置，nil 时使用 DefaultTooltipConfig()
	Config *config.TooltipConfig
}

// Controller 提示框控制器
//
// 拥有可见性状态机（Hidden/Showing/Shown/Hiding）、锚点定位
// 和动画驱动；把内容节点包进一个定位容器中，容器独立持有
// 位置、原点、缩放与透明度。
//
// 所有方法必须在 UI/帧线程上调用。所有非法前置条件
//（目标未挂载、重复显示、过期完成回调）都是静默空操作：
// 可见性请求与实时事件流天然存在竞争，必须幂等。
type Controller struct {
	target    *widget.Widget
	content   *widget.Widget
	container *widget.Widget // 包装 content 的定位容器，构造时创建一次

	targetAnchor Anchor
	tipAnchor    Anchor
	offsetX      float64
	offsetY      float64
	animate      bool

	// 内容尺寸在构造时冻结（可被 ForcedWidth/Height 覆盖），
	// 之后不再重新测量
	contentW float64
	contentH float64

	duration    float64
	hiddenValue float64

	state State
	stage *widget.Stage // 最近一次 Show 时解析的显示面
	task  *anim.Task    // 在途动画任务，Hidden/Shown 状态下为 nil

	// seq 动画代号：每次动画启动或取消时递增，
	// 过期的完成回调据此检测到自己已被新请求取代
	seq int

	// touchDown 自上次按下后尚未被消费的标志
	// 用于抑制紧随按下的一次误触发隐藏
	touchDown bool
}

// New 创建提示框控制器
//
// 参数：
//   - target: 拥有悬停/触摸区域的目标节点
//   - content: 提示框中显示的内容节点
//   - opts: 锚点、偏移与动画选项
//
// 内容节点会被包进控制器私有的定位容器；内容尺寸
// 在此刻测量并冻结。
func New(target, content *widget.Widget, opts Options) *Controller {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultTooltipConfig()
	}

	contentW, contentH := content.Size()
	if opts.ForcedWidth > 0 && opts.ForcedHeight > 0 {
		contentW, contentH = opts.ForcedWidth, opts.ForcedHeight
	}

	offsetX, offsetY := opts.OffsetX, opts.OffsetY
	if offsetX == 0 && offsetY == 0 {
		offsetX, offsetY = cfg.DefaultOffsetX, cfg.DefaultOffsetY
	}

	container := widget.New(contentW, contentH)
	container.AddChild(content)
	content.SetPosition(0, 0)

	return &Controller{
		target:       target,
		content:      content,
		container:    container,
		targetAnchor: opts.TargetAnchor,
		tipAnchor:    opts.TipAnchor,
		offsetX:      offsetX,
		offsetY:      offsetY,
		animate:      opts.Animate && cfg.AnimationsEnabled,
		contentW:     contentW,
		contentH:     contentH,
		duration:     cfg.AnimationDuration,
		hiddenValue:  cfg.HiddenValue,
		state:        StateHidden,
	}
}

// State 返回当前可见性状态
func (c *Controller) State() State {
	return c.state
}

// Container 返回定位容器（测试与绘制顺序调整用）
func (c *Controller) Container() *widget.Widget {
	return c.container
}

// Target 返回目标节点
func (c *Controller) Target() *widget.Widget {
	return c.target
}

// Show 请求显示提示框
//
// 参数：
//   - immediate: true 时跳过动画，同步进入 Shown
//
// 目标未挂载到显示树、已是 Shown、或正在 Showing 且继续请求
// 动画显示时均为空操作。Showing/Hiding 途中收到新请求时，
// 先取消在途动画并还原为 Hidden，保证每次都从头干净地显示。
func (c *Controller) Show(immediate bool) {
	stage := c.target.Stage()
	if stage == nil {
		return
	}

	animated := c.animate && !immediate

	if c.state == StateShown {
		return
	}
	// 正在显示动画中再次请求动画显示：防止动画重启抖动
	if c.state == StateShowing && animated {
		return
	}
	if c.state == StateShowing || c.state == StateHiding {
		c.cancelAnim()
		c.removeContainer()
		c.state = StateHidden
	}

	c.stage = stage

	// 目标锚点 → Stage 根坐标空间，再加偏移
	tx, ty := c.targetAnchor.Point(c.target.Size())
	ax, ay := c.target.LocalToStage(tx, ty)
	ax += c.offsetX
	ay += c.offsetY

	// 容器原点取提示框锚点：容器位置 = 锚点 - 原点，
	// 使提示框上的指定点恰好落在目标上的指定点
	ox, oy := c.tipAnchor.Point(c.contentW, c.contentH)
	c.container.SetOrigin(ox, oy)
	c.container.SetPosition(ax-ox, ay-oy)

	if animated {
		c.container.SetOpacity(c.hiddenValue)
		c.container.SetScale(c.hiddenValue)
		stage.AddOverlay(c.container)
		c.state = StateShowing
		c.startAnim(1.0, StateShown)
		return
	}

	c.container.SetOpacity(1.0)
	c.container.SetScale(1.0)
	stage.AddOverlay(c.container)
	c.state = StateShown
}

// Hide 请求隐藏提示框
//
// 参数：
//   - immediate: true 时跳过动画，同步移出悬浮层并进入 Hidden
//
// 已是 Hidden、或正在 Hiding 且继续请求动画隐藏时为空操作。
// Showing/Hiding 途中收到新请求时，先取消在途动画并把逻辑状态
// 钉在 Shown（部分显示的提示框视作已完全显示再反向播放），
// 悬停抖动时保持单段连续动画的观感。
func (c *Controller) Hide(immediate bool) {
	animated := c.animate && !immediate

	if c.state == StateHidden {
		return
	}
	if c.state == StateHiding && animated {
		return
	}
	if c.state == StateShowing || c.state == StateHiding {
		c.cancelAnim()
		c.state = StateShown
	}

	if animated {
		c.state = StateHiding
		c.startAnim(c.hiddenValue, StateHidden)
		return
	}

	c.removeContainer()
	c.state = StateHidden
}

// OnPointerEnter 指针进入目标的悬停区域
//
// 参数：
//   - pointer: 指针标识（悬停事件通常为 -1）
//   - other: 指针来源节点；它是目标后代时说明指针只是在
//     目标内部移动，不是真正的进入，忽略
func (c *Controller) OnPointerEnter(pointer int, other *widget.Widget) {
	_ = pointer
	if other != nil && other.IsDescendantOf(c.target) {
		return
	}
	c.Show(false)
}

// OnPointerExit 指针离开目标的悬停区域
//
// 参数：
//   - pointer: 指针标识
//   - other: 指针去往的节点
//
// 自上次按下后第一次离开到目标后代时抑制一次隐藏并消费
// 按下标志（按下处理器触发的迟到离开事件不应关闭提示框），
// 之后恢复正常行为。抑制严格只消费一次，进入事件不重置标志。
func (c *Controller) OnPointerExit(pointer int, other *widget.Widget) {
	_ = pointer
	if c.touchDown && other != nil && other.IsDescendantOf(c.target) {
		c.touchDown = false
		return
	}
	c.Hide(false)
}

// OnTouchDown 目标区域内发生按下/触摸
//
// 记录按下标志，并把容器提到悬浮层绘制顺序最前
//（未显示时为无害空操作）
func (c *Controller) OnTouchDown(pointer, button int) {
	_, _ = pointer, button
	c.touchDown = true
	if c.stage != nil {
		c.stage.BringToFront(c.container)
	}
}

// startAnim 启动一段从容器当前透明度到 to 的插值动画
// 完成时把状态推进到 terminal（若期间未被新请求取代）
func (c *Controller) startAnim(to float64, terminal State) {
	c.seq++
	seq := c.seq

	driver := anim.NewDriver(c.container.Opacity(), to, c.duration, anim.EaseFade)

	c.task = c.stage.Scheduler().Add(func(dt float64) bool {
		// 目标在动画途中被移出显示树：立即强制隐藏，
		// 避免悬浮层条目比其属主活得更久
		if c.target.Stage() == nil {
			c.forceHide()
			return true
		}

		v, done := driver.Step(dt)
		c.container.SetOpacity(v)
		c.container.SetScale(v)
		if !done {
			return false
		}

		// 过期完成守卫：状态已被后续请求接管时不再推进
		if c.seq == seq {
			c.task = nil
			c.state = terminal
			if terminal == StateHidden {
				c.removeContainer()
			}
		}
		return true
	})
}

// cancelAnim 同步取消在途动画并使其完成回调过期
func (c *Controller) cancelAnim() {
	c.seq++
	if c.task != nil && c.stage != nil {
		c.stage.Scheduler().Cancel(c.task)
	}
	c.task = nil
}

// forceHide 立即隐藏（动画 tick 中检测到目标失效时调用）
func (c *Controller) forceHide() {
	c.seq++
	c.task = nil
	c.removeContainer()
	c.state = StateHidden
}

// removeContainer 把容器移出悬浮层
func (c *Controller) removeContainer() {
	if c.stage != nil {
		c.stage.RemoveOverlay(c.container)
	}
}
