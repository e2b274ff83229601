// tooltipdemo 悬浮提示框演示程序
//
// 构建一个带两个目标按钮的场景，鼠标悬停（或触摸）时在按钮
// 上方弹出带缩放/淡入动画的提示框。按 A 键切换动画开关并持久化。
package main

import (
	"flag"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/tipkit/pkg/config"
	"github.com/decker502/tipkit/pkg/input"
	"github.com/decker502/tipkit/pkg/prefs"
	"github.com/decker502/tipkit/pkg/tooltip"
	"github.com/decker502/tipkit/pkg/widget"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

// Demo 演示应用，实现 ebiten.Game 接口
type Demo struct {
	stage       *widget.Stage
	dispatcher  *input.Dispatcher
	prefsMgr    *prefs.Manager
	controllers []*tooltip.Controller
}

// NewDemo 创建并初始化演示应用
func NewDemo(verbose bool) (*Demo, error) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// gdata 打不开时降级为仅内存偏好
	gdataManager, err := gdata.Open(gdata.Config{AppName: "tipkit_demo"})
	if err != nil {
		log.Printf("[Demo] gdata unavailable: %v (prefs will not persist)", err)
		gdataManager = nil
	}

	prefsMgr, err := prefs.NewManager(gdataManager)
	if err != nil {
		return nil, err
	}

	d := &Demo{
		stage:    widget.NewStage(screenWidth, screenHeight),
		prefsMgr: prefsMgr,
	}
	d.dispatcher = input.NewDispatcher(d.stage)
	d.buildScene()

	log.Printf("[Demo] Initialized: animations=%v", prefsMgr.GetPrefs().AnimationsEnabled)
	return d, nil
}

// buildScene 构建目标按钮和提示框
func (d *Demo) buildScene() {
	p := d.prefsMgr.GetPrefs()
	cfg := config.DefaultTooltipConfig()
	cfg.AnimationDuration = p.AnimationDuration
	cfg.AnimationsEnabled = p.AnimationsEnabled

	targets := []struct {
		x, y, w, h float64
		fill       color.RGBA
		tipW, tipH float64
	}{
		{x: 150, y: 260, w: 120, h: 48, fill: color.RGBA{R: 70, G: 130, B: 180, A: 255}, tipW: 160, tipH: 40},
		{x: 520, y: 260, w: 120, h: 48, fill: color.RGBA{R: 180, G: 90, B: 70, A: 255}, tipW: 140, tipH: 56},
	}

	for _, tc := range targets {
		target := widget.New(tc.w, tc.h)
		target.SetPosition(tc.x, tc.y)
		target.SetImage(solidImage(int(tc.w), int(tc.h), tc.fill))
		d.stage.Root.AddChild(target)

		content := widget.New(tc.tipW, tc.tipH)
		content.SetImage(solidImage(int(tc.tipW), int(tc.tipH), color.RGBA{R: 255, G: 255, B: 204, A: 255}))

		// 提示框下边缘中点吸附在按钮上边缘中点，上移 4 像素
		ctl := tooltip.New(target, content, tooltip.Options{
			TargetAnchor: tooltip.AnchorTopCenter,
			TipAnchor:    tooltip.AnchorBottomCenter,
			OffsetY:      -4,
			Animate:      true,
			Config:       cfg,
		})
		d.controllers = append(d.controllers, ctl)
		d.dispatcher.Register(target, ctl)
	}
}

// Update 更新逻辑（每 tick 调用一次，通常每秒 60 次）
func (d *Demo) Update() error {
	// A 键切换动画开关并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		enabled := !d.prefsMgr.GetPrefs().AnimationsEnabled
		d.prefsMgr.SetAnimationsEnabled(enabled)
		if err := d.prefsMgr.Save(); err != nil {
			log.Printf("[Demo] Failed to save prefs: %v", err)
		}
		log.Printf("[Demo] Animations enabled: %v (takes effect on restart)", enabled)
	}

	d.dispatcher.Update()
	d.stage.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制画面（每帧调用一次）
func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 44, B: 52, A: 255})
	d.stage.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// solidImage 创建纯色图片
func solidImage(w, h int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	demo, err := NewDemo(*verbose)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tipkit - tooltip overlay demo")

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
