package agent

import (
	"image"

	"github.com/zoeyai/fishagent/pkg/auto"
	"github.com/zoeyai/fishagent/pkg/auto/input"
	"github.com/zoeyai/fishagent/pkg/auto/screen"
	"github.com/zoeyai/fishagent/pkg/auto/window"
)

// RobotDesktop 基于 robotgo 的桌面能力实现
type RobotDesktop struct{}

// CaptureRegion 截取屏幕区域
func (RobotDesktop) CaptureRegion(r auto.Region) (image.Image, error) {
	return screen.CaptureRegion(r)
}

// PrimaryBounds 主显示器边界
func (RobotDesktop) PrimaryBounds() auto.Region {
	return screen.PrimaryBounds()
}

// FindWindows 查找标题包含指定子串的窗口边界
func (RobotDesktop) FindWindows(titleContains string) ([]auto.Region, error) {
	windows, err := window.FindWindows(titleContains)
	if err != nil {
		return nil, err
	}

	bounds := make([]auto.Region, 0, len(windows))
	for _, w := range windows {
		bounds = append(bounds, w.Bounds)
	}
	return bounds, nil
}

// RobotInput 基于 robotgo 的合成输入实现
type RobotInput struct{}

// Click 点击指定按键
func (RobotInput) Click(button string) {
	input.Click(button)
}
