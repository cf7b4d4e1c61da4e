// Package screen 提供屏幕截图功能
package screen

import (
	"fmt"
	"image"

	"github.com/go-vgo/robotgo"

	"github.com/zoeyai/fishagent/pkg/auto"
)

// CaptureScreen 截取全屏
func CaptureScreen() (image.Image, error) {
	img, err := robotgo.CaptureImg()
	if err != nil {
		return nil, fmt.Errorf("截屏失败: %w", err)
	}
	return img, nil
}

// CaptureRegion 截取屏幕区域
func CaptureRegion(r auto.Region) (image.Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("无效的截图区域: %+v", r)
	}
	img, err := robotgo.CaptureImg(r.X, r.Y, r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("截取区域失败: %w", err)
	}
	return img, nil
}

// PrimaryBounds 获取主显示器边界
func PrimaryBounds() auto.Region {
	w, h := robotgo.GetScreenSize()
	return auto.Region{X: 0, Y: 0, Width: w, Height: h}
}

// DisplayCount 获取显示器数量
func DisplayCount() int {
	return robotgo.DisplaysNum()
}
