package agent

import (
	"fmt"

	"github.com/zoeyai/fishagent/pkg/auto"
)

// baseRegion 计算基础截图区域：
// 显式配置的区域 → 按标题查到的第一个窗口 → 主显示器
func (a *Agent) baseRegion() (auto.Region, error) {
	if r := a.cfg.Region; r != nil {
		return auto.Region{X: r.Left, Y: r.Top, Width: r.Width, Height: r.Height}, nil
	}

	if title := a.cfg.WindowTitleContains; title != "" {
		windows, err := a.desktop.FindWindows(title)
		if err != nil {
			return auto.Region{}, err
		}
		if len(windows) == 0 {
			return auto.Region{}, fmt.Errorf("未找到标题包含 %q 的窗口", title)
		}
		return windows[0], nil
	}

	return a.desktop.PrimaryBounds(), nil
}

// ResolveRegion 计算最终截图区域。配置了焦点比例时在基础区域内
// 取子矩形，且子矩形不会越出基础区域边界，宽高至少 1 像素。
func (a *Agent) ResolveRegion() (auto.Region, error) {
	base, err := a.baseRegion()
	if err != nil {
		return auto.Region{}, err
	}

	ratio := a.cfg.FocusRegionRatio
	if ratio == nil {
		return base, nil
	}

	x := base.X + int(float64(base.Width)*ratio.X)
	y := base.Y + int(float64(base.Height)*ratio.Y)
	w := int(float64(base.Width) * ratio.Width)
	h := int(float64(base.Height) * ratio.Height)

	return auto.Region{
		X:      auto.MaxInt(x, base.X),
		Y:      auto.MaxInt(y, base.Y),
		Width:  auto.MaxInt(1, auto.MinInt(w, base.X+base.Width-x)),
		Height: auto.MaxInt(1, auto.MinInt(h, base.Y+base.Height-y)),
	}, nil
}
