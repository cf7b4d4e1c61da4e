package agent

import (
	"errors"
	"testing"

	"github.com/zoeyai/fishagent/pkg/auto"
	"github.com/zoeyai/fishagent/pkg/config"
)

func TestResolveRegionExplicit(t *testing.T) {
	cfg := config.Default()
	cfg.Region = &config.Region{Left: 10, Top: 20, Width: 300, Height: 400}
	ta := newTestAgent(cfg)

	got, err := ta.agent.ResolveRegion()
	if err != nil {
		t.Fatalf("解析区域失败: %v", err)
	}
	want := auto.Region{X: 10, Y: 20, Width: 300, Height: 400}
	if got != want {
		t.Errorf("显式区域应原样返回: 期望 %+v, 实际 %+v", want, got)
	}
}

func TestResolveRegionWindowLookup(t *testing.T) {
	cfg := config.Default()
	cfg.WindowTitleContains = "World of Fish"
	ta := newTestAgent(cfg)
	ta.desktop.windows = []auto.Region{
		{X: 100, Y: 50, Width: 800, Height: 600},
		{X: 0, Y: 0, Width: 640, Height: 480},
	}

	got, err := ta.agent.ResolveRegion()
	if err != nil {
		t.Fatalf("解析区域失败: %v", err)
	}
	if got != ta.desktop.windows[0] {
		t.Errorf("应使用第一个匹配窗口的边界: 实际 %+v", got)
	}
}

func TestResolveRegionWindowNotFound(t *testing.T) {
	cfg := config.Default()
	cfg.WindowTitleContains = "nope"
	ta := newTestAgent(cfg)
	ta.desktop.windowsErr = errors.New("未找到匹配的窗口")

	_, err := ta.agent.ResolveRegion()
	if err == nil {
		t.Fatal("窗口查找失败时应返回错误")
	}
	t.Logf("错误: %v", err)
}

func TestResolveRegionPrimaryFallback(t *testing.T) {
	cfg := config.Default()
	ta := newTestAgent(cfg)
	ta.desktop.bounds = auto.Region{X: 0, Y: 0, Width: 2560, Height: 1440}

	got, err := ta.agent.ResolveRegion()
	if err != nil {
		t.Fatalf("解析区域失败: %v", err)
	}
	if got != ta.desktop.bounds {
		t.Errorf("无配置时应回退到主显示器: 实际 %+v", got)
	}
}

func TestFocusRatioClamp(t *testing.T) {
	tests := []struct {
		name  string
		base  config.Region
		ratio config.FocusRatio
		want  auto.Region
	}{
		{
			name:  "width clamped to base edge",
			base:  config.Region{Left: 0, Top: 0, Width: 100, Height: 100},
			ratio: config.FocusRatio{X: 0.9, Y: 0, Width: 0.5, Height: 1},
			want:  auto.Region{X: 90, Y: 0, Width: 10, Height: 100},
		},
		{
			name:  "inner sub-rectangle untouched",
			base:  config.Region{Left: 0, Top: 0, Width: 200, Height: 100},
			ratio: config.FocusRatio{X: 0.25, Y: 0.5, Width: 0.5, Height: 0.5},
			want:  auto.Region{X: 50, Y: 50, Width: 100, Height: 50},
		},
		{
			name:  "zero ratio width floors to one pixel",
			base:  config.Region{Left: 0, Top: 0, Width: 100, Height: 100},
			ratio: config.FocusRatio{X: 0, Y: 0, Width: 0, Height: 0},
			want:  auto.Region{X: 0, Y: 0, Width: 1, Height: 1},
		},
		{
			name:  "offset base region",
			base:  config.Region{Left: 100, Top: 200, Width: 100, Height: 100},
			ratio: config.FocusRatio{X: 0.9, Y: 0, Width: 0.5, Height: 1},
			want:  auto.Region{X: 190, Y: 200, Width: 10, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			base := tt.base
			ratio := tt.ratio
			cfg.Region = &base
			cfg.FocusRegionRatio = &ratio
			ta := newTestAgent(cfg)

			got, err := ta.agent.ResolveRegion()
			if err != nil {
				t.Fatalf("解析区域失败: %v", err)
			}
			if got != tt.want {
				t.Errorf("聚焦区域不符: 期望 %+v, 实际 %+v", tt.want, got)
			}
		})
	}
}
