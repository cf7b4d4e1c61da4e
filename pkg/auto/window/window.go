// Package window 提供窗口查找功能
package window

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"

	"github.com/zoeyai/fishagent/pkg/auto"
)

// ErrWindowNotFound 未找到匹配窗口
var ErrWindowNotFound = errors.New("未找到匹配的窗口")

// WindowInfo 窗口信息
type WindowInfo struct {
	PID    int         `json:"pid"`
	Title  string      `json:"title"`
	Bounds auto.Region `json:"bounds"`
}

// FindWindows 查找标题包含指定子串的窗口 (不区分大小写)。
// 一个窗口都没找到时返回 ErrWindowNotFound。
func FindWindows(titleContains string) ([]WindowInfo, error) {
	pids, err := robotgo.Pids()
	if err != nil {
		return nil, fmt.Errorf("获取进程列表失败: %w", err)
	}

	filter := strings.ToLower(titleContains)

	var windows []WindowInfo
	for _, pid := range pids {
		title := robotgo.GetTitle(pid)
		if title == "" {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(title), filter) {
			continue
		}

		x, y, w, h := robotgo.GetBounds(pid)
		if w == 0 && h == 0 {
			continue
		}

		windows = append(windows, WindowInfo{
			PID:   pid,
			Title: title,
			Bounds: auto.Region{
				X:      x,
				Y:      y,
				Width:  w,
				Height: h,
			},
		})
	}

	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: 标题包含 %q", ErrWindowNotFound, titleContains)
	}
	return windows, nil
}
