// Package input 提供合成鼠标操作
package input

import (
	"github.com/go-vgo/robotgo"
)

// NormalizeButton 规范化按键名称，非 "left" 一律视为 "right"
func NormalizeButton(button string) string {
	if button == "left" {
		return "left"
	}
	return "right"
}

// Click 在当前鼠标位置点击指定按键
func Click(button string) {
	robotgo.Click(NormalizeButton(button), false)
}

// ClickAt 移动到指定位置后点击
func ClickAt(x, y int, button string) {
	robotgo.Move(x, y)
	robotgo.MilliSleep(50) // 短暂延迟确保鼠标到位
	robotgo.Click(NormalizeButton(button), false)
}
