package agent

import (
	"github.com/zoeyai/fishagent/pkg/auto/input"
)

// click 单次点击，不改变竿状态
func (a *Agent) click(button string) {
	a.input.Click(button)
}

// castOnce 抛竿：点击并记录抛竿时间
func (a *Agent) castOnce(button string) {
	a.click(button)
	a.rodCasted = true
	a.castTimes = append(a.castTimes, a.now())
}

// reelOnce 收竿
func (a *Agent) reelOnce(button string) {
	a.click(button)
	a.rodCasted = false
}

// recast 收竿后延迟再抛竿
func (a *Agent) recast(button string) {
	a.reelOnce(button)
	a.sleep(a.cfg.RecastDelay())
	a.castOnce(button)
}

// runAction 执行抽象动作，未知动作一律视为普通点击
func (a *Agent) runAction(action, button string) {
	switch action {
	case "recast":
		a.recast(button)
	case "cast_if_idle":
		if !a.rodCasted {
			a.castOnce(button)
		}
	case "reel_only":
		a.reelOnce(button)
	default:
		a.click(button)
	}
}

// defaultButton 配置的默认按键
func (a *Agent) defaultButton() string {
	return input.NormalizeButton(a.cfg.DefaultButton)
}
