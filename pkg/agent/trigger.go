package agent

import (
	"strings"

	"github.com/zoeyai/fishagent/pkg/auto/input"
)

// TriggerResult 单次轮询的触发结果，不跨周期保留
type TriggerResult struct {
	// Matched 是否有关键词命中并执行了动作
	Matched bool
	// Keyword 命中的关键词
	Keyword string
	// Action 解析出的动作
	Action string
	// Button 使用的按键
	Button string
	// Text 本次识别的原始文本
	Text string
}

// resolveAction 查找关键词对应的动作，未配置时默认为 click
func (a *Agent) resolveAction(keyword string) string {
	if action := a.cfg.KeywordActions[keyword]; action != "" {
		return action
	}
	return "click"
}

// selectButton 按声明顺序扫描按键规则，第一条命中即生效，
// 无命中时使用默认按键
func (a *Agent) selectButton(normalized string) string {
	for _, rule := range a.cfg.ButtonRules {
		key := a.normalize(rule.Key)
		if strings.Contains(normalized, key) {
			return input.NormalizeButton(rule.Button)
		}
	}
	return a.defaultButton()
}

// matchTrigger 按配置顺序扫描关键词，执行第一条命中的动作。
// 距上次触发不足冷却时间时本次命中被抑制（不延后执行）。
// 每个轮询周期最多触发一次。
func (a *Agent) matchTrigger(normalized, raw string) TriggerResult {
	for _, kw := range a.cfg.Keywords {
		target := a.normalize(kw)
		if !strings.Contains(normalized, target) {
			continue
		}

		now := a.now()
		if now.Sub(a.lastTriggerAt) < a.cfg.Cooldown() {
			return TriggerResult{Text: raw}
		}

		action := a.resolveAction(kw)
		button := a.selectButton(normalized)
		a.runAction(action, button)

		a.lastTriggerAt = now
		a.lastBiteSeenAt = now
		return TriggerResult{
			Matched: true,
			Keyword: kw,
			Action:  action,
			Button:  button,
			Text:    raw,
		}
	}

	return TriggerResult{Text: raw}
}
