package agent

import (
	"fmt"
	"strings"

	"github.com/zoeyai/fishagent/pkg/vision/ocr"
)

// captureText 截取当前区域并识别文字，返回空白分隔的单个字符串。
// 未识别到任何文字时返回空字符串。
func (a *Agent) captureText() (string, error) {
	region, err := a.ResolveRegion()
	if err != nil {
		return "", err
	}

	img, err := a.desktop.CaptureRegion(region)
	if err != nil {
		return "", fmt.Errorf("截取区域失败: %w", err)
	}

	fragments, err := a.engine.Recognize(img)
	if err != nil {
		return "", fmt.Errorf("OCR 识别失败: %w", err)
	}

	return ocr.JoinFragments(fragments), nil
}

// normalize 按配置折叠大小写
func (a *Agent) normalize(text string) string {
	if a.cfg.CaseSensitive {
		return text
	}
	return strings.ToLower(text)
}

// syncStateFromText 根据识别文本同步竿状态。
// 抛竿关键词先判，收竿关键词后判，两者同时出现时收竿生效。
func (a *Agent) syncStateFromText(normalized string) {
	castKW := a.normalize(a.cfg.CastKeyword)
	reelKW := a.normalize(a.cfg.ReelKeyword)

	if castKW != "" && strings.Contains(normalized, castKW) {
		a.rodCasted = true
	}
	if reelKW != "" && strings.Contains(normalized, reelKW) {
		a.rodCasted = false
	}
}

// touchBitePresence 识别文本中出现任一咬钩关键词时刷新咬钩时间戳
func (a *Agent) touchBitePresence(normalized string) {
	for _, kw := range a.cfg.BitePresenceKeywords {
		target := a.normalize(kw)
		if target != "" && strings.Contains(normalized, target) {
			a.lastBiteSeenAt = a.now()
			return
		}
	}
}
