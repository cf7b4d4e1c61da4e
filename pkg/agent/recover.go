package agent

import (
	"strings"
	"time"

	"github.com/zoeyai/fishagent/internal/logger"
	"github.com/zoeyai/fishagent/pkg/config"
)

// smartRecoverMinWait 探测点击后的最小等待时间
const smartRecoverMinWait = 50 * time.Millisecond

// runRecoverAction 执行恢复动作。smart_recover 需要再次 OCR，
// 识别失败时返回错误，此时调用方不刷新时间戳，下个周期会重试。
func (a *Agent) runRecoverAction(action, reasonTag string) error {
	button := a.defaultButton()
	var note string

	switch action {
	case "recast":
		a.recast(button)
		note = "recast"

	case "smart_recover":
		var err error
		note, err = a.smartRecover(button)
		if err != nil {
			return err
		}

	case "cast_if_idle":
		if !a.rodCasted {
			a.castOnce(button)
			note = "cast_if_idle(casted)"
		} else {
			note = "cast_if_idle(skip_already_casted)"
		}

	default:
		a.click(button)
		note = "click"
	}

	logger.Info("[RECOVER] %s action=%s", reasonTag, note)
	return nil
}

// smartRecover 探测-判定恢复：先盲点一次（效果未知），等待后再次
// OCR，根据探测文本判定实际发生了什么并补齐状态。
func (a *Agent) smartRecover(button string) (string, error) {
	probeClickAt := a.now()
	a.click(button)

	wait := config.Seconds(a.cfg.SmartRecoverProbeWaitSec)
	if wait < smartRecoverMinWait {
		wait = smartRecoverMinWait
	}
	a.sleep(wait)

	probeText, err := a.captureText()
	if err != nil {
		return "", err
	}
	if a.cfg.PrintOCRText {
		logger.Info("[OCR-PROBE] %s", probeText)
	}
	if strings.TrimSpace(probeText) != "" {
		a.lastNonEmptyOCRAt = a.now()
	}

	probeNormalized := a.normalize(probeText)
	a.syncStateFromText(probeNormalized)
	a.touchBitePresence(probeNormalized)

	castKW := a.normalize(a.cfg.CastKeyword)
	reelKW := a.normalize(a.cfg.ReelKeyword)
	castHit := castKW != "" && strings.Contains(probeNormalized, castKW)
	reelHit := reelKW != "" && strings.Contains(probeNormalized, reelKW)

	switch {
	case reelHit:
		// 探测点击把竿收了回来，重新抛出
		a.castOnce(button)
		return "smart_recover(retrieved_then_cast)", nil
	case castHit:
		// 探测点击本身就是一次抛竿，按探测点击时刻记录
		a.rodCasted = true
		a.castTimes = append(a.castTimes, probeClickAt)
		return "smart_recover(thrown_ok)", nil
	case !a.rodCasted:
		a.castOnce(button)
		return "smart_recover(unknown_then_cast)", nil
	default:
		return "smart_recover(unknown_keep)", nil
	}
}

// recoverCooldown 恢复冷却时间，负数按 0 处理
func recoverCooldown(sec float64) time.Duration {
	if sec < 0 {
		return 0
	}
	return config.Seconds(sec)
}

// handleNoBiteTimeout 无咬钩看门狗：超过超时时间没有见到任何
// 咬钩关键词且不在冷却期内时执行恢复动作
func (a *Agent) handleNoBiteTimeout() error {
	timeout := a.cfg.NoBiteTimeout()
	if timeout <= 0 {
		return nil
	}

	now := a.now()
	if now.Sub(a.lastBiteSeenAt) < timeout {
		return nil
	}
	if now.Sub(a.lastNoBiteRecoverAt) < recoverCooldown(a.cfg.NoBiteRecoverCooldownSec) {
		return nil
	}

	if err := a.runRecoverAction(a.cfg.NoBiteTimeoutAction, "no_bite_timeout"); err != nil {
		return err
	}
	a.lastNoBiteRecoverAt = now
	a.lastBiteSeenAt = now
	return nil
}

// handleOCREmptyTimeout OCR 空文本看门狗：超过超时时间 OCR 一直
// 返回空文本且不在冷却期内时执行恢复动作
func (a *Agent) handleOCREmptyTimeout() error {
	timeout := a.cfg.OCREmptyTimeout()
	if timeout <= 0 {
		return nil
	}

	now := a.now()
	if now.Sub(a.lastNonEmptyOCRAt) < timeout {
		return nil
	}
	if now.Sub(a.lastOCREmptyRecoverAt) < recoverCooldown(a.cfg.OCREmptyRecoverCooldownSec) {
		return nil
	}

	if err := a.runRecoverAction(a.cfg.OCREmptyTimeoutAction, "ocr_empty_timeout"); err != nil {
		return err
	}
	a.lastOCREmptyRecoverAt = now
	a.lastNonEmptyOCRAt = now
	return nil
}
