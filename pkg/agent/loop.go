package agent

import (
	"strings"
	"time"

	"github.com/zoeyai/fishagent/internal/logger"
)

// errBackoffFloor 轮询出错后的最小休眠时间，避免错误状态下空转
const errBackoffFloor = 200 * time.Millisecond

// step 执行一次感知与触发：截屏识别 → 状态同步 → 触发匹配。
// 识别链路出错时返回错误，由调用方决定如何处理。
func (a *Agent) step() (TriggerResult, error) {
	text, err := a.captureText()
	if err != nil {
		return TriggerResult{}, err
	}

	if a.cfg.PrintOCRText {
		logger.Info("[OCR] %s", text)
	}
	if strings.TrimSpace(text) != "" {
		a.lastNonEmptyOCRAt = a.now()
	}

	normalized := a.normalize(text)
	a.syncStateFromText(normalized)
	a.touchBitePresence(normalized)

	return a.matchTrigger(normalized, text), nil
}

// tick 完整执行一个轮询周期：step + 两个恢复看门狗 + 统计输出。
// 无咬钩看门狗先于 OCR 空文本看门狗检查，两者可能在同一周期
// 先后触发各自的恢复动作。
func (a *Agent) tick() error {
	result, err := a.step()
	if err != nil {
		return err
	}
	now := a.now()

	if result.Matched {
		logger.Info("[TRIGGER] keyword=%s action=%s button=%s casted=%v",
			result.Keyword, result.Action, result.Button, a.rodCasted)
	}

	if err := a.handleNoBiteTimeout(); err != nil {
		return err
	}
	if err := a.handleOCREmptyTimeout(); err != nil {
		return err
	}

	if !now.Before(a.nextStatsAt) {
		a.emitStats(false)
		a.nextStatsAt = now.Add(a.statsInterval())
	}
	return nil
}

// Run 启动控制循环，阻塞运行直到 Stop 被调用。
// 启动时竿未抛出则先抛一次竿。任何周期内的错误都只告警并
// 继续下一个周期，循环不会因此退出。
func (a *Agent) Run() {
	logger.Info("FishingAgent 已启动")

	if !a.rodCasted {
		logger.Info("[BOOT] 未检测到抛竿状态，先抛一次竿")
		a.castOnce(a.defaultButton())
		a.sleep(a.cfg.RecastDelay())
	}

	for {
		select {
		case <-a.stopCh:
			a.emitStats(true)
			logger.Info("已停止")
			return
		default:
		}

		if err := a.tick(); err != nil {
			logger.Warn("轮询出错: %v", err)
			a.sleepUntilStop(maxDuration(a.cfg.Interval(), errBackoffFloor))
			continue
		}

		a.sleepUntilStop(a.cfg.Interval())
	}
}

// sleepUntilStop 休眠指定时长，Stop 被调用时提前返回
func (a *Agent) sleepUntilStop(d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-a.stopCh:
	case <-time.After(d):
	}
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
