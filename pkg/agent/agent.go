// Package agent 实现钓鱼自动化的感知-决策-执行循环。
//
// 每个轮询周期依次执行：截取屏幕区域 → OCR 识别 → 同步竿状态 →
// 关键词触发匹配 → 超时恢复看门狗 → 周期性统计输出。
// 整个循环单线程运行，运行时状态只有循环自身会修改。
package agent

import (
	"image"
	"sync"
	"time"

	"github.com/zoeyai/fishagent/pkg/auto"
	"github.com/zoeyai/fishagent/pkg/config"
	"github.com/zoeyai/fishagent/pkg/vision/ocr"
)

// Desktop 桌面感知能力：截屏、主屏边界、窗口查找
type Desktop interface {
	// CaptureRegion 截取指定屏幕区域
	CaptureRegion(r auto.Region) (image.Image, error)
	// PrimaryBounds 主显示器边界
	PrimaryBounds() auto.Region
	// FindWindows 查找标题包含指定子串的窗口边界，无匹配时返回错误
	FindWindows(titleContains string) ([]auto.Region, error)
}

// Input 合成输入能力
type Input interface {
	// Click 在当前鼠标位置点击指定按键 ("left" / "right")
	Click(button string)
}

// Agent 钓鱼代理。运行时状态归控制循环独占，所有修改都发生在
// 循环同步调用的处理函数中，无并发访问。
type Agent struct {
	cfg     *config.FishingConfig
	desktop Desktop
	input   Input
	engine  ocr.Engine

	// 时间与休眠可注入，便于测试
	now   func() time.Time
	sleep func(time.Duration)

	startedAt time.Time

	rodCasted             bool
	lastTriggerAt         time.Time
	lastBiteSeenAt        time.Time
	lastNoBiteRecoverAt   time.Time
	lastNonEmptyOCRAt     time.Time
	lastOCREmptyRecoverAt time.Time

	castTimes   []time.Time
	nextStatsAt time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New 创建钓鱼代理。启动时竿状态默认为未抛出。
func New(cfg *config.FishingConfig, desktop Desktop, in Input, engine ocr.Engine) *Agent {
	a := &Agent{
		cfg:     cfg,
		desktop: desktop,
		input:   in,
		engine:  engine,
		now:     time.Now,
		sleep:   time.Sleep,
		stopCh:  make(chan struct{}),
	}

	now := a.now()
	a.startedAt = now
	a.lastBiteSeenAt = now
	a.lastNonEmptyOCRAt = now
	a.nextStatsAt = now.Add(a.statsInterval())
	return a
}

// RodCasted 当前竿是否处于抛出状态
func (a *Agent) RodCasted() bool {
	return a.rodCasted
}

// Stop 请求停止控制循环（幂等）
func (a *Agent) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}
