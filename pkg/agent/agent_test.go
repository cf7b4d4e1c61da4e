package agent

import (
	"image"
	"time"

	"github.com/zoeyai/fishagent/pkg/auto"
	"github.com/zoeyai/fishagent/pkg/config"
)

// fakeClock 可手动推进的测试时钟
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// fakeDesktop 桌面能力假实现
type fakeDesktop struct {
	bounds     auto.Region
	windows    []auto.Region
	windowsErr error
	captureErr error
	captured   []auto.Region
}

func (d *fakeDesktop) CaptureRegion(r auto.Region) (image.Image, error) {
	d.captured = append(d.captured, r)
	if d.captureErr != nil {
		return nil, d.captureErr
	}
	return image.NewRGBA(image.Rect(0, 0, r.Width, r.Height)), nil
}

func (d *fakeDesktop) PrimaryBounds() auto.Region {
	return d.bounds
}

func (d *fakeDesktop) FindWindows(titleContains string) ([]auto.Region, error) {
	if d.windowsErr != nil {
		return nil, d.windowsErr
	}
	return d.windows, nil
}

// fakeInput 记录点击序列
type fakeInput struct {
	clicks []string
}

func (i *fakeInput) Click(button string) {
	i.clicks = append(i.clicks, button)
}

// fakeEngine 按队列顺序返回预设识别结果，队列耗尽后返回空
type fakeEngine struct {
	queue []recognizeReply
	calls int
}

type recognizeReply struct {
	fragments []string
	err       error
}

func (e *fakeEngine) push(fragments ...string) {
	e.queue = append(e.queue, recognizeReply{fragments: fragments})
}

func (e *fakeEngine) pushErr(err error) {
	e.queue = append(e.queue, recognizeReply{err: err})
}

func (e *fakeEngine) Recognize(img image.Image) ([]string, error) {
	e.calls++
	if len(e.queue) == 0 {
		return nil, nil
	}
	reply := e.queue[0]
	e.queue = e.queue[1:]
	return reply.fragments, reply.err
}

func (e *fakeEngine) Close() error {
	return nil
}

// testAgent 组合测试用的代理和全部假协作者
type testAgent struct {
	agent   *Agent
	clock   *fakeClock
	desktop *fakeDesktop
	input   *fakeInput
	engine  *fakeEngine
}

// newTestAgent 创建使用假时钟和假协作者的代理。
// 假休眠直接推进时钟，不真正等待。
func newTestAgent(cfg *config.FishingConfig) *testAgent {
	clk := newFakeClock()
	desktop := &fakeDesktop{bounds: auto.Region{X: 0, Y: 0, Width: 1920, Height: 1080}}
	in := &fakeInput{}
	engine := &fakeEngine{}

	a := New(cfg, desktop, in, engine)
	a.now = clk.Now
	a.sleep = func(d time.Duration) { clk.Advance(d) }

	// 重新按假时钟初始化启动时间戳
	now := clk.Now()
	a.startedAt = now
	a.lastBiteSeenAt = now
	a.lastNonEmptyOCRAt = now
	a.nextStatsAt = now.Add(a.statsInterval())

	return &testAgent{
		agent:   a,
		clock:   clk,
		desktop: desktop,
		input:   in,
		engine:  engine,
	}
}

// floatPtr 测试用指针辅助函数
func floatPtr(v float64) *float64 {
	return &v
}
