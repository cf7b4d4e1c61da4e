package agent

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zoeyai/fishagent/pkg/config"
)

func TestStatsSnapshotAverageInterval(t *testing.T) {
	tests := []struct {
		name    string
		offsets []time.Duration // 相对启动时刻的抛竿时间
		want    float64
	}{
		{
			name:    "three casts",
			offsets: []time.Duration{10 * time.Second, 15 * time.Second, 21 * time.Second},
			want:    5.5,
		},
		{
			name:    "single cast",
			offsets: []time.Duration{10 * time.Second},
			want:    0,
		},
		{
			name:    "no casts",
			offsets: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAgent(config.Default())
			base := ta.clock.Now()
			for _, off := range tt.offsets {
				ta.agent.castTimes = append(ta.agent.castTimes, base.Add(off))
			}

			count, avg, _ := ta.agent.statsSnapshot()
			if count != len(tt.offsets) {
				t.Errorf("抛竿次数: 期望 %d, 实际 %d", len(tt.offsets), count)
			}
			if math.Abs(avg-tt.want) > 1e-9 {
				t.Errorf("平均间隔: 期望 %v, 实际 %v", tt.want, avg)
			}
		})
	}
}

func TestStatsSnapshotRuntime(t *testing.T) {
	ta := newTestAgent(config.Default())
	ta.clock.Advance(90 * time.Second)

	_, _, runtime := ta.agent.statsSnapshot()
	if math.Abs(runtime-90) > 1e-9 {
		t.Errorf("运行时长: 期望 90s, 实际 %vs", runtime)
	}
}

func TestStatsIntervalFloor(t *testing.T) {
	cfg := config.Default()
	cfg.StatsPrintInterval = 0.1
	ta := newTestAgent(cfg)

	if got := ta.agent.statsInterval(); got != time.Second {
		t.Errorf("统计间隔最小应为 1s: 实际 %v", got)
	}

	cfg.StatsPrintInterval = 30
	if got := ta.agent.statsInterval(); got != 30*time.Second {
		t.Errorf("统计间隔: 期望 30s, 实际 %v", got)
	}
}

func TestEmitStatsAppendsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "stats.log")
	cfg := config.Default()
	cfg.StatsLogFile = logPath
	ta := newTestAgent(cfg)

	base := ta.clock.Now()
	ta.agent.castTimes = []time.Time{base, base.Add(4 * time.Second)}

	ta.agent.emitStats(false)
	ta.agent.emitStats(true)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("统计日志文件应被创建 (含目录): %v", err)
	}

	content := string(data)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 2 {
		t.Fatalf("应追加两行, 实际 %d 行: %q", len(lines), content)
	}
	if !strings.HasPrefix(lines[0], "[STATS]") {
		t.Errorf("周期统计行应以 [STATS] 开头: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[STATS-FINAL]") {
		t.Errorf("最终统计行应以 [STATS-FINAL] 开头: %q", lines[1])
	}
	if !strings.Contains(lines[0], "casts=2") {
		t.Errorf("统计行应包含抛竿次数: %q", lines[0])
	}
	if !strings.Contains(lines[0], "avg_cast_interval_sec=4.00") {
		t.Errorf("统计行应包含平均间隔: %q", lines[0])
	}
}

func TestEmitStatsRelativePath(t *testing.T) {
	tempDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取工作目录失败: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	defer os.Chdir(oldWD)

	cfg := config.Default()
	cfg.StatsLogFile = "out/stats.log"
	ta := newTestAgent(cfg)

	ta.agent.emitStats(false)

	// 相对路径基于当前工作目录解析
	if _, err := os.Stat(filepath.Join(tempDir, "out", "stats.log")); err != nil {
		t.Errorf("相对路径的统计日志应写入工作目录下: %v", err)
	}
}
