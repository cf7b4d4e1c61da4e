package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/zoeyai/fishagent/internal/logger"
	"github.com/zoeyai/fishagent/pkg/config"
)

// statsInterval 统计输出间隔，最小 1 秒
func (a *Agent) statsInterval() time.Duration {
	d := config.Seconds(a.cfg.StatsPrintInterval)
	if d < time.Second {
		d = time.Second
	}
	return d
}

// statsSnapshot 统计快照：抛竿次数、相邻抛竿的平均间隔秒数
// (不足 2 次为 0)、运行秒数
func (a *Agent) statsSnapshot() (castCount int, avgInterval, runtime float64) {
	castCount = len(a.castTimes)

	runtime = a.now().Sub(a.startedAt).Seconds()
	if runtime < 0 {
		runtime = 0
	}

	if castCount >= 2 {
		var total float64
		for i := 1; i < castCount; i++ {
			total += a.castTimes[i].Sub(a.castTimes[i-1]).Seconds()
		}
		avgInterval = total / float64(castCount-1)
	}
	return castCount, avgInterval, runtime
}

// emitStats 输出统计行到标准输出，配置了统计日志文件时同时追加写入
func (a *Agent) emitStats(final bool) {
	castCount, avgInterval, runtime := a.statsSnapshot()

	tag := "STATS"
	if final {
		tag = "STATS-FINAL"
	}

	msg := fmt.Sprintf("[%s] casts=%d avg_cast_interval_sec=%.2f runtime_sec=%.2f%s",
		tag, castCount, avgInterval, runtime, resourceSuffix())
	fmt.Println(msg)

	if a.cfg.StatsLogFile != "" {
		a.appendStatsLine(msg)
	}
}

// appendStatsLine 追加统计行到日志文件。相对路径基于当前工作
// 目录解析，目录不存在时自动创建。写入失败只告警不中断循环。
func (a *Agent) appendStatsLine(line string) {
	path := a.cfg.StatsLogFile
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err == nil {
			path = filepath.Join(cwd, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Warn("创建统计日志目录失败: %v", err)
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Warn("打开统计日志文件失败: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		logger.Warn("写入统计日志失败: %v", err)
	}
}

// resourceSuffix 当前进程的资源占用 (RSS 与 CPU)，获取失败时省略
func resourceSuffix() string {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ""
	}

	suffix := ""
	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		suffix += fmt.Sprintf(" rss_mb=%.1f", float64(mem.RSS)/1024/1024)
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		suffix += fmt.Sprintf(" cpu_pct=%.1f", cpu)
	}
	return suffix
}
