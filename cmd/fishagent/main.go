package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoeyai/fishagent/internal/logger"
	"github.com/zoeyai/fishagent/pkg/agent"
	"github.com/zoeyai/fishagent/pkg/auto/window"
	"github.com/zoeyai/fishagent/pkg/config"
	"github.com/zoeyai/fishagent/pkg/vision/ocr"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径 (JSON)")
		logLevel    = flag.String("log-level", "INFO", "日志级别 (DEBUG/INFO/WARN/ERROR)")
		logFile     = flag.String("log-file", "", "日志文件路径 (追加写入，默认只输出到控制台)")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}
	if *showHelp {
		printHelp()
		return
	}

	if *configPath == "" {
		fmt.Println("[ERROR] 缺少配置文件，请使用 -config 参数指定")
		printHelp()
		os.Exit(1)
	}

	logger.Default().SetLevel(logger.ParseLevel(*logLevel))
	if *logFile != "" {
		if err := logger.Default().SetFile(*logFile); err != nil {
			fmt.Printf("[ERROR] 打开日志文件失败: %v\n", err)
			os.Exit(1)
		}
		defer logger.Default().Close()
	}

	// 配置错误在循环启动前直接失败
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("[ERROR] 加载配置失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("========================================")
	fmt.Printf("  Fish Agent v%s\n", Version)
	fmt.Println("========================================")
	fmt.Printf("配置文件: %s\n", *configPath)
	fmt.Printf("OCR 引擎: %s\n", cfg.OCREngine)
	fmt.Println()

	engine, err := ocr.NewEngine(ocr.Config{
		Engine:    cfg.OCREngine,
		Languages: cfg.Languages,
		Lang:      cfg.OCRLang,
	})
	if err != nil {
		fmt.Printf("[ERROR] 初始化 OCR 引擎失败: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	ag := agent.New(cfg, agent.RobotDesktop{}, agent.RobotInput{}, engine)

	// 窗口配置错误同样在循环启动前暴露；循环中窗口消失
	// 则作为普通的周期错误处理
	if _, err := ag.ResolveRegion(); err != nil {
		if errors.Is(err, window.ErrWindowNotFound) {
			fmt.Printf("[ERROR] %v\n", err)
		} else {
			fmt.Printf("[ERROR] 解析截图区域失败: %v\n", err)
		}
		os.Exit(1)
	}

	// Ctrl+C / SIGTERM 触发优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println()
		ag.Stop()
	}()

	fmt.Println("[INFO] 按 Ctrl+C 退出")
	ag.Run()
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("Fish Agent v%s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("Fish Agent - OCR 屏幕监控自动钓鱼工具")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  fishagent -config <配置文件>")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  -config string     配置文件路径 (JSON, 必填)")
	fmt.Println("  -log-level string  日志级别 (默认 INFO)")
	fmt.Println("  -log-file string   日志文件路径 (可选)")
	fmt.Println("  -version           显示版本信息")
	fmt.Println("  -help              显示帮助信息")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  fishagent -config fishing.json")
	fmt.Println("  fishagent -config fishing.json -log-level DEBUG")
}
