package ocr

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	goocr "github.com/getcharzp/go-ocr"
	"gocv.io/x/gocv"

	"github.com/zoeyai/fishagent/internal/logger"
)

// PaddleEngine 基于 PaddleOCR onnx 模型的识别引擎。
// 识别前会对图像做灰度化、2 倍三次插值放大和 Otsu 二值化，
// 以提升游戏内小字号文本的识别率。
type PaddleEngine struct {
	engine goocr.Engine
	mu     sync.Mutex
}

// NewPaddleEngine 创建 Paddle 识别引擎
func NewPaddleEngine(cfg Config) (*PaddleEngine, error) {
	if cfg.OnnxRuntimeLibPath == "" {
		cfg.OnnxRuntimeLibPath = defaultOnnxRuntimePath()
	}
	if cfg.DetModelPath == "" {
		cfg.DetModelPath = defaultModelPath("det.onnx")
	}
	if cfg.RecModelPath == "" {
		cfg.RecModelPath = defaultModelPath("rec.onnx")
	}
	if cfg.DictPath == "" {
		cfg.DictPath = defaultModelPath("dict.txt")
	}

	engine, err := goocr.NewPaddleOcrEngine(goocr.Config{
		OnnxRuntimeLibPath: cfg.OnnxRuntimeLibPath,
		DetModelPath:       cfg.DetModelPath,
		RecModelPath:       cfg.RecModelPath,
		DictPath:           cfg.DictPath,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 Paddle OCR 引擎失败: %w", err)
	}

	logger.Info("Paddle OCR 引擎初始化成功 (lang=%s)", cfg.Lang)
	return &PaddleEngine{engine: engine}, nil
}

// Recognize 识别图像中的文字
func (e *PaddleEngine) Recognize(img image.Image) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	startTime := time.Now()

	prepared, err := preprocess(img)
	if err != nil {
		return nil, err
	}

	results, err := e.engine.RunOCR(prepared)
	if err != nil {
		elapsed := float64(time.Since(startTime).Milliseconds())
		logger.LogEvent("OCR", false, elapsed, "识别失败")
		return nil, fmt.Errorf("OCR 识别失败: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, result := range results {
		if result.Text != "" {
			texts = append(texts, result.Text)
		}
	}

	elapsed := float64(time.Since(startTime).Milliseconds())
	logger.LogEvent("OCR", true, elapsed, fmt.Sprintf("识别到 %d 个文本", len(texts)))

	return texts, nil
}

// Close 释放引擎资源
func (e *PaddleEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.engine != nil {
		e.engine.Destroy()
		e.engine = nil
	}
	return nil
}

// preprocess 识别前的图像预处理：灰度 → 2x 三次插值放大 → Otsu 二值化
func preprocess(img image.Image) (image.Image, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("图像转换失败: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorRGBToGray)

	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Resize(gray, &scaled, image.Point{}, 2.0, 2.0, gocv.InterpolationCubic)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(scaled, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)

	out, err := binary.ToImage()
	if err != nil {
		return nil, fmt.Errorf("Mat 转换失败: %w", err)
	}
	return out, nil
}

// PaddleAvailable 检查 Paddle 引擎依赖的模型文件是否齐全
func PaddleAvailable() bool {
	return fileExists(defaultOnnxRuntimePath()) &&
		fileExists(defaultModelPath("det.onnx")) &&
		fileExists(defaultModelPath("rec.onnx")) &&
		fileExists(defaultModelPath("dict.txt"))
}

// executableDir 获取可执行文件所在目录
func executableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}

// defaultOnnxRuntimePath 按平台探测 ONNX Runtime 库路径
func defaultOnnxRuntimePath() string {
	execDir := executableDir()

	var paths []string
	switch runtime.GOOS {
	case "darwin":
		paths = []string{
			filepath.Join(execDir, "libonnxruntime.dylib"),
			filepath.Join(execDir, "models", "lib", "onnxruntime_arm64.dylib"),
			filepath.Join(execDir, "models", "lib", "onnxruntime_amd64.dylib"),
			"models/lib/onnxruntime_arm64.dylib",
			"models/lib/onnxruntime_amd64.dylib",
		}
	case "windows":
		paths = []string{
			filepath.Join(execDir, "onnxruntime.dll"),
			"models/lib/onnxruntime.dll",
			"onnxruntime.dll",
		}
	default:
		paths = []string{
			filepath.Join(execDir, "libonnxruntime.so"),
			filepath.Join(execDir, "models", "lib", "onnxruntime_arm64.so"),
			filepath.Join(execDir, "models", "lib", "onnxruntime_amd64.so"),
			"models/lib/onnxruntime_arm64.so",
			"models/lib/onnxruntime_amd64.so",
		}
	}

	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return paths[len(paths)-1]
}

// defaultModelPath 探测模型文件路径
func defaultModelPath(filename string) string {
	paths := []string{
		filepath.Join(executableDir(), "models", "paddle_weights", filename),
		filepath.Join("models", "paddle_weights", filename),
	}

	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return paths[0]
}

// fileExists 检查文件是否存在
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
