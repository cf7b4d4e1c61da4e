// Package ocr 提供文字识别功能。
//
// 支持两种可互换的识别引擎:
//   - paddle: 基于 PaddleOCR onnx 模型 (默认)
//   - tesseract: 基于 Tesseract (配置值 "easyocr" 或 "tesseract")
//
// 两种引擎实现同一个 Engine 接口，调用方不感知差异。
package ocr

import (
	"image"
	"strings"
)

// Engine OCR 识别引擎接口
type Engine interface {
	// Recognize 识别图像中的文字，按阅读顺序返回文本片段
	Recognize(img image.Image) ([]string, error)
	// Close 释放引擎资源
	Close() error
}

// Config OCR 引擎配置
type Config struct {
	// Engine 引擎选择: "easyocr"/"tesseract" 使用 Tesseract，其余使用 Paddle
	Engine string
	// Languages Tesseract 语言列表 (如 "en", "ch")
	Languages []string
	// Lang Paddle 语言 (ch, en)
	Lang string

	// OnnxRuntimeLibPath ONNX Runtime 动态库路径（空则自动探测）
	OnnxRuntimeLibPath string
	// DetModelPath 检测模型路径
	DetModelPath string
	// RecModelPath 识别模型路径
	RecModelPath string
	// DictPath 字典文件路径
	DictPath string
}

// NewEngine 根据配置创建 OCR 引擎
func NewEngine(cfg Config) (Engine, error) {
	switch strings.ToLower(cfg.Engine) {
	case "easyocr", "tesseract":
		return NewTesseractEngine(cfg)
	default:
		return NewPaddleEngine(cfg)
	}
}

// JoinFragments 将识别片段拼接为单个空白分隔的字符串
func JoinFragments(fragments []string) string {
	var parts []string
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
