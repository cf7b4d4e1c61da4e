package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/zoeyai/fishagent/internal/logger"
)

// TesseractEngine 基于 Tesseract 的识别引擎
type TesseractEngine struct {
	client *gosseract.Client
	mu     sync.Mutex
}

// tesseractLang 将简短语言代码映射为 Tesseract 语言包名称
func tesseractLang(code string) string {
	switch strings.ToLower(code) {
	case "en", "eng":
		return "eng"
	case "ch", "zh", "chi_sim":
		return "chi_sim"
	case "ja", "jpn":
		return "jpn"
	case "ko", "kor":
		return "kor"
	default:
		return code
	}
}

// NewTesseractEngine 创建 Tesseract 识别引擎
func NewTesseractEngine(cfg Config) (*TesseractEngine, error) {
	client := gosseract.NewClient()

	langs := make([]string, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		langs = append(langs, tesseractLang(l))
	}
	if len(langs) == 0 {
		langs = []string{"eng"}
	}

	if err := client.SetLanguage(langs...); err != nil {
		client.Close()
		return nil, fmt.Errorf("设置 Tesseract 语言失败: %w", err)
	}

	logger.Info("Tesseract OCR 引擎初始化成功 (langs=%s)", strings.Join(langs, "+"))
	return &TesseractEngine{client: client}, nil
}

// Recognize 识别图像中的文字
func (e *TesseractEngine) Recognize(img image.Image) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	startTime := time.Now()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("PNG 编码失败: %w", err)
	}

	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("设置识别图像失败: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		elapsed := float64(time.Since(startTime).Milliseconds())
		logger.LogEvent("OCR", false, elapsed, "识别失败")
		return nil, fmt.Errorf("OCR 识别失败: %w", err)
	}

	var fragments []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			fragments = append(fragments, line)
		}
	}

	elapsed := float64(time.Since(startTime).Milliseconds())
	logger.LogEvent("OCR", true, elapsed, fmt.Sprintf("识别到 %d 个文本", len(fragments)))

	return fragments, nil
}

// Close 释放引擎资源
func (e *TesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		err := e.client.Close()
		e.client = nil
		return err
	}
	return nil
}
