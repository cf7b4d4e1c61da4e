// Package config 提供钓鱼配置的加载和默认值管理
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Region 屏幕区域（绝对像素坐标）
type Region struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FocusRatio 相对焦点区域（比例 0-1，相对于基础区域）
type FocusRatio struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// UnmarshalJSON 解析焦点区域，缺省宽高为 1.0（覆盖整个基础区域）
func (r *FocusRatio) UnmarshalJSON(b []byte) error {
	type alias FocusRatio
	a := alias{Width: 1.0, Height: 1.0}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*r = FocusRatio(a)
	return nil
}

// ButtonRule 按键规则：文本包含 Key 时使用 Button
type ButtonRule struct {
	Key    string
	Button string
}

// ButtonRules 按配置顺序排列的按键规则列表。
// 匹配按声明顺序线性扫描，第一条命中即生效，
// 因此不能用 map 存储（迭代顺序不确定）。
type ButtonRules []ButtonRule

// UnmarshalJSON 按 JSON 对象中键的出现顺序解析规则
func (r *ButtonRules) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("button_rules 应为 JSON 对象")
	}

	rules := ButtonRules{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("button_rules 键应为字符串")
		}

		var button string
		if err := dec.Decode(&button); err != nil {
			return fmt.Errorf("button_rules[%q] 的值无效: %w", key, err)
		}
		rules = append(rules, ButtonRule{Key: key, Button: button})
	}

	*r = rules
	return nil
}

// FishingConfig 钓鱼代理配置（加载后不可变）
type FishingConfig struct {
	Keywords            []string          `json:"keywords"`
	ButtonRules         ButtonRules       `json:"button_rules"`
	KeywordActions      map[string]string `json:"keyword_actions"`
	DefaultButton       string            `json:"default_button"`
	WindowTitleContains string            `json:"window_title_contains"`
	Region              *Region           `json:"region"`
	FocusRegionRatio    *FocusRatio       `json:"focus_region_ratio"`
	CastKeyword         string            `json:"cast_keyword"`
	ReelKeyword         string            `json:"reel_keyword"`
	IntervalSec         float64           `json:"interval_sec"`
	CooldownSec         float64           `json:"cooldown_sec"`
	RecastDelaySec      float64           `json:"recast_delay_sec"`
	Languages           []string          `json:"languages"`
	OCREngine           string            `json:"ocr_engine"`
	OCRLang             string            `json:"ocr_lang"`
	PrintOCRText        bool              `json:"print_ocr_text"`
	CaseSensitive       bool              `json:"case_sensitive"`
	StatsLogFile        string            `json:"stats_log_file"`
	StatsPrintInterval  float64           `json:"stats_print_interval_sec"`

	BitePresenceKeywords []string `json:"bite_presence_keywords"`

	NoBiteTimeoutSec         *float64 `json:"no_bite_timeout_sec"`
	NoBiteTimeoutAction      string   `json:"no_bite_timeout_action"`
	NoBiteRecoverCooldownSec float64  `json:"no_bite_recover_cooldown_sec"`

	OCREmptyTimeoutSec         *float64 `json:"ocr_empty_timeout_sec"`
	OCREmptyTimeoutAction      string   `json:"ocr_empty_timeout_action"`
	OCREmptyRecoverCooldownSec float64  `json:"ocr_empty_recover_cooldown_sec"`

	SmartRecoverProbeWaitSec float64 `json:"smart_recover_probe_wait_sec"`
}

// Default 默认配置
func Default() *FishingConfig {
	return &FishingConfig{
		Keywords:                   []string{},
		ButtonRules:                ButtonRules{},
		KeywordActions:             map[string]string{},
		DefaultButton:              "right",
		CastKeyword:                "Bobber thrown",
		ReelKeyword:                "Bobber retrieved",
		IntervalSec:                0.1,
		CooldownSec:                0.5,
		RecastDelaySec:             0.25,
		Languages:                  []string{"en"},
		OCREngine:                  "paddleocr",
		OCRLang:                    "en",
		StatsPrintInterval:         30.0,
		NoBiteTimeoutAction:        "click",
		NoBiteRecoverCooldownSec:   20.0,
		OCREmptyTimeoutAction:      "click",
		OCREmptyRecoverCooldownSec: 20.0,
		SmartRecoverProbeWaitSec:   0.35,
	}
}

// Load 从 JSON 文件加载配置，缺失的字段使用默认值
func Load(path string) (*FishingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 容忍带 BOM 的 UTF-8 文件
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize 统一选择器字段的大小写，并补齐派生默认值
func (c *FishingConfig) normalize() {
	c.OCREngine = strings.ToLower(c.OCREngine)
	c.NoBiteTimeoutAction = strings.ToLower(c.NoBiteTimeoutAction)
	c.OCREmptyTimeoutAction = strings.ToLower(c.OCREmptyTimeoutAction)

	// bite_presence_keywords 缺省时回退到触发关键词列表
	if c.BitePresenceKeywords == nil {
		c.BitePresenceKeywords = c.Keywords
	}
}

// Seconds 将秒数转换为 time.Duration
func Seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}

// Interval 轮询间隔
func (c *FishingConfig) Interval() time.Duration {
	return Seconds(c.IntervalSec)
}

// Cooldown 触发冷却时间
func (c *FishingConfig) Cooldown() time.Duration {
	return Seconds(c.CooldownSec)
}

// RecastDelay 收竿与再次抛竿之间的延迟
func (c *FishingConfig) RecastDelay() time.Duration {
	return Seconds(c.RecastDelaySec)
}

// NoBiteTimeout 无咬钩超时时间，0 表示禁用
func (c *FishingConfig) NoBiteTimeout() time.Duration {
	if c.NoBiteTimeoutSec == nil || *c.NoBiteTimeoutSec <= 0 {
		return 0
	}
	return Seconds(*c.NoBiteTimeoutSec)
}

// OCREmptyTimeout OCR 空文本超时时间，0 表示禁用
func (c *FishingConfig) OCREmptyTimeout() time.Duration {
	if c.OCREmptyTimeoutSec == nil || *c.OCREmptyTimeoutSec <= 0 {
		return 0
	}
	return Seconds(*c.OCREmptyTimeoutSec)
}
