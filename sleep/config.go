/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package sleep

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

const (
	// MaxSleepSeconds 单次睡眠的上限（1小时），防止意外的无限等待
	MaxSleepSeconds = 3600.0
	// CheckInterval 两次检查取消信号之间的最长阻塞时间
	CheckInterval = 100 * time.Millisecond
)

// Config 睡眠配置
type Config struct {
	MaxSleep      time.Duration `json:"maxSleep"`      // 单次睡眠上限
	CheckInterval time.Duration `json:"checkInterval"` // 取消信号轮询间隔
}

// DefaultConfig 返回默认配置：上限1小时，轮询间隔100ms
func DefaultConfig() Config {
	return Config{
		MaxSleep:      time.Duration(MaxSleepSeconds * float64(time.Second)),
		CheckInterval: CheckInterval,
	}
}

// Validate 校验配置
func (c Config) Validate() error {
	if c.MaxSleep <= 0 {
		return fmt.Errorf("maxSleep must be positive, got %s", c.MaxSleep)
	}
	if c.CheckInterval <= 0 {
		return fmt.Errorf("checkInterval must be positive, got %s", c.CheckInterval)
	}
	return nil
}

// UnmarshalJSON accepts durations either as nanosecond numbers or as
// strings such as "1h" or "250ms". Missing fields keep their defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw struct {
		MaxSleep      interface{} `json:"maxSleep"`
		CheckInterval interface{} `json:"checkInterval"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	cfg := DefaultConfig()
	if raw.MaxSleep != nil {
		d, err := cast.ToDurationE(raw.MaxSleep)
		if err != nil {
			return fmt.Errorf("invalid maxSleep: %w", err)
		}
		cfg.MaxSleep = d
	}
	if raw.CheckInterval != nil {
		d, err := cast.ToDurationE(raw.CheckInterval)
		if err != nil {
			return fmt.Errorf("invalid checkInterval: %w", err)
		}
		cfg.CheckInterval = d
	}
	*c = cfg
	return nil
}

// ParseConfig 从JSON解析并校验配置
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
