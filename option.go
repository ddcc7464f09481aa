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
package sqlsleep

import (
	"github.com/rulego/sqlsleep/logger"
	"github.com/rulego/sqlsleep/sleep"
)

// Option 表示对扩展默认行为的修改配置。
type Option func(*Extension)

// WithLogger 设置扩展使用的日志记录器。
// 不影响全局默认日志记录器。
//
// 示例:
//
//	ext := sqlsleep.New(sqlsleep.WithLogger(logger.NewLogger(logger.DEBUG, os.Stderr)))
func WithLogger(log logger.Logger) Option {
	return func(e *Extension) {
		e.log = log
	}
}

// WithLogLevel 设置扩展日志记录器的级别，不修改全局默认日志记录器。
// 未通过 WithLogger 指定日志记录器时，扩展创建自己的 stderr 日志记录器；
// 指定时直接调整该日志记录器的级别。
//
// 示例:
//
//	// 输出被截断到上限的时长
//	ext := sqlsleep.New(sqlsleep.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(e *Extension) {
		e.level = &level
	}
}

// WithDiscardLog 禁用日志输出
func WithDiscardLog() Option {
	return func(e *Extension) {
		e.log = logger.NewDiscardLogger()
	}
}

// WithConfig 设置睡眠上限和取消信号轮询间隔。
// 非正数字段保持默认值。
//
// 示例:
//
//	cfg, err := sleep.ParseConfig([]byte(`{"maxSleep":"5m","checkInterval":"50ms"}`))
//	if err != nil {
//	    return err
//	}
//	ext := sqlsleep.New(sqlsleep.WithConfig(cfg))
func WithConfig(cfg sleep.Config) Option {
	return func(e *Extension) {
		if cfg.MaxSleep > 0 {
			e.config.MaxSleep = cfg.MaxSleep
		}
		if cfg.CheckInterval > 0 {
			e.config.CheckInterval = cfg.CheckInterval
		}
	}
}

// WithClock 替换单调时钟，主要用于测试
func WithClock(clock sleep.Clock) Option {
	return func(e *Extension) {
		if clock != nil {
			e.clock = clock
		}
	}
}
