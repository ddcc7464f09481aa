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
	"math"
	"time"

	"github.com/rulego/sqlsleep/logger"
)

// Sleeper performs interruptible, bounded sleeps.
// A Sleeper is immutable after construction and safe for concurrent use.
type Sleeper struct {
	clock         Clock
	maxSleep      time.Duration
	checkInterval time.Duration
	log           logger.Logger
}

// Option 定义Sleeper的配置选项类型
type Option func(*Sleeper)

// WithClock 使用自定义时钟（测试中使用假时钟）
func WithClock(clock Clock) Option {
	return func(s *Sleeper) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxSleep 设置单次睡眠上限
func WithMaxSleep(d time.Duration) Option {
	return func(s *Sleeper) {
		if d > 0 {
			s.maxSleep = d
		}
	}
}

// WithCheckInterval 设置取消信号轮询间隔
func WithCheckInterval(d time.Duration) Option {
	return func(s *Sleeper) {
		if d > 0 {
			s.checkInterval = d
		}
	}
}

// WithConfig 应用配置中的上限和轮询间隔
func WithConfig(cfg Config) Option {
	return func(s *Sleeper) {
		WithMaxSleep(cfg.MaxSleep)(s)
		WithCheckInterval(cfg.CheckInterval)(s)
	}
}

// WithLogger 设置日志器，默认使用 logger.GetDefault()
func WithLogger(l logger.Logger) Option {
	return func(s *Sleeper) {
		s.log = l
	}
}

// New 创建Sleeper，默认上限1小时、轮询间隔100ms、系统时钟
func New(options ...Option) *Sleeper {
	cfg := DefaultConfig()
	s := &Sleeper{
		clock:         SystemClock,
		maxSleep:      cfg.MaxSleep,
		checkInterval: cfg.CheckInterval,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var defaultSleeper = New()

// Default returns the package-level Sleeper built with default settings.
func Default() *Sleeper {
	return defaultSleeper
}

// MaxSleep 返回单次睡眠上限
func (s *Sleeper) MaxSleep() time.Duration {
	return s.maxSleep
}

// CheckInterval 返回轮询间隔
func (s *Sleeper) CheckInterval() time.Duration {
	return s.checkInterval
}

// Clock 返回使用的时钟
func (s *Sleeper) Clock() Clock {
	return s.clock
}

func (s *Sleeper) logger() logger.Logger {
	if s.log != nil {
		return s.log
	}
	return logger.GetDefault()
}

// Normalize converts a requested number of seconds into the effective
// duration, always within [0, MaxSleep].
//
// NaN is rejected with ErrInvalidInput before anything else. Infinities
// of either sign become the ceiling. Non-positive values become zero and
// values beyond the ceiling are clamped to it.
func (s *Sleeper) Normalize(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) {
		return 0, newInvalidInputError("sleep duration cannot be NaN")
	}
	if math.IsInf(seconds, 0) {
		s.logger().Debug("sleep duration %v replaced by ceiling %s", seconds, s.maxSleep)
		return s.maxSleep, nil
	}
	if seconds <= 0 {
		return 0, nil
	}
	if seconds >= s.maxSleep.Seconds() {
		if seconds > s.maxSleep.Seconds() {
			s.logger().Debug("sleep duration %gs clamped to %s", seconds, s.maxSleep)
		}
		return s.maxSleep, nil
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// Wait blocks until d has elapsed on the monotonic clock or until signal
// reports interrupted, whichever happens first.
//
// The signal is checked before the deadline on every iteration, so an
// interrupt that is already pending wins even when d is zero. Each blocking
// step is at most CheckInterval long.
func (s *Sleeper) Wait(signal Signal, d time.Duration) error {
	if signal == nil {
		signal = NeverInterrupted
	}
	if d > s.maxSleep {
		d = s.maxSleep
	}
	deadline := s.clock.Now().Add(d)
	for {
		if signal.Interrupted() {
			var cause error
			if c, ok := signal.(causer); ok {
				cause = c.Cause()
			}
			return newInterruptedError(cause)
		}
		now := s.clock.Now()
		if !now.Before(deadline) {
			return nil
		}
		step := deadline.Sub(now)
		if step > s.checkInterval {
			step = s.checkInterval
		}
		s.clock.Sleep(step)
	}
}

// Sleep normalizes seconds and waits for the effective duration.
// A non-positive request returns immediately without consulting signal.
func (s *Sleeper) Sleep(signal Signal, seconds float64) error {
	d, err := s.Normalize(seconds)
	if err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	return s.Wait(signal, d)
}

// Normalize uses the default Sleeper.
func Normalize(seconds float64) (time.Duration, error) {
	return defaultSleeper.Normalize(seconds)
}

// Sleep uses the default Sleeper.
func Sleep(signal Signal, seconds float64) error {
	return defaultSleeper.Sleep(signal, seconds)
}
