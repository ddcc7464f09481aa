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
// Package sleeptest provides a deterministic clock for testing code built
// on the sleep package.
package sleeptest

import (
	"sync"
	"time"
)

// FakeClock satisfies sleep.Clock. Sleep advances the clock instantly
// and records each step.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	steps   []time.Duration
	onSleep func(total time.Duration)
}

// NewFakeClock 创建从 start 开始计时的假时钟
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.steps = append(c.steps, d)
	total := c.elapsedLocked()
	hook := c.onSleep
	c.mu.Unlock()
	if hook != nil {
		hook(total)
	}
}

// OnSleep installs a hook called after every step with the total time
// slept so far. Tests use it to fire a cancellation at a given instant.
func (c *FakeClock) OnSleep(hook func(total time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSleep = hook
}

// Elapsed 返回累计睡眠时间
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsedLocked()
}

func (c *FakeClock) elapsedLocked() time.Duration {
	var total time.Duration
	for _, s := range c.steps {
		total += s
	}
	return total
}

// Steps 返回每一步的睡眠时长
func (c *FakeClock) Steps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.steps...)
}

// StepCount 返回睡眠步数
func (c *FakeClock) StepCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}
