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
package functions

import (
	"context"
	"time"

	"github.com/rulego/sqlsleep/logger"
	"github.com/rulego/sqlsleep/sleep"
	"github.com/rulego/sqlsleep/types"
)

// FunctionContext 函数执行上下文
type FunctionContext struct {
	// 当前数据行
	Data map[string]interface{}
	// Context 查询上下文，取消后正在进行的 sleep 会被中断
	Context context.Context
	// Signal 宿主持有的中断标志，可与 Context 同时使用
	Signal sleep.Signal
	// Sleeper 为空时使用 sleep.Default()
	Sleeper *sleep.Sleeper
	// Now 读取当前绝对时间，为空时使用 time.Now
	Now func() time.Time
	// Logger 为空时使用 logger.GetDefault()
	Logger logger.Logger
}

// NewFunctionContext 创建绑定查询上下文的执行上下文
func NewFunctionContext(ctx context.Context) *FunctionContext {
	return &FunctionContext{Context: ctx}
}

func (c *FunctionContext) signal() sleep.Signal {
	if c == nil {
		return sleep.NeverInterrupted
	}
	switch {
	case c.Context != nil && c.Signal != nil:
		return sleep.AnySignal(c.Signal, sleep.ContextSignal(c.Context))
	case c.Context != nil:
		return sleep.ContextSignal(c.Context)
	case c.Signal != nil:
		return c.Signal
	default:
		return sleep.NeverInterrupted
	}
}

func (c *FunctionContext) sleeper() *sleep.Sleeper {
	if c == nil || c.Sleeper == nil {
		return sleep.Default()
	}
	return c.Sleeper
}

func (c *FunctionContext) currentTimestamp() types.Timestamp {
	if c == nil || c.Now == nil {
		return types.Now()
	}
	return types.FromTime(c.Now())
}

func (c *FunctionContext) logger() logger.Logger {
	if c == nil || c.Logger == nil {
		return logger.GetDefault()
	}
	return c.Logger
}
