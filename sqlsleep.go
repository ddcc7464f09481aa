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
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rulego/sqlsleep/functions"
	"github.com/rulego/sqlsleep/logger"
	"github.com/rulego/sqlsleep/sleep"
)

// ExtensionName 扩展名称
const ExtensionName = "sleep"

// version 由构建参数注入，例如 -ldflags "-X github.com/rulego/sqlsleep.version=v1.0.0"
var version = ""

// Extension 将 sleep、sleep_for、sleep_until 注册到宿主的函数目录。
//
// 使用示例:
//
//	ext := sqlsleep.New()
//	registry := functions.NewFunctionRegistry()
//	if err := ext.Load(registry); err != nil {
//	    return err
//	}
//	_, err := ext.Eval(ctx, "sleep(0.5)", nil)
type Extension struct {
	config  sleep.Config
	clock   sleep.Clock
	log     logger.Logger
	level   *logger.Level
	sleeper *sleep.Sleeper

	mu       sync.RWMutex
	registry *functions.FunctionRegistry
}

// New 创建扩展实例。
// 支持通过可选的Option参数进行配置。
//
// 示例:
//
//	// 默认配置：上限1小时，轮询间隔100ms
//	ext := sqlsleep.New()
//
//	// 上限10分钟，关闭日志
//	ext := sqlsleep.New(
//	    sqlsleep.WithConfig(sleep.Config{MaxSleep: 10 * time.Minute}),
//	    sqlsleep.WithDiscardLog(),
//	)
func New(options ...Option) *Extension {
	e := &Extension{
		config: sleep.DefaultConfig(),
		clock:  sleep.SystemClock,
	}
	for _, option := range options {
		option(e)
	}
	if e.level != nil {
		if e.log == nil {
			e.log = logger.NewLogger(*e.level, os.Stderr)
		} else {
			e.log.SetLevel(*e.level)
		}
	}
	e.sleeper = sleep.New(
		sleep.WithConfig(e.config),
		sleep.WithClock(e.clock),
		sleep.WithLogger(e.logger().Named("sleep")),
	)
	return e
}

func (e *Extension) logger() logger.Logger {
	if e.log != nil {
		return e.log
	}
	return logger.GetDefault()
}

// Name 返回扩展名称
func (e *Extension) Name() string {
	return ExtensionName
}

// Version 返回构建时注入的版本号，未注入时为空
func (e *Extension) Version() string {
	return version
}

// Config 返回生效的配置
func (e *Extension) Config() sleep.Config {
	return e.config
}

// Sleeper 返回扩展使用的 Sleeper
func (e *Extension) Sleeper() *sleep.Sleeper {
	return e.sleeper
}

// Load 将三个函数注册到 registry，registry 为空时使用全局注册器。
// 全局注册器在包初始化时已包含这些函数，此时 Load 只绑定注册器。
// 任一名称被其他函数占用时返回错误，registry 不会被部分修改。
func (e *Extension) Load(registry *functions.FunctionRegistry) error {
	if registry == nil {
		registry = functions.GlobalRegistry()
	}
	if !hasSleepFunctions(registry) {
		if err := functions.RegisterSleepFunctions(registry); err != nil {
			return fmt.Errorf("load extension %s: %w", ExtensionName, err)
		}
	}

	e.mu.Lock()
	e.registry = registry
	e.mu.Unlock()

	e.logger().Info("extension %s loaded (max sleep %s, check interval %s)",
		ExtensionName, e.config.MaxSleep, e.config.CheckInterval)
	return nil
}

// hasSleepFunctions 三个名称都已注册为本包的 sleep 函数时返回 true
func hasSleepFunctions(registry *functions.FunctionRegistry) bool {
	for _, name := range functions.SleepFunctionNames {
		fn, ok := registry.Get(name)
		if !ok || !functions.IsSleepFunction(fn) {
			return false
		}
	}
	return true
}

// Registry 返回 Load 绑定的注册器，未加载时返回全局注册器
func (e *Extension) Registry() *functions.FunctionRegistry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.registry == nil {
		return functions.GlobalRegistry()
	}
	return e.registry
}

// NewContext 创建执行上下文。ctx 取消或 signal 触发时正在进行的 sleep 被中断。
func (e *Extension) NewContext(ctx context.Context, signal sleep.Signal) *functions.FunctionContext {
	return &functions.FunctionContext{
		Context: ctx,
		Signal:  signal,
		Sleeper: e.sleeper,
		Now:     e.clock.Now,
		Logger:  e.logger(),
	}
}

// Execute 以单行方式调用函数，例如 Execute(ctx, "sleep_for", "2 seconds")
func (e *Extension) Execute(ctx context.Context, name string, args ...interface{}) error {
	_, err := e.Registry().Execute(name, e.NewContext(ctx, nil), args)
	return err
}

// Eval 在 expr-lang 表达式中调用已注册的函数，例如 "sleep(delay)"
func (e *Extension) Eval(ctx context.Context, expression string, data map[string]interface{}) (interface{}, error) {
	bridge := functions.NewExprBridge(e.Registry())
	return bridge.EvaluateExpression(e.NewContext(ctx, nil), expression, data)
}
