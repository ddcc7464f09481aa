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
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/rulego/sqlsleep/functions"
	"github.com/rulego/sqlsleep/logger"
	"github.com/rulego/sqlsleep/sleep"
	"github.com/rulego/sqlsleep/sleep/sleeptest"
	"github.com/rulego/sqlsleep/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func newTestExtension(options ...Option) (*Extension, *sleeptest.FakeClock) {
	clock := sleeptest.NewFakeClock(testStart)
	options = append([]Option{WithClock(clock), WithDiscardLog()}, options...)
	return New(options...), clock
}

// TestExtensionMetadata 测试扩展元数据
func TestExtensionMetadata(t *testing.T) {
	ext := New(WithDiscardLog())
	assert.Equal(t, "sleep", ext.Name())
	assert.Equal(t, "", ext.Version())
	assert.Equal(t, sleep.DefaultConfig(), ext.Config())
	assert.Equal(t, time.Hour, ext.Sleeper().MaxSleep())
	assert.Equal(t, 100*time.Millisecond, ext.Sleeper().CheckInterval())
}

// TestExtensionLoad 测试注册到自定义注册器
func TestExtensionLoad(t *testing.T) {
	ext, _ := newTestExtension()
	registry := functions.NewFunctionRegistry()

	require.NoError(t, ext.Load(registry))
	assert.Same(t, registry, ext.Registry())

	for _, name := range []string{"sleep", "sleep_for", "sleep_until"} {
		fn, ok := registry.Get(name)
		require.True(t, ok, name)
		scalar, ok := fn.(functions.ScalarFunction)
		require.True(t, ok, name)
		sig := scalar.GetSignature()
		assert.Equal(t, functions.Volatile, sig.Stability, name)
		assert.Equal(t, functions.DefaultNullHandling, sig.NullHandling, name)
		assert.Equal(t, types.SQLNULL, sig.Return, name)
	}

	// 重复加载不报错
	require.NoError(t, ext.Load(registry))
	assert.Len(t, registry.ListAll(), 3)
}

func TestExtensionLoadConflict(t *testing.T) {
	ext, _ := newTestExtension()
	registry := functions.NewFunctionRegistry()
	// 只有部分函数存在时注册冲突
	require.NoError(t, registry.Register(functions.NewSleepFunction()))
	err := ext.Load(registry)
	assert.ErrorContains(t, err, "already registered")
}

// TestExtensionLoadForeignFunction 其他函数占用名称时不部分注册，重复加载仍然失败
func TestExtensionLoadForeignFunction(t *testing.T) {
	ext, _ := newTestExtension()
	registry := functions.NewFunctionRegistry()
	foreign := functions.NewBaseFunction("sleep_until", functions.TypeCustom, "custom", "not a sleep", 1, 1)
	require.NoError(t, registry.Register(&foreignFunction{BaseFunction: foreign}))

	for i := 0; i < 2; i++ {
		err := ext.Load(registry)
		assert.ErrorContains(t, err, "sleep_until already registered")

		_, ok := registry.Get("sleep")
		assert.False(t, ok)
		_, ok = registry.Get("sleep_for")
		assert.False(t, ok)
		fn, _ := registry.Get("sleep_until")
		assert.False(t, functions.IsSleepFunction(fn))
	}
}

type foreignFunction struct {
	*functions.BaseFunction
}

func (f *foreignFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *foreignFunction) Execute(ctx *functions.FunctionContext, args []interface{}) (interface{}, error) {
	return nil, nil
}

func TestExtensionGlobalRegistry(t *testing.T) {
	ext, clock := newTestExtension()
	require.NoError(t, ext.Load(nil))
	assert.Same(t, functions.GlobalRegistry(), ext.Registry())

	require.NoError(t, ext.Execute(context.Background(), "sleep", 0.5))
	assert.Equal(t, 500*time.Millisecond, clock.Elapsed())
}

// TestExtensionExecute 覆盖三个函数的可测试属性
func TestExtensionExecute(t *testing.T) {
	tests := []struct {
		name     string
		function string
		arg      interface{}
		expected time.Duration
	}{
		{"non-positive is a no-op", "sleep", -3.0, 0},
		{"overlarge clamped", "sleep", 7200.0, time.Hour},
		{"infinity clamped", "sleep", math.Inf(1), time.Hour},
		{"negative infinity clamped", "sleep", math.Inf(-1), time.Hour},
		{"interval month and days", "sleep_for", types.Interval{Months: 1, Days: 2}, time.Hour},
		{"interval text", "sleep_for", "2 seconds", 2 * time.Second},
		{"timestamp five seconds ahead", "sleep_until", types.FromTime(testStart) + 5000000, 5 * time.Second},
		{"timestamp -infinity", "sleep_until", types.TimestampNegInfinity, 0},
		{"timestamp infinity", "sleep_until", types.TimestampInfinity, time.Hour},
		{"null", "sleep_until", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, clock := newTestExtension()
			require.NoError(t, ext.Load(functions.NewFunctionRegistry()))
			require.NoError(t, ext.Execute(context.Background(), tt.function, tt.arg))
			assert.Equal(t, tt.expected, clock.Elapsed())
		})
	}
}

func TestExtensionExecuteErrors(t *testing.T) {
	ext, clock := newTestExtension()
	require.NoError(t, ext.Load(functions.NewFunctionRegistry()))

	err := ext.Execute(context.Background(), "sleep", math.NaN())
	assert.True(t, sleep.IsInvalidInput(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ext.Execute(ctx, "sleep", 1.0)
	assert.True(t, sleep.IsInterrupted(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, time.Duration(0), clock.Elapsed())

	err = ext.Execute(context.Background(), "pg_sleep", 1.0)
	assert.Error(t, err)
}

func TestExtensionWithConfig(t *testing.T) {
	cfg, err := sleep.ParseConfig([]byte(`{"maxSleep":"2s","checkInterval":"500ms"}`))
	require.NoError(t, err)

	ext, clock := newTestExtension(WithConfig(cfg))
	require.NoError(t, ext.Load(functions.NewFunctionRegistry()))
	assert.Equal(t, cfg, ext.Config())

	require.NoError(t, ext.Execute(context.Background(), "sleep", math.Inf(1)))
	assert.Equal(t, 2*time.Second, clock.Elapsed())
	assert.Equal(t, 4, clock.StepCount())

	// 非正数字段保持默认值
	ext, _ = newTestExtension(WithConfig(sleep.Config{MaxSleep: -1}))
	assert.Equal(t, sleep.DefaultConfig(), ext.Config())
}

// TestExtensionEval 测试表达式调用与取消
func TestExtensionEval(t *testing.T) {
	ext, clock := newTestExtension()
	require.NoError(t, ext.Load(functions.NewFunctionRegistry()))

	result, err := ext.Eval(context.Background(), "sleep(delay)", map[string]interface{}{"delay": 0.3})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 300*time.Millisecond, clock.Elapsed())

	ctx, cancel := context.WithCancel(context.Background())
	clock.OnSleep(func(total time.Duration) {
		if total >= time.Second {
			cancel()
		}
	})
	_, err = ext.Eval(ctx, "sleep_for('1 minute')", nil)
	assert.True(t, sleep.IsInterrupted(err))
	assert.Equal(t, time.Second, clock.Elapsed())
}

// TestExtensionRealTime 使用真实时钟验证取消延迟
func TestExtensionRealTime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real-time test in short mode")
	}
	ext := New(WithDiscardLog())
	require.NoError(t, ext.Load(functions.NewFunctionRegistry()))

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := ext.Execute(ctx, "sleep", 60.0)
	elapsed := time.Since(start)
	assert.True(t, sleep.IsInterrupted(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 150*time.Millisecond+sleep.CheckInterval+200*time.Millisecond)
}

// TestExtensionLoggerIsolation 扩展日志配置不影响全局默认日志记录器
func TestExtensionLoggerIsolation(t *testing.T) {
	original := logger.GetDefault()
	defer logger.SetDefault(original)
	var global bytes.Buffer
	logger.SetDefault(logger.NewLogger(logger.DEBUG, &global))

	t.Run("discard silences sentinel logs", func(t *testing.T) {
		global.Reset()
		ext, _ := newTestExtension()
		require.NoError(t, ext.Load(functions.NewFunctionRegistry()))
		require.NoError(t, ext.Execute(context.Background(), "sleep_until", types.TimestampNegInfinity))
		require.NoError(t, ext.Execute(context.Background(), "sleep_until", types.TimestampInfinity))
		assert.Empty(t, global.String())
	})

	t.Run("level applies to configured logger", func(t *testing.T) {
		global.Reset()
		var own bytes.Buffer
		ext := New(
			WithClock(sleeptest.NewFakeClock(testStart)),
			WithLogger(logger.NewLogger(logger.ERROR, &own)),
			WithLogLevel(logger.DEBUG),
		)
		require.NoError(t, ext.Load(functions.NewFunctionRegistry()))
		require.NoError(t, ext.Execute(context.Background(), "sleep", 7200.0))
		require.NoError(t, ext.Execute(context.Background(), "sleep_until", types.TimestampNegInfinity))

		assert.Contains(t, own.String(), "[DEBUG] [sleep] sleep duration 7200s clamped to 1h0m0s")
		assert.Contains(t, own.String(), "[DEBUG] [sleep_until] target is -infinity")
		assert.Empty(t, global.String())
	})

	t.Run("level does not change global logger", func(t *testing.T) {
		global.Reset()
		logger.GetDefault().SetLevel(logger.ERROR)
		defer logger.GetDefault().SetLevel(logger.DEBUG)

		_ = New(WithLogLevel(logger.DEBUG), WithClock(sleeptest.NewFakeClock(testStart)))
		logger.Debug("hidden")
		assert.Empty(t, global.String())
	})
}
