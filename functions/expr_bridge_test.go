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
	"testing"
	"time"

	"github.com/rulego/sqlsleep/sleep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExprBridgeEvaluate 测试在表达式中调用 sleep 函数
func TestExprBridgeEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		data       map[string]interface{}
		expected   time.Duration
	}{
		{"sleep literal", "sleep(0.25)", nil, 250 * time.Millisecond},
		{"upper case", "SLEEP(1)", nil, time.Second},
		{"sleep_for text", "sleep_for('1.5s')", nil, 1500 * time.Millisecond},
		{"sleep_for from data", "sleep_for(delay)", map[string]interface{}{"delay": "00:00:02"}, 2 * time.Second},
		{"sleep from data", "sleep(seconds * 2)", map[string]interface{}{"seconds": 0.1}, 200 * time.Millisecond},
		{"undefined is null", "sleep(missing)", nil, 0},
		{"sleep_until infinity", "sleep_until('infinity')", nil, time.Hour},
		{"sequence", "[sleep(0.1), sleep(0.2)]", nil, 300 * time.Millisecond},
	}

	bridge := NewExprBridge(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, clock := newTestContext()
			_, err := bridge.EvaluateExpression(ctx, tt.expression, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, clock.Elapsed())
		})
	}
}

func TestExprBridgeResultIsNull(t *testing.T) {
	ctx, _ := newTestContext()
	result, err := GetExprBridge().EvaluateExpression(ctx, "sleep(0)", nil)
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = GetExprBridge().EvaluateExpression(ctx, "sleep(0) == nil", nil)
	require.NoError(t, err)
	assert.Equal(t, true, result)
}

// TestExprBridgeErrors 测试函数错误原样返回
func TestExprBridgeErrors(t *testing.T) {
	bridge := GetExprBridge()

	t.Run("nan", func(t *testing.T) {
		ctx, _ := newTestContext()
		_, err := bridge.EvaluateExpression(ctx, "sleep(x)", map[string]interface{}{"x": "NaN"})
		assert.True(t, sleep.IsInvalidInput(err))
	})

	t.Run("interrupted", func(t *testing.T) {
		ctx, clock := newTestContext()
		queryCtx, cancel := context.WithCancel(context.Background())
		ctx.Context = queryCtx
		clock.OnSleep(func(total time.Duration) {
			if total >= 300*time.Millisecond {
				cancel()
			}
		})
		_, err := bridge.EvaluateExpression(ctx, "sleep(10)", nil)
		assert.True(t, sleep.IsInterrupted(err))
		assert.Equal(t, 300*time.Millisecond, clock.Elapsed())
	})

	t.Run("wrong arity", func(t *testing.T) {
		ctx, _ := newTestContext()
		_, err := bridge.EvaluateExpression(ctx, "sleep()", nil)
		assert.Error(t, err)
	})

	t.Run("syntax", func(t *testing.T) {
		ctx, _ := newTestContext()
		_, err := bridge.EvaluateExpression(ctx, "sleep(", nil)
		assert.ErrorContains(t, err, "failed to compile")
	})
}

func TestExprBridgeDoesNotMutateContext(t *testing.T) {
	ctx, _ := newTestContext()
	_, err := GetExprBridge().EvaluateExpression(ctx, "sleep(v)", map[string]interface{}{"v": 0.1})
	require.NoError(t, err)
	assert.Nil(t, ctx.Data)

	_, err = GetExprBridge().EvaluateExpression(nil, "sleep(0)", nil)
	require.NoError(t, err)
}

func TestExprBridgeIsRegisteredFunction(t *testing.T) {
	bridge := GetExprBridge()
	assert.True(t, bridge.IsRegisteredFunction("sleep_until"))
	assert.True(t, bridge.IsRegisteredFunction("SLEEP"))
	assert.False(t, bridge.IsRegisteredFunction("pg_sleep"))
}
