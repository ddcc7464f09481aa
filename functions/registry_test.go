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
	"testing"

	"github.com/rulego/sqlsleep/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryEdgeCases(t *testing.T) {
	reg := NewFunctionRegistry()
	// Unregister未注册函数
	assert.False(t, reg.Unregister("not_exist"))
	assert.Error(t, reg.Register(nil))

	// RegisterCustomFunction空名
	f := func(ctx *FunctionContext, args []interface{}) (interface{}, error) { return "ok", nil }
	assert.Error(t, RegisterCustomFunction("", TypeCustom, "", "", 0, 0, f))
	assert.Error(t, RegisterCustomFunction("no_executor", TypeCustom, "", "", 0, 0, nil))

	// RegisterCustomFunction重复注册
	require.NoError(t, RegisterCustomFunction("dup", TypeCustom, "", "", 0, 0, f))
	defer Unregister("dup")
	assert.Error(t, RegisterCustomFunction("DUP", TypeCustom, "", "", 0, 0, f))

	result, err := Execute("dup", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	_, err = Execute("dup", nil, []interface{}{1})
	assert.Error(t, err)
}

// TestGlobalRegistryHasSleepFunctions 测试全局注册器包含内置函数
func TestGlobalRegistryHasSleepFunctions(t *testing.T) {
	for _, name := range []string{SleepStr, SleepForStr, SleepUntilStr, "SLEEP", "Sleep_For"} {
		fn, ok := Get(name)
		require.True(t, ok, name)
		_, scalar := fn.(ScalarFunction)
		assert.True(t, scalar, name)
	}

	utility := GetByType(TypeUtility)
	assert.Len(t, utility, 3)
	assert.Len(t, ListAll(), 3)
	assert.Same(t, globalRegistry, GlobalRegistry())
}

func TestRegistryRegisterAndUnregister(t *testing.T) {
	reg := NewFunctionRegistry()
	require.NoError(t, RegisterSleepFunctions(reg))
	assert.Error(t, RegisterSleepFunctions(reg))

	assert.True(t, reg.Unregister("SLEEP_FOR"))
	_, ok := reg.Get(SleepForStr)
	assert.False(t, ok)
	assert.Len(t, reg.GetByType(TypeUtility), 2)
	assert.Len(t, reg.ListAll(), 2)

	// GetByType 返回副本
	list := reg.GetByType(TypeUtility)
	list[0] = nil
	assert.NotNil(t, reg.GetByType(TypeUtility)[0])
}

func TestRegistryExecute(t *testing.T) {
	reg := NewFunctionRegistry()
	require.NoError(t, RegisterSleepFunctions(reg))
	ctx, clock := newTestContext()

	_, err := reg.Execute("missing", ctx, nil)
	assert.Error(t, err)

	_, err = reg.Execute(SleepStr, ctx, []interface{}{})
	assert.ErrorContains(t, err, "validation failed")

	result, err := reg.Execute(SleepStr, ctx, []interface{}{0.3})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, int64(300), clock.Elapsed().Milliseconds())

	vector, err := reg.ExecuteChunk(SleepForStr, ctx, types.NewDataChunk(
		types.NewVector(types.INTERVAL, types.Interval{Micros: 100000}, nil)))
	require.NoError(t, err)
	assert.Equal(t, 2, vector.Len())
	assert.Equal(t, int64(400), clock.Elapsed().Milliseconds())

	_, err = reg.ExecuteChunk("missing", ctx, nil)
	assert.Error(t, err)
}

func TestExecuteChunkRequiresScalar(t *testing.T) {
	reg := NewFunctionRegistry()
	custom := &CustomFunction{
		BaseFunction: NewBaseFunction("plain", TypeCustom, "", "", 0, -1),
		executor:     func(ctx *FunctionContext, args []interface{}) (interface{}, error) { return nil, nil },
	}
	require.NoError(t, reg.Register(custom))

	_, err := reg.ExecuteChunk("plain", nil, types.NewDataChunk())
	assert.ErrorContains(t, err, "vectorized")
	assert.NoError(t, custom.Validate([]interface{}{1, 2, 3}))
}

func TestStabilityAndNullHandlingString(t *testing.T) {
	assert.Equal(t, "VOLATILE", Volatile.String())
	assert.Equal(t, "CONSISTENT", Consistent.String())
	assert.Equal(t, "DEFAULT_NULL_HANDLING", DefaultNullHandling.String())
	assert.Equal(t, "SPECIAL_HANDLING", SpecialNullHandling.String())
}

// TestRegisterSleepFunctionsAllOrNothing 名称冲突时注册器保持不变
func TestRegisterSleepFunctionsAllOrNothing(t *testing.T) {
	reg := NewFunctionRegistry()
	other := &CustomFunction{
		BaseFunction: NewBaseFunction(SleepUntilStr, TypeCustom, "", "", 1, 1),
		executor:     func(ctx *FunctionContext, args []interface{}) (interface{}, error) { return nil, nil },
	}
	require.NoError(t, reg.Register(other))

	err := RegisterSleepFunctions(reg)
	assert.ErrorContains(t, err, "sleep_until already registered")
	assert.Len(t, reg.ListAll(), 1)
	_, ok := reg.Get(SleepStr)
	assert.False(t, ok)

	assert.False(t, IsSleepFunction(other))
	assert.True(t, IsSleepFunction(NewSleepFunction()))
	assert.True(t, IsSleepFunction(NewSleepForFunction()))
	assert.True(t, IsSleepFunction(NewSleepUntilFunction()))
}
