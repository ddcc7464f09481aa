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
	"fmt"
	"math"

	"github.com/rulego/sqlsleep/types"
	"github.com/rulego/sqlsleep/utils/cast"
)

const (
	SleepStr      = "sleep"
	SleepForStr   = "sleep_for"
	SleepUntilStr = "sleep_until"
)

// toSecondsFunc 把一行非NULL参数转换为请求的秒数
type toSecondsFunc func(ctx *FunctionContext, arg interface{}) (float64, error)

// sleepRow sleeps for one row. NULL arguments are skipped without
// touching the sleeper. Sleep errors are returned unchanged so that
// callers can tell INVALID_INPUT from INTERRUPTED.
func sleepRow(ctx *FunctionContext, name string, arg interface{}, toSeconds toSecondsFunc) error {
	if arg == nil {
		return nil
	}
	seconds, err := toSeconds(ctx, arg)
	if err != nil {
		return fmt.Errorf("function %s: %w", name, err)
	}
	return ctx.sleeper().Sleep(ctx.signal(), seconds)
}

// sleepChunk processes the rows of a batch sequentially; row i finishes
// before row i+1 starts and the first error aborts the batch.
func sleepChunk(ctx *FunctionContext, name string, chunk *types.DataChunk, toSeconds toSecondsFunc) (*types.Vector, error) {
	if chunk == nil {
		return types.NewNullVector(0), nil
	}
	if chunk.ColumnCount() != 1 {
		return nil, fmt.Errorf("function %s requires exactly 1 argument column, got %d", name, chunk.ColumnCount())
	}
	column := chunk.Column(0)
	for i := 0; i < chunk.Size(); i++ {
		if !column.IsValid(i) {
			continue
		}
		if err := sleepRow(ctx, name, column.Get(i), toSeconds); err != nil {
			return nil, err
		}
	}
	return types.NewNullVector(chunk.Size()), nil
}

func firstArg(args []interface{}) interface{} {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func sleepSignature(arg types.LogicalType) Signature {
	return Signature{
		Args:         []types.LogicalType{arg},
		Return:       types.SQLNULL,
		Stability:    Volatile,
		NullHandling: DefaultNullHandling,
	}
}

// SleepFunction sleep(seconds)
type SleepFunction struct {
	*BaseFunction
}

func NewSleepFunction() *SleepFunction {
	return &SleepFunction{
		BaseFunction: NewScalarBaseFunction(SleepStr, TypeUtility, "工具函数",
			"暂停执行至少指定的秒数，返回NULL", sleepSignature(types.DOUBLE)),
	}
}

func (f *SleepFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SleepFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return nil, sleepRow(ctx, f.name, firstArg(args), f.seconds)
}

func (f *SleepFunction) ExecuteChunk(ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error) {
	return sleepChunk(ctx, f.name, chunk, f.seconds)
}

func (f *SleepFunction) seconds(_ *FunctionContext, arg interface{}) (float64, error) {
	return cast.ToSecondsE(arg)
}

// SleepForFunction sleep_for(interval)
type SleepForFunction struct {
	*BaseFunction
}

func NewSleepForFunction() *SleepForFunction {
	return &SleepForFunction{
		BaseFunction: NewScalarBaseFunction(SleepForStr, TypeUtility, "工具函数",
			"暂停执行至少指定的时间间隔（月按30天计算），返回NULL", sleepSignature(types.INTERVAL)),
	}
}

func (f *SleepForFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SleepForFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return nil, sleepRow(ctx, f.name, firstArg(args), f.seconds)
}

func (f *SleepForFunction) ExecuteChunk(ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error) {
	return sleepChunk(ctx, f.name, chunk, f.seconds)
}

func (f *SleepForFunction) seconds(_ *FunctionContext, arg interface{}) (float64, error) {
	interval, err := cast.ToIntervalE(arg)
	if err != nil {
		return 0, err
	}
	return interval.Seconds(), nil
}

// SleepUntilFunction sleep_until(timestamp)
type SleepUntilFunction struct {
	*BaseFunction
}

func NewSleepUntilFunction() *SleepUntilFunction {
	return &SleepUntilFunction{
		BaseFunction: NewScalarBaseFunction(SleepUntilStr, TypeUtility, "工具函数",
			"暂停执行直到指定的时间戳，返回NULL", sleepSignature(types.TIMESTAMP)),
	}
}

func (f *SleepUntilFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *SleepUntilFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return nil, sleepRow(ctx, f.name, firstArg(args), f.seconds)
}

func (f *SleepUntilFunction) ExecuteChunk(ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error) {
	return sleepChunk(ctx, f.name, chunk, f.seconds)
}

// seconds samples the current time once per row. The deadline itself is
// tracked on the sleeper's monotonic clock.
func (f *SleepUntilFunction) seconds(ctx *FunctionContext, arg interface{}) (float64, error) {
	target, err := cast.ToTimestampE(arg)
	if err != nil {
		return 0, err
	}
	switch target {
	case types.TimestampNegInfinity:
		ctx.logger().Named(f.name).Debug("target is -infinity, returning immediately")
		return 0, nil
	case types.TimestampInfinity:
		ctx.logger().Named(f.name).Debug("target is infinity, sleeping for the ceiling")
		return math.Inf(1), nil
	}
	return ctx.currentTimestamp().SecondsUntil(target), nil
}

// SleepFunctionNames 三个 sleep 函数的注册名称
var SleepFunctionNames = []string{SleepStr, SleepForStr, SleepUntilStr}

// IsSleepFunction reports whether fn is one of this package's sleep functions.
func IsSleepFunction(fn Function) bool {
	switch fn.(type) {
	case *SleepFunction, *SleepForFunction, *SleepUntilFunction:
		return true
	default:
		return false
	}
}

// RegisterSleepFunctions 将 sleep、sleep_for、sleep_until 注册到指定注册器。
// 任一名称已被占用时返回错误，注册器保持不变。
func RegisterSleepFunctions(r *FunctionRegistry) error {
	for _, name := range SleepFunctionNames {
		if _, exists := r.Get(name); exists {
			return fmt.Errorf("function %s already registered", name)
		}
	}
	for _, fn := range []Function{NewSleepFunction(), NewSleepForFunction(), NewSleepUntilFunction()} {
		if err := r.Register(fn); err != nil {
			return err
		}
	}
	return nil
}
