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
	"strings"
	"sync"

	"github.com/expr-lang/expr"
)

// ExprBridge 桥接函数注册器与 expr-lang/expr，使 sleep 等函数可以在表达式中调用
type ExprBridge struct {
	registry *FunctionRegistry
}

// NewExprBridge 创建新的表达式桥接器，registry 为空时使用全局注册器
func NewExprBridge(registry *FunctionRegistry) *ExprBridge {
	if registry == nil {
		registry = globalRegistry
	}
	return &ExprBridge{registry: registry}
}

var defaultBridge = NewExprBridge(nil)

// GetExprBridge 返回使用全局注册器的桥接器
func GetExprBridge() *ExprBridge {
	return defaultBridge
}

// callRecorder keeps the first error raised by a registered function so
// that it reaches the caller unwrapped, whatever expr does with it.
type callRecorder struct {
	mu  sync.Mutex
	err error
}

func (r *callRecorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

func (r *callRecorder) first() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// functionOptions 将注册器中的函数转换为 expr.Function 选项，大小写名称都可调用
func (bridge *ExprBridge) functionOptions(ctx *FunctionContext, recorder *callRecorder) []expr.Option {
	allFunctions := bridge.registry.ListAll()
	options := make([]expr.Option, 0, len(allFunctions)*2)

	for name, fn := range allFunctions {
		wrappedFunc := func(function Function) func(params ...interface{}) (interface{}, error) {
			return func(params ...interface{}) (interface{}, error) {
				if err := function.Validate(params); err != nil {
					recorder.record(err)
					return nil, err
				}
				result, err := function.Execute(ctx, params)
				if err != nil {
					recorder.record(err)
				}
				return result, err
			}
		}(fn)

		options = append(options, expr.Function(name, wrappedFunc))
		if upper := strings.ToUpper(name); upper != name {
			options = append(options, expr.Function(upper, wrappedFunc))
		}
	}
	return options
}

// EvaluateExpression compiles and runs expression with the registry's
// functions bound to ctx. Identifiers resolve against data; unknown
// identifiers evaluate to nil, which the sleep functions treat as NULL.
//
// Errors returned by a function (for example an interrupted sleep) are
// returned as-is.
func (bridge *ExprBridge) EvaluateExpression(ctx *FunctionContext, expression string, data map[string]interface{}) (interface{}, error) {
	env := make(map[string]interface{}, len(data))
	for k, v := range data {
		env[k] = v
	}
	local := &FunctionContext{}
	if ctx != nil {
		copied := *ctx
		local = &copied
	}
	local.Data = env

	recorder := &callRecorder{}
	options := []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
	}
	options = append(options, bridge.functionOptions(local, recorder)...)

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression '%s': %w", expression, err)
	}

	result, err := expr.Run(program, env)
	if callErr := recorder.first(); callErr != nil {
		return nil, callErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate expression '%s': %w", expression, err)
	}
	return result, nil
}

// IsRegisteredFunction 检查名称是否为注册器中的函数
func (bridge *ExprBridge) IsRegisteredFunction(name string) bool {
	_, ok := bridge.registry.Get(name)
	return ok
}
