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

	"github.com/rulego/sqlsleep/types"
)

// FunctionType 函数类型枚举
type FunctionType string

const (
	// 工具函数（sleep 等有副作用的函数）
	TypeUtility FunctionType = "utility"
	// 用户自定义函数
	TypeCustom FunctionType = "custom"
)

// Stability 函数稳定性，决定结果能否被缓存或常量折叠
type Stability int

const (
	// Consistent 相同输入总是得到相同结果
	Consistent Stability = iota
	// Volatile 结果和副作用依赖调用时刻，不能缓存或折叠
	Volatile
)

func (s Stability) String() string {
	if s == Volatile {
		return "VOLATILE"
	}
	return "CONSISTENT"
}

// NullHandling 函数的NULL处理方式
type NullHandling int

const (
	// DefaultNullHandling NULL输入直接得到NULL输出，不调用函数体
	DefaultNullHandling NullHandling = iota
	// SpecialNullHandling 函数自行处理NULL
	SpecialNullHandling
)

func (n NullHandling) String() string {
	if n == SpecialNullHandling {
		return "SPECIAL_HANDLING"
	}
	return "DEFAULT_NULL_HANDLING"
}

// Signature 标量函数的注册元数据
type Signature struct {
	Args         []types.LogicalType
	Return       types.LogicalType
	Stability    Stability
	NullHandling NullHandling
}

func (s Signature) String() string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(args, ", "), s.Return)
}

// Function 函数接口定义
type Function interface {
	// GetName 获取函数名称
	GetName() string
	// GetType 获取函数类型
	GetType() FunctionType
	// GetCategory 获取函数分类
	GetCategory() string
	// Validate 验证参数
	Validate(args []interface{}) error
	// Execute 执行函数（单行）
	Execute(ctx *FunctionContext, args []interface{}) (interface{}, error)
	// GetDescription 获取函数描述
	GetDescription() string
}

// ScalarFunction is a Function that also evaluates a whole batch of rows.
type ScalarFunction interface {
	Function
	// GetSignature 获取参数类型、返回类型、稳定性和NULL处理方式
	GetSignature() Signature
	// ExecuteChunk evaluates every row of chunk in order and returns one
	// result per row.
	ExecuteChunk(ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error)
}

// FunctionRegistry 函数注册器
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

// 全局函数注册器实例
var globalRegistry = NewFunctionRegistry()

// NewFunctionRegistry 创建新的函数注册器
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// GlobalRegistry 返回全局函数注册器
func GlobalRegistry() *FunctionRegistry {
	return globalRegistry
}

// Register 注册函数，名称不区分大小写
func (r *FunctionRegistry) Register(fn Function) error {
	if fn == nil {
		return fmt.Errorf("cannot register nil function")
	}
	name := strings.ToLower(fn.GetName())
	if name == "" {
		return fmt.Errorf("function name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}

	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	return nil
}

// Get 获取函数
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType 按类型获取函数列表
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Function(nil), r.categories[fnType]...)
}

// ListAll 列出所有注册的函数
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn
	}
	return result
}

// Unregister 注销函数
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	fn, exists := r.functions[name]
	if !exists {
		return false
	}

	delete(r.functions, name)

	fnType := fn.GetType()
	funcs := r.categories[fnType]
	for i, f := range funcs {
		if strings.ToLower(f.GetName()) == name {
			r.categories[fnType] = append(funcs[:i:i], funcs[i+1:]...)
			break
		}
	}
	return true
}

// Execute 校验参数后执行单行函数
func (r *FunctionRegistry) Execute(name string, ctx *FunctionContext, args []interface{}) (interface{}, error) {
	fn, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("function %s not found", name)
	}

	if err := fn.Validate(args); err != nil {
		return nil, fmt.Errorf("function %s validation failed: %w", name, err)
	}

	return fn.Execute(ctx, args)
}

// ExecuteChunk 向量化执行标量函数
func (r *FunctionRegistry) ExecuteChunk(name string, ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error) {
	fn, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("function %s not found", name)
	}
	scalar, ok := fn.(ScalarFunction)
	if !ok {
		return nil, fmt.Errorf("function %s does not support vectorized execution", name)
	}
	return scalar.ExecuteChunk(ctx, chunk)
}

// 全局函数注册和获取方法
func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

func ListAll() map[string]Function {
	return globalRegistry.ListAll()
}

func Unregister(name string) bool {
	return globalRegistry.Unregister(name)
}

func Execute(name string, ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return globalRegistry.Execute(name, ctx, args)
}

func ExecuteChunk(name string, ctx *FunctionContext, chunk *types.DataChunk) (*types.Vector, error) {
	return globalRegistry.ExecuteChunk(name, ctx, chunk)
}

// RegisterCustomFunction 注册自定义函数
func RegisterCustomFunction(name string, fnType FunctionType, category, description string,
	minArgs, maxArgs int, executor func(ctx *FunctionContext, args []interface{}) (interface{}, error)) error {
	if executor == nil {
		return fmt.Errorf("function %s has no executor", name)
	}

	customFunc := &CustomFunction{
		BaseFunction: NewBaseFunction(name, fnType, category, description, minArgs, maxArgs),
		executor:     executor,
	}

	return Register(customFunc)
}

// CustomFunction 自定义函数实现
type CustomFunction struct {
	*BaseFunction
	executor func(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

func (f *CustomFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *CustomFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return f.executor(ctx, args)
}
