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
	"errors"
	"fmt"
)

// ErrorType 睡眠错误类型
type ErrorType int

const (
	// ErrorTypeInvalidInput 请求的时长无法解释（NaN）
	ErrorTypeInvalidInput ErrorType = iota + 1
	// ErrorTypeInterrupted 等待期间观察到取消信号
	ErrorTypeInterrupted
)

// String 返回错误类型名称
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeInvalidInput:
		return "INVALID_INPUT"
	case ErrorTypeInterrupted:
		return "INTERRUPTED"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is returned by Normalize, Wait and Sleep.
// Callers distinguish a bad argument from a cancelled query through Type,
// or with errors.Is against ErrInvalidInput / ErrInterrupted.
type Error struct {
	Type    ErrorType
	Message string
	// Cause 取消原因（例如 context.Canceled），可能为空
	Cause error
}

var (
	// ErrInvalidInput matches any *Error of type ErrorTypeInvalidInput.
	ErrInvalidInput = &Error{Type: ErrorTypeInvalidInput}
	// ErrInterrupted matches any *Error of type ErrorTypeInterrupted.
	ErrInterrupted = &Error{Type: ErrorTypeInterrupted}
)

// Error 实现 error 接口
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = defaultMessage(e.Type)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, msg)
}

// Unwrap 返回底层原因
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

func defaultMessage(t ErrorType) string {
	switch t {
	case ErrorTypeInvalidInput:
		return "invalid sleep duration"
	case ErrorTypeInterrupted:
		return "interrupted"
	default:
		return "sleep failed"
	}
}

func newInvalidInputError(format string, args ...interface{}) *Error {
	return &Error{Type: ErrorTypeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func newInterruptedError(cause error) *Error {
	return &Error{Type: ErrorTypeInterrupted, Message: "sleep interrupted", Cause: cause}
}

// IsInvalidInput 判断是否为非法输入错误
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInterrupted 判断是否为取消错误
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}
