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
	"context"
	"sync/atomic"
)

// Signal is the caller-owned cancellation flag polled by Wait.
// The sleep loop only reads it.
type Signal interface {
	Interrupted() bool
}

// SignalFunc adapts a predicate to Signal.
type SignalFunc func() bool

func (f SignalFunc) Interrupted() bool {
	return f()
}

// NeverInterrupted is used when the caller supplies no signal.
var NeverInterrupted Signal = SignalFunc(func() bool { return false })

// Flag 可由外部设置的取消标志，零值可用
type Flag struct {
	interrupted atomic.Bool
}

// Interrupt 请求中断正在进行的等待
func (f *Flag) Interrupt() {
	f.interrupted.Store(true)
}

// Reset 清除中断请求
func (f *Flag) Reset() {
	f.interrupted.Store(false)
}

func (f *Flag) Interrupted() bool {
	return f.interrupted.Load()
}

// causer is implemented by signals that can explain why they fired.
type causer interface {
	Cause() error
}

type contextSignal struct {
	ctx context.Context
}

// ContextSignal reports interrupted once ctx is done.
// The resulting ErrInterrupted wraps context.Cause(ctx).
func ContextSignal(ctx context.Context) Signal {
	if ctx == nil {
		return NeverInterrupted
	}
	return contextSignal{ctx: ctx}
}

func (s contextSignal) Interrupted() bool {
	return s.ctx.Err() != nil
}

func (s contextSignal) Cause() error {
	return context.Cause(s.ctx)
}

// AnySignal fires when any of the given signals fires. Nil entries are
// ignored. The interrupt cause is taken from the first signal that fired.
func AnySignal(signals ...Signal) Signal {
	return anySignal(signals)
}

type anySignal []Signal

func (a anySignal) fired() Signal {
	for _, s := range a {
		if s != nil && s.Interrupted() {
			return s
		}
	}
	return nil
}

func (a anySignal) Interrupted() bool {
	return a.fired() != nil
}

func (a anySignal) Cause() error {
	if c, ok := a.fired().(causer); ok {
		return c.Cause()
	}
	return nil
}
