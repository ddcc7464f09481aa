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
	"time"

	"github.com/rulego/sqlsleep/logger"
	"github.com/rulego/sqlsleep/sleep"
	"github.com/rulego/sqlsleep/sleep/sleeptest"
)

var testStart = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// newTestContext 返回使用假时钟的执行上下文，Now 与时钟同步
func newTestContext() (*FunctionContext, *sleeptest.FakeClock) {
	clock := sleeptest.NewFakeClock(testStart)
	ctx := &FunctionContext{
		Sleeper: sleep.New(sleep.WithClock(clock), sleep.WithLogger(logger.NewDiscardLogger())),
		Now:     clock.Now,
	}
	return ctx, clock
}
