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
package types

// LogicalType SQL逻辑类型
type LogicalType int

const (
	INVALID LogicalType = iota
	// DOUBLE 双精度浮点数
	DOUBLE
	// INTERVAL 日历间隔（月、天、微秒）
	INTERVAL
	// TIMESTAMP 微秒精度的绝对时间
	TIMESTAMP
	// SQLNULL 只能为NULL的类型
	SQLNULL
)

func (t LogicalType) String() string {
	switch t {
	case DOUBLE:
		return "DOUBLE"
	case INTERVAL:
		return "INTERVAL"
	case TIMESTAMP:
		return "TIMESTAMP"
	case SQLNULL:
		return "NULL"
	default:
		return "INVALID"
	}
}
