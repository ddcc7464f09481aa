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

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Timestamp 自Unix纪元起的微秒数
type Timestamp int64

const (
	// TimestampNegInfinity "-infinity" 哨兵值
	TimestampNegInfinity Timestamp = math.MinInt64
	// TimestampInfinity "infinity" 哨兵值
	TimestampInfinity Timestamp = math.MaxInt64
)

// FromTime 转换 time.Time 为微秒时间戳
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMicro())
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return FromTime(time.Now())
}

// IsFinite 是否为普通（非哨兵）时间戳
func (ts Timestamp) IsFinite() bool {
	return ts != TimestampInfinity && ts != TimestampNegInfinity
}

// Time 转换为 UTC time.Time，哨兵值没有对应的时间
func (ts Timestamp) Time() time.Time {
	return time.UnixMicro(int64(ts)).UTC()
}

// SecondsUntil returns target minus ts in seconds. The subtraction is done
// on the unsigned representation so that distant finite values cannot
// overflow.
func (ts Timestamp) SecondsUntil(target Timestamp) float64 {
	if target >= ts {
		return float64(uint64(target)-uint64(ts)) / MicrosPerSecond
	}
	return -float64(uint64(ts)-uint64(target)) / MicrosPerSecond
}

func (ts Timestamp) String() string {
	switch ts {
	case TimestampInfinity:
		return "infinity"
	case TimestampNegInfinity:
		return "-infinity"
	}
	return ts.Time().Format("2006-01-02 15:04:05.999999")
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses "infinity", "-infinity" or a date/time in one of
// the common SQL and RFC 3339 layouts. Values without a zone are UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	text := strings.TrimSpace(s)
	switch strings.ToLower(text) {
	case "infinity", "+infinity":
		return TimestampInfinity, nil
	case "-infinity":
		return TimestampNegInfinity, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return FromTime(t), nil
		}
	}
	return 0, fmt.Errorf("invalid timestamp %q", s)
}
