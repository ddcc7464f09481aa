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
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// SecondsPerDay 一天的秒数
	SecondsPerDay = 86400
	// SecondsPerMonth 一个月按30天计算的秒数
	SecondsPerMonth = 30 * SecondsPerDay
	// DaysPerMonth 月换算天数
	DaysPerMonth = 30
	// MicrosPerSecond 每秒微秒数
	MicrosPerSecond = 1000000
	// MicrosPerDay 每天微秒数
	MicrosPerDay = SecondsPerDay * MicrosPerSecond
)

// Interval 日历间隔，与宿主数据库的 interval 布局一致
type Interval struct {
	Months int32 `json:"months"`
	Days   int32 `json:"days"`
	Micros int64 `json:"micros"`
}

// FromDuration 将 time.Duration 转换为仅含微秒的间隔
func FromDuration(d time.Duration) Interval {
	return Interval{Micros: d.Microseconds()}
}

// Seconds converts the interval to seconds using 30-day months and
// 24-hour days.
func (iv Interval) Seconds() float64 {
	return float64(iv.Days)*SecondsPerDay +
		float64(iv.Months)*SecondsPerMonth +
		float64(iv.Micros)/MicrosPerSecond
}

func (iv Interval) IsZero() bool {
	return iv.Months == 0 && iv.Days == 0 && iv.Micros == 0
}

func (iv Interval) String() string {
	var parts []string
	if iv.Months != 0 {
		parts = append(parts, pluralize(int64(iv.Months), "month"))
	}
	if iv.Days != 0 {
		parts = append(parts, pluralize(int64(iv.Days), "day"))
	}
	if iv.Micros != 0 || len(parts) == 0 {
		parts = append(parts, (time.Duration(iv.Micros) * time.Microsecond).String())
	}
	return strings.Join(parts, " ")
}

func pluralize(n int64, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

var (
	intervalQuantity = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+))([a-z]*)$`)
	intervalClock    = regexp.MustCompile(`^([+-]?)(\d+):(\d{1,2})(?::(\d{1,2}(?:\.\d+)?))?$`)
)

// intervalBuilder accumulates fractional quantities, spilling fractional
// months into days and fractional days into microseconds.
type intervalBuilder struct {
	months float64
	days   float64
	micros float64
}

func (b *intervalBuilder) addMonths(n float64) {
	whole := math.Trunc(n)
	b.months += whole
	b.addDays((n - whole) * DaysPerMonth)
}

func (b *intervalBuilder) addDays(n float64) {
	whole := math.Trunc(n)
	b.days += whole
	b.micros += (n - whole) * MicrosPerDay
}

func (b *intervalBuilder) addSeconds(n float64) {
	b.micros += n * MicrosPerSecond
}

func (b *intervalBuilder) add(n float64, unit string) error {
	switch unit {
	case "", "s", "sec", "secs", "second", "seconds":
		b.addSeconds(n)
	case "ms", "msec", "msecs", "millisecond", "milliseconds":
		b.addSeconds(n / 1000)
	case "us", "usec", "usecs", "microsecond", "microseconds":
		b.micros += n
	case "m", "min", "mins", "minute", "minutes":
		b.addSeconds(n * 60)
	case "h", "hr", "hrs", "hour", "hours":
		b.addSeconds(n * 3600)
	case "d", "day", "days":
		b.addDays(n)
	case "w", "week", "weeks":
		b.addDays(n * 7)
	case "mon", "mons", "month", "months":
		b.addMonths(n)
	case "y", "year", "years":
		b.addMonths(n * 12)
	default:
		return fmt.Errorf("unknown interval unit %q", unit)
	}
	return nil
}

func (b *intervalBuilder) build() (Interval, error) {
	if b.months > math.MaxInt32 || b.months < math.MinInt32 {
		return Interval{}, fmt.Errorf("interval months out of range: %g", b.months)
	}
	if b.days > math.MaxInt32 || b.days < math.MinInt32 {
		return Interval{}, fmt.Errorf("interval days out of range: %g", b.days)
	}
	micros := math.Round(b.micros)
	if micros >= math.MaxInt64 || micros <= math.MinInt64 {
		return Interval{}, fmt.Errorf("interval microseconds out of range: %g", b.micros)
	}
	return Interval{Months: int32(b.months), Days: int32(b.days), Micros: int64(micros)}, nil
}

// ParseInterval parses interval text. Accepted forms include Go durations
// ("1.5s", "2h30m"), unit lists ("1 month 2 days", "3 hours", "5s") and
// clock notation ("00:00:01.5", "01:30").
func ParseInterval(s string) (Interval, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return Interval{}, fmt.Errorf("invalid interval %q", s)
	}
	if d, err := time.ParseDuration(text); err == nil {
		return FromDuration(d), nil
	}

	var b intervalBuilder
	fields := strings.Fields(strings.TrimPrefix(text, "@"))
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if m := intervalClock.FindStringSubmatch(field); m != nil {
			if err := b.addClock(m); err != nil {
				return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
			}
			continue
		}
		m := intervalQuantity.FindStringSubmatch(field)
		if m == nil {
			return Interval{}, fmt.Errorf("invalid interval %q: unexpected %q", s, field)
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
		}
		unit := m[2]
		if unit == "" && i+1 < len(fields) && !intervalQuantity.MatchString(fields[i+1]) && !intervalClock.MatchString(fields[i+1]) {
			i++
			unit = fields[i]
		}
		if err := b.add(n, unit); err != nil {
			return Interval{}, fmt.Errorf("invalid interval %q: %w", s, err)
		}
	}
	return b.build()
}

func (b *intervalBuilder) addClock(m []string) error {
	hours, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return err
	}
	minutes, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return err
	}
	var seconds float64
	if m[4] != "" {
		if seconds, err = strconv.ParseFloat(m[4], 64); err != nil {
			return err
		}
	}
	total := hours*3600 + minutes*60 + seconds
	if m[1] == "-" {
		total = -total
	}
	b.addSeconds(total)
	return nil
}
