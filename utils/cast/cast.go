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
// Package cast decodes SQL argument values into the scalar shapes the
// sleep functions consume.
package cast

import (
	"fmt"
	"time"

	spfcast "github.com/spf13/cast"

	"github.com/rulego/sqlsleep/types"
)

// ToSecondsE converts a numeric argument to seconds.
// time.Duration and types.Interval are accepted as well; numeric strings
// such as "1.5", "NaN" or "Inf" go through strconv.
func ToSecondsE(x any) (float64, error) {
	switch v := x.(type) {
	case time.Duration:
		return v.Seconds(), nil
	case types.Interval:
		return v.Seconds(), nil
	case *types.Interval:
		if v == nil {
			return 0, fmt.Errorf("invalid operation: seconds(nil)")
		}
		return v.Seconds(), nil
	case bool:
		return 0, fmt.Errorf("invalid operation: seconds(%T)", x)
	}
	f, err := spfcast.ToFloat64E(x)
	if err != nil {
		return 0, fmt.Errorf("invalid operation: seconds(%T): %w", x, err)
	}
	return f, nil
}

// ToIntervalE converts an INTERVAL argument.
func ToIntervalE(x any) (types.Interval, error) {
	switch v := x.(type) {
	case types.Interval:
		return v, nil
	case *types.Interval:
		if v == nil {
			return types.Interval{}, fmt.Errorf("invalid operation: interval(nil)")
		}
		return *v, nil
	case time.Duration:
		return types.FromDuration(v), nil
	case string:
		return types.ParseInterval(v)
	case []byte:
		return types.ParseInterval(string(v))
	default:
		return types.Interval{}, fmt.Errorf("invalid operation: interval(%T)", x)
	}
}

// ToTimestampE converts a TIMESTAMP argument. Integers are taken as
// microseconds since the epoch.
func ToTimestampE(x any) (types.Timestamp, error) {
	switch v := x.(type) {
	case types.Timestamp:
		return v, nil
	case time.Time:
		return types.FromTime(v), nil
	case *time.Time:
		if v == nil {
			return 0, fmt.Errorf("invalid operation: timestamp(nil)")
		}
		return types.FromTime(*v), nil
	case string:
		return types.ParseTimestamp(v)
	case []byte:
		return types.ParseTimestamp(string(v))
	case int, int32, int64, uint32:
		micros, err := spfcast.ToInt64E(v)
		if err != nil {
			return 0, err
		}
		return types.Timestamp(micros), nil
	default:
		return 0, fmt.Errorf("invalid operation: timestamp(%T)", x)
	}
}
