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
/*
Package types provides the SQL value types exchanged between the host
engine and the sleep functions.

# Logical Types

	DOUBLE     float64 seconds
	INTERVAL   Interval{Months, Days, Micros}
	TIMESTAMP  Timestamp, microseconds since the Unix epoch
	SQLNULL    the value-less result type of every sleep function

# Intervals

Interval.Seconds uses fixed 30-day months and 24-hour days
(2,592,000 and 86,400 seconds), matching PostgreSQL's sleep_for rather
than calendar arithmetic:

	Interval{Months: 1, Days: 2}.Seconds() // 2764800

# Timestamps

TimestampInfinity and TimestampNegInfinity are the "infinity" and
"-infinity" sentinels occupying the extremes of the int64 range.

# Batches

Vector holds one column of values plus a validity mask; DataChunk groups
the argument columns of one vectorized call:

	chunk := types.NewDataChunk(types.NewVector(types.DOUBLE, 0.1, nil, 0.2))
	chunk.Size()              // 3
	chunk.Column(0).IsValid(1) // false
*/
package types
