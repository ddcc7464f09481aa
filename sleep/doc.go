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
Package sleep implements the interruptible, bounded delay used by the SQL
sleep functions.

A call first normalizes the requested number of seconds into an effective
duration, then blocks in short steps, polling a caller-owned cancellation
signal between steps:

	s := sleep.New()
	flag := &sleep.Flag{}
	err := s.Sleep(flag, 2.5) // blocks ~2.5s unless flag.Interrupt() is called

# Normalization

	NaN          -> ErrInvalidInput
	+Inf / -Inf  -> ceiling (MaxSleepSeconds by default)
	<= 0         -> no-op
	> ceiling    -> ceiling

# Cancellation

The wait loop checks the Signal before every step, and each step lasts at
most CheckInterval (100ms by default), so an interrupt is observed within one
step. Cancellation surfaces as ErrInterrupted and takes priority over a
deadline that has already passed.

The package keeps no shared mutable state; concurrent calls are independent
and each blocks its own goroutine.
*/
package sleep
