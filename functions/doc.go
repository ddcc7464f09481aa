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
Package functions provides the function catalog of the sleep extension and
the three SQL entry points it registers.

# Functions

	sleep(seconds DOUBLE)           -> NULL
	sleep_for(interval INTERVAL)    -> NULL
	sleep_until(ts TIMESTAMP)       -> NULL

All three are VOLATILE and use default NULL handling: a NULL argument
produces a NULL result without sleeping. Each adapter converts its
argument into seconds and calls the sleep package, which clamps the
duration to the ceiling and polls the cancellation signal.

sleep_for uses fixed 30-day months and 24-hour days. sleep_until
subtracts the current time from the target; "-infinity" returns
immediately and "infinity" sleeps for the ceiling.

# Registry

FunctionRegistry stores functions by case-insensitive name. The global
registry is populated with the sleep functions at init; hosts may build
their own registry and call RegisterSleepFunctions.

# Execution

Single row:

	ctx := functions.NewFunctionContext(queryCtx)
	_, err := functions.Execute("sleep", ctx, []interface{}{0.5})

Batch:

	chunk := types.NewDataChunk(types.NewVector(types.DOUBLE, 0.1, nil, 0.2))
	result, err := functions.ExecuteChunk("sleep", ctx, chunk) // constant NULL vector

Expressions (expr-lang):

	_, err := functions.GetExprBridge().EvaluateExpression(ctx, "sleep_for('250ms')", nil)
*/
package functions
