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
Package sqlsleep 为 SQL 查询引擎提供可中断、有上限的睡眠函数。

扩展注册三个标量函数，返回值均为 NULL，作用在于让查询执行线程等待一段时间：

	sleep(seconds)        -- 等待指定秒数（DOUBLE）
	sleep_for(interval)   -- 等待指定间隔，月按30天、天按24小时计算
	sleep_until(ts)       -- 等待直到指定时间戳

# 核心特性

• 可中断 - 每100ms检查一次取消信号，查询取消后最迟一个轮询间隔内返回
• 有上限 - 单次等待最长1小时，Infinity 和过大的值被截断而不是报错
• 输入规范化 - NaN 报 INVALID_INPUT，非正数立即返回
• NULL 处理 - NULL 参数跳过，不等待也不报错
• 易变函数 - 标记为 VOLATILE，不会被缓存或常量折叠

# 入门示例

	package main

	import (
		"context"
		"fmt"
		"time"

		"github.com/rulego/sqlsleep"
		"github.com/rulego/sqlsleep/functions"
		"github.com/rulego/sqlsleep/sleep"
	)

	func main() {
		ext := sqlsleep.New()
		if err := ext.Load(functions.NewFunctionRegistry()); err != nil {
			panic(err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		_, err := ext.Eval(ctx, "sleep(5)", nil)
		fmt.Println(sleep.IsInterrupted(err)) // true
	}

# 错误处理

	sleep.IsInvalidInput(err) // 参数为 NaN
	sleep.IsInterrupted(err)  // 等待期间查询被取消

两类错误都直接返回给调用方，由宿主决定如何呈现给最终用户。

# 配置

	cfg, _ := sleep.ParseConfig([]byte(`{"maxSleep":"10m","checkInterval":"50ms"}`))
	ext := sqlsleep.New(sqlsleep.WithConfig(cfg), sqlsleep.WithLogLevel(logger.DEBUG))
*/
package sqlsleep
