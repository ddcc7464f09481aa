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


package table

import (
	"fmt"
	"io"
	"strings"
)

// minColumnWidth 最小列宽
const minColumnWidth = 4

// Render writes rows as a bordered text table followed by a row count.
// Missing trailing cells render empty; surplus cells are dropped.
func Render(w io.Writer, header []string, rows [][]interface{}) error {
	if len(header) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(len(h), minColumnWidth)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(header))
		for i := range header {
			if i >= len(row) {
				continue
			}
			cells[r][i] = formatCell(row[i])
			if l := len(cells[r][i]); l > widths[i] {
				widths[i] = l
			}
		}
	}

	var b strings.Builder
	border(&b, widths)
	line(&b, header, widths)
	border(&b, widths)
	for _, row := range cells {
		line(&b, row, widths)
	}
	border(&b, widths)
	fmt.Fprintf(&b, "(%d rows)\n", len(rows))
	_, err := io.WriteString(w, b.String())
	return err
}

// formatCell NULL 单元格显示为 NULL
func formatCell(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func border(b *strings.Builder, widths []int) {
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
}

func line(b *strings.Builder, values []string, widths []int) {
	b.WriteByte('|')
	for i, v := range values {
		fmt.Fprintf(b, " %-*s |", widths[i], v)
	}
	b.WriteByte('\n')
}
