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

// Vector 列向量，Data 与 Validity 按行对齐
type Vector struct {
	Type LogicalType
	Data []interface{}
	// Validity 为 nil 表示所有行有效
	Validity []bool
	constant bool
	size     int
}

// NewVector creates a flat vector; nil values are marked invalid (NULL).
func NewVector(t LogicalType, values ...interface{}) *Vector {
	v := &Vector{Type: t, Data: values, size: len(values)}
	for i, value := range values {
		if value == nil {
			v.SetNull(i)
		}
	}
	return v
}

// NewNullVector 创建长度为 size 的常量NULL向量
func NewNullVector(size int) *Vector {
	return &Vector{Type: SQLNULL, constant: true, size: size}
}

// Len 返回行数
func (v *Vector) Len() int {
	return v.size
}

// IsConstant 是否为常量向量，常量向量的所有行均为NULL
func (v *Vector) IsConstant() bool {
	return v.constant
}

// IsValid 判断第 i 行是否非NULL
func (v *Vector) IsValid(i int) bool {
	if v.constant {
		return false
	}
	if i < 0 || i >= v.size {
		return false
	}
	if v.Validity == nil {
		return true
	}
	return v.Validity[i]
}

// Get 返回第 i 行的值，NULL 返回 nil
func (v *Vector) Get(i int) interface{} {
	if !v.IsValid(i) {
		return nil
	}
	return v.Data[i]
}

// SetNull 将第 i 行标记为NULL
func (v *Vector) SetNull(i int) {
	if v.Validity == nil {
		v.Validity = make([]bool, v.size)
		for j := range v.Validity {
			v.Validity[j] = true
		}
	}
	v.Validity[i] = false
}

// DataChunk 一次向量化调用的参数列
type DataChunk struct {
	Columns []*Vector
	size    int
}

// NewDataChunk builds a chunk whose row count is the length of its first column.
func NewDataChunk(columns ...*Vector) *DataChunk {
	c := &DataChunk{Columns: columns}
	if len(columns) > 0 {
		c.size = columns[0].Len()
	}
	return c
}

// Size 返回行数
func (c *DataChunk) Size() int {
	return c.size
}

// ColumnCount 返回列数
func (c *DataChunk) ColumnCount() int {
	return len(c.Columns)
}

// Column 返回第 i 列
func (c *DataChunk) Column(i int) *Vector {
	return c.Columns[i]
}
