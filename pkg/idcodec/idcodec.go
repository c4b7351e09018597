// Package idcodec 负责64位整数ID与线上(JSON)表示之间的转换
//
// 设计说明:
// 1. 数据库主键是int64,超过2^53后JSON number在多数客户端会丢精度
// 2. 所有响应中的ID统一编码为十进制字符串
// 3. 请求中的ID既接受字符串也接受数字,解析失败返回ErrInvalidIdentifier
//
// 用法:响应DTO的ID字段声明为idcodec.ID,序列化时由MarshalJSON统一编码,
// 不需要在每个handler里手动转换。
package idcodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// ErrInvalidIdentifier ID不是合法的非负整数
var ErrInvalidIdentifier = apperrors.New(apperrors.ErrCodeInvalidIdentifier, "无效的ID")

// maxSafeFloat float64能精确表示的最大整数(2^53)
const maxSafeFloat = 1 << 53

// Encode 内部ID → 线上字符串
func Encode(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Decode 线上值 → 内部ID
// 支持: 十进制数字字符串、json.Number、整数类型、无小数部分且在安全范围内的float64
func Decode(v any) (int64, error) {
	switch x := v.(type) {
	case string:
		return parseDigits(x)
	case json.Number:
		return parseDigits(string(x))
	case int:
		return nonNegative(int64(x))
	case int32:
		return nonNegative(int64(x))
	case int64:
		return nonNegative(x)
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, invalid(x)
		}
		return int64(x), nil
	case float64:
		if x < 0 || x > maxSafeFloat || x != math.Trunc(x) {
			return 0, invalid(x)
		}
		return int64(x), nil
	default:
		return 0, invalid(v)
	}
}

// ParseParam 解析路径/查询参数中的ID
func ParseParam(s string) (int64, error) {
	return parseDigits(s)
}

func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, invalid(s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, invalid(s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// 超出int64范围
		return 0, invalid(s)
	}
	return n, nil
}

func nonNegative(n int64) (int64, error) {
	if n < 0 {
		return 0, invalid(n)
	}
	return n, nil
}

func invalid(v any) error {
	return fmt.Errorf("%w: %v", ErrInvalidIdentifier, v)
}

// ID 线上ID类型
// JSON输出固定为字符串,输入兼容字符串和数字
type ID int64

// Int64 返回内部值
func (id ID) Int64() int64 {
	return int64(id)
}

// String 实现fmt.Stringer
func (id ID) String() string {
	return Encode(int64(id))
}

// MarshalJSON 编码为带引号的十进制字符串
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(Encode(int64(id)))), nil
}

// UnmarshalJSON 接受"123"或123,null保持零值(交给required校验)
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return invalid(string(data))
		}
	} else {
		raw = string(data)
	}

	n, err := parseDigits(raw)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

// FromInt64s 批量转换为线上ID
func FromInt64s(ids []int64) []ID {
	out := make([]ID, len(ids))
	for i, v := range ids {
		out[i] = ID(v)
	}
	return out
}

// ToInt64s 批量转换为内部ID
// nil输入返回nil,用于区分"字段未提供"和"空数组"
func ToInt64s(ids []ID) []int64 {
	if ids == nil {
		return nil
	}
	out := make([]int64, len(ids))
	for i, v := range ids {
		out[i] = int64(v)
	}
	return out
}
