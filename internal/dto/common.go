package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexFloat 宽松数值：接受 JSON 数字或数字字符串
// 空值、null、无法解析的内容以及 NaN/Inf 一律记为 0，不返回错误
type FlexFloat float64

// UnmarshalJSON 实现 json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = 0
			return nil
		}
		raw = s
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 转为 float64
func (f FlexFloat) Float64() float64 { return float64(f) }
