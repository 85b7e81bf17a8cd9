package errors

import "errors"

// ── 跨模块共享的输入错误 ──

var (
	// ErrInvalidDate 日期不是 YYYY-MM-DD
	ErrInvalidDate = errors.New("日期格式无效")
	// ErrInvalidTime 时间既不是 HH:MM 也不是 hh:MM AM/PM
	ErrInvalidTime = errors.New("时间格式无效")
	// ErrInvalidTimeRange 结束时间不晚于开始时间（不支持跨午夜）
	ErrInvalidTimeRange = errors.New("结束时间必须晚于开始时间")
)
