package timeutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	pkgerrors "campus-portal/pkg/errors"
)

const (
	// DateLayout 接口与存储统一使用的日期格式
	DateLayout = "2006-01-02"
	// ClockLayout 24 小时制时刻
	ClockLayout = "15:04"
)

// ── 土耳其语日历文案 ──

// 以周一为第 0 天
var (
	DayNames   = [7]string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}
	DayAbbrs   = [7]string{"PZT", "SAL", "ÇAR", "PER", "CUM", "CMT", "PAZ"}
	ShortDays  = [7]string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"}
	MonthNames = [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	}
)

// MondayIndex 返回周一为 0 的星期序号
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend 周六或周日
func IsWeekend(t time.Time) bool {
	return MondayIndex(t) >= 5
}

// StartOfDay 当天零点（保留时区）
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek 所在周的周一零点
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -MondayIndex(t))
}

// DayName 土耳其语星期全称
func DayName(t time.Time) string { return DayNames[MondayIndex(t)] }

// FormatLongDate "10 Şubat 2026"
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthNames[t.Month()-1], t.Year())
}

// MonthLabel "Şubat 2026"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthNames[t.Month()-1], t.Year())
}

// Upper 按土耳其语规则转大写（i → İ）
func Upper(s string) string {
	return strings.ToUpperSpecial(unicode.TurkishCase, s)
}

// ── 解析 ──

// ParseDate 在指定时区解析 YYYY-MM-DD
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", pkgerrors.ErrInvalidDate, s)
	}
	return t, nil
}

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// ParseClock 接受 "HH:MM" 或 "hh:MM AM/PM"，返回规范化的 "HH:MM"
func ParseClock(s string) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", pkgerrors.ErrInvalidTime, s)
}

// ClockMinutes "HH:MM" → 当日分钟数
func ClockMinutes(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", pkgerrors.ErrInvalidTime, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseRange 解析一对时刻，要求结束晚于开始
func ParseRange(start, end string) (string, string, error) {
	s, err := ParseClock(start)
	if err != nil {
		return "", "", err
	}
	e, err := ParseClock(end)
	if err != nil {
		return "", "", err
	}
	if e <= s {
		return "", "", pkgerrors.ErrInvalidTimeRange
	}
	return s, e, nil
}

// At 把日期与 "HH:MM" 组合成具体时刻
func At(date time.Time, clock string) (time.Time, error) {
	m, err := ClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(date).Add(time.Duration(m) * time.Minute), nil
}

// Overlaps 半开区间 [aStart, aEnd) 与 [bStart, bEnd) 是否相交，首尾相接不算
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
