package service

import "campus-portal/pkg/timeutil"

// timeSpan 参与冲突检测的时间段；group 相同（同一日期或同一星期）才会比较
type timeSpan struct {
	group string
	start int // 当日分钟数
	end   int
}

// detectConflicts 返回每个时间段与之冲突的其他时间段下标
// 冲突定义为半开区间重叠，首尾相接不算
func detectConflicts(spans []timeSpan) [][]int {
	result := make([][]int, len(spans))
	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			if a.group != b.group {
				continue
			}
			if timeutil.Overlaps(a.start, a.end, b.start, b.end) {
				result[i] = append(result[i], j)
				result[j] = append(result[j], i)
			}
		}
	}
	return result
}

// spanOf 解析 "HH:MM" 区间；格式错误的记录视为空区间，不参与冲突
func spanOf(group, start, end string) timeSpan {
	s, err1 := timeutil.ClockMinutes(start)
	e, err2 := timeutil.ClockMinutes(end)
	if err1 != nil || err2 != nil || e <= s {
		return timeSpan{group: group, start: 0, end: 0}
	}
	return timeSpan{group: group, start: s, end: e}
}
