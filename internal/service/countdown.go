package service

import (
	"context"
	"time"
)

// Countdown 距目标时刻的剩余时间（向下取整）
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero 目标时刻已到
func (c Countdown) IsZero() bool {
	return c == Countdown{}
}

// CalculateCountdown 计算 now 到 target 的剩余天/时/分/秒；已过期时全部为 0
func CalculateCountdown(now, target time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{}
	}

	total := int64(diff / time.Second)
	return Countdown{
		Days:    int(total / 86400),
		Hours:   int(total % 86400 / 3600),
		Minutes: int(total % 3600 / 60),
		Seconds: int(total % 60),
	}
}

// WatchCountdown 每隔 interval 重新计算一次倒计时并写入返回的 channel
// 立即推送首个值；ctx 取消或倒计时归零后关闭 channel
func WatchCountdown(ctx context.Context, interval time.Duration, target time.Time, now func() time.Time) <-chan Countdown {
	out := make(chan Countdown, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			cd := CalculateCountdown(now(), target)
			select {
			case out <- cd:
			case <-ctx.Done():
				return
			}
			if cd.IsZero() {
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
