package util

import "time"

// DateString 将时间格式化为 YYYY-MM-DD 的日历日期串
func DateString(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate 解析 YYYY-MM-DD 日期串，按本地时区的零点返回
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// DayGap 计算两个日期串之间相隔的整天数（later - earlier）
// 按 UTC 解析，历法日差与本地时区的夏令时切换无关
// 任一日期解析失败时返回 -1
func DayGap(earlier, later string) int {
	a, err := time.Parse(DateFormat, earlier)
	if err != nil {
		return -1
	}
	b, err := time.Parse(DateFormat, later)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}

// StartOfDay 返回给定时间所在日的零点
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
