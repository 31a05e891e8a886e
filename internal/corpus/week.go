package corpus

import "time"

// FloorToWeek truncates a timestamp to midnight on the first weekStart on or
// before its civil date. With a Monday start, Wednesday 2018-01-03 floors to
// 2018-01-01. The result is always UTC so weeks compare with == and serve as
// map keys: timestamps whose zone representations differ (Z vs +02:00) must
// land on the same week value.
func FloorToWeek(t time.Time, weekStart time.Weekday) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}
