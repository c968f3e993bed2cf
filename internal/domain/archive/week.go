package archive

import "time"

// WeekOf computes the canonical week window containing now: the most recent
// Sunday at 00:00:00 through the following Saturday at 23:59:59, in now's
// location. The pair keys one snapshot; every row of that snapshot shares it.
func WeekOf(now time.Time) (start, end time.Time) {
	daysSinceSunday := int(now.Weekday())
	day := now.AddDate(0, 0, -daysSinceSunday)
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	endDay := start.AddDate(0, 0, 6)
	end = time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 0, now.Location())

	return start, end
}
