package utils

import "time"

// TomorrowStart returns midnight of the day after now, the earliest
// selectable target date for a new goal.
func TomorrowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// FirstOfPreviousMonth returns midnight of the first day of the month before
// now, the earliest selectable reading date for a vitals entry. time.Date
// normalizes month zero to December of the previous year.
func FirstOfPreviousMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
}

// DayStart returns midnight of now's calendar day.
func DayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
