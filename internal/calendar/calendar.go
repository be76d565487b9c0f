package calendar

import (
	"math"
	"time"
)

//DateLayout Format of date strings used as document keys and in profiles.
const DateLayout = "2006-01-02"

//ChallengeYear Year of the current challenge.
const ChallengeYear = 2025

//TotalDays Number of days in the challenge window.
const TotalDays = 133

//Start First day of the challenge (day 1), UTC midnight.
var Start = time.Date(ChallengeYear, time.June, 21, 0, 0, 0, 0, time.UTC)

//End Last day of the challenge (day 133), UTC midnight.
var End = time.Date(ChallengeYear, time.October, 31, 0, 0, 0, 0, time.UTC)

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

//IsChallengeActive Whether the UTC calendar day of t is inside the challenge window.
func IsChallengeActive(t time.Time) bool {
	day := startOfDay(t)
	return !day.Before(Start) && !day.After(End)
}

//IsDateActive Whether the date string is inside the challenge window.
func IsDateActive(date string) bool {
	t, err := Parse(date)
	if err != nil {
		return false
	}
	return IsChallengeActive(t)
}

//Parse Parses date string as UTC midnight.
func Parse(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.UTC)
}

//DayNumberFromDate 0 before the challenge start, otherwise ceil(days since start) + 1. Unparsable dates give 0.
func DayNumberFromDate(date string) int {
	t, err := Parse(date)
	if err != nil {
		return 0
	}
	if t.Before(Start) {
		return 0
	}
	return int(math.Ceil(t.Sub(Start).Hours()/24)) + 1
}

//DateFromDayNumber Inverse of DayNumberFromDate. Days outside 1..TotalDays map to the start date.
func DateFromDayNumber(day int) string {
	if day < 1 || day > TotalDays {
		return Start.Format(DateLayout)
	}
	return Start.AddDate(0, 0, day-1).Format(DateLayout)
}

//DailyTarget Steps per day needed to reach the goal within the challenge; 0 when no goal is set.
func DailyTarget(stepGoal int) int {
	if stepGoal <= 0 {
		return 0
	}
	return int(math.Round(float64(stepGoal) / TotalDays))
}

//Today Date string of now in given time zone.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(DateLayout)
}

//AddDays Shifts date string by n days. Unparsable dates give "".
func AddDays(date string, n int) string {
	t, err := Parse(date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

//Yesterday Day before date.
func Yesterday(date string) string {
	return AddDays(date, -1)
}

//LastDays The n dates ending with today, oldest first.
func LastDays(today string, n int) []string {
	if n <= 0 {
		return nil
	}
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		if d := AddDays(today, -i); d != "" {
			dates = append(dates, d)
		}
	}
	return dates
}

//Moment Instant of a request together with its challenge-local date.
type Moment struct {
	Now   time.Time
	Today string
}

//At Builds Moment for now in given time zone.
func At(now time.Time, loc *time.Location) Moment {
	return Moment{Now: now, Today: Today(now, loc)}
}

//Active Whether Today is inside the challenge window.
func (m Moment) Active() bool {
	return IsDateActive(m.Today)
}

//DayNumber Challenge day number of Today.
func (m Moment) DayNumber() int {
	return DayNumberFromDate(m.Today)
}
