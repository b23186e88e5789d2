package capacity

import (
	"fmt"
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// CalendarOptions are the request flags that remove days from the working
// calendar.
type CalendarOptions struct {
	IgnoreWeekends bool
	IgnoreHolidays bool
	IgnoreLeave    bool
}

func (o CalendarOptions) key() string {
	return fmt.Sprintf("%t:%t:%t", o.IgnoreWeekends, o.IgnoreHolidays, o.IgnoreLeave)
}

// LeavePolicy decides whether a collaborator is on leave (folga) on a day.
type LeavePolicy interface {
	OnLeave(collaboratorID string, day time.Time) bool
}

// NoLeave is the default policy: there is no leave data source yet, so every
// day is counted. Requests with IgnoreLeave behave as if it were false.
type NoLeave struct{}

func (NoLeave) OnLeave(string, time.Time) bool { return false }

// LeaveDays is a LeavePolicy backed by an explicit set of dates per
// collaborator.
type LeaveDays map[string]HolidaySet

func (l LeaveDays) OnLeave(collaboratorID string, day time.Time) bool {
	days, ok := l[NormalizeID(collaboratorID)]
	if !ok {
		return false
	}
	return days.Contains(day)
}

// HolidaySet is a set of calendar dates keyed by YYYY-MM-DD.
type HolidaySet map[string]struct{}

func NewHolidaySet(holidays []entities.Holiday) HolidaySet {
	set := make(HolidaySet, len(holidays))
	for _, h := range holidays {
		set[FormatDate(h.Date)] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(day time.Time) bool {
	_, ok := s[FormatDate(day)]
	return ok
}

// Calendar produces the working days of a date range.
type Calendar struct {
	holidays HolidaySet
	leave    LeavePolicy
}

func NewCalendar(holidays HolidaySet, leave LeavePolicy) *Calendar {
	if holidays == nil {
		holidays = HolidaySet{}
	}
	if leave == nil {
		leave = NoLeave{}
	}
	return &Calendar{holidays: holidays, leave: leave}
}

// WorkingDays returns the dates in [start, end] (inclusive, by calendar day)
// that remain after applying opts. Leave is only checked when collaboratorID
// is not empty. start after end yields an empty slice.
func (c *Calendar) WorkingDays(start, end time.Time, opts CalendarOptions, collaboratorID string) []time.Time {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !c.isWorkingDay(d, opts, collaboratorID) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// CountWorkingDays is len(WorkingDays(...)) without the allocation.
func (c *Calendar) CountWorkingDays(start, end time.Time, opts CalendarOptions, collaboratorID string) int {
	start, end = Day(start), Day(end)
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.isWorkingDay(d, opts, collaboratorID) {
			n++
		}
	}
	return n
}

func (c *Calendar) isWorkingDay(d time.Time, opts CalendarOptions, collaboratorID string) bool {
	if opts.IgnoreWeekends {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return false
		}
	}
	if opts.IgnoreHolidays && c.holidays.Contains(d) {
		return false
	}
	if opts.IgnoreLeave && collaboratorID != "" && c.leave.OnLeave(collaboratorID, d) {
		return false
	}
	return true
}
