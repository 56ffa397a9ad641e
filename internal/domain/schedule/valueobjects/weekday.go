package valueobjects

import (
	"fmt"
	"time"
)

type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

var validWeekdays = map[Weekday]bool{
	Sunday:    true,
	Monday:    true,
	Tuesday:   true,
	Wednesday: true,
	Thursday:  true,
	Friday:    true,
	Saturday:  true,
}

var timeWeekdays = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

func (w Weekday) String() string {
	return string(w)
}

func (w Weekday) IsValid() bool {
	return validWeekdays[w]
}

// WeekdayOf maps a point in time to its weekday name. The caller decides the
// zone: pass a time already localized to the tenant's wall clock.
func WeekdayOf(t time.Time) Weekday {
	return timeWeekdays[t.Weekday()]
}

func NewWeekday(s string) (Weekday, error) {
	w := Weekday(s)
	if !w.IsValid() {
		return "", fmt.Errorf("invalid weekday: %s", s)
	}
	return w, nil
}
