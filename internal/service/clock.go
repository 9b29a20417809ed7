package service

import (
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
)

// Clock supplies the current instant and the calendar location used to
// turn instants into date keys.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock returns a Clock; nil arguments mean time.Now and time.Local.
func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: now, loc: loc}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now().In(c.Location())
}

func (c Clock) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Today is the current date key in the clock's location.
func (c Clock) Today() string {
	return domain.DateKey(c.Now())
}

// Parse turns a date key into midnight in the clock's location. An empty
// key means today.
func (c Clock) Parse(date string) (time.Time, error) {
	if date == "" {
		n := c.Now()
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.Location()), nil
	}
	t, err := domain.ParseDateIn(date, c.Location())
	if err != nil {
		return time.Time{}, invalid(err)
	}
	return t, nil
}
