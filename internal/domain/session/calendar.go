package session

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidActivityDate = errors.New("invalid activity date")

// Calendar pins activity dates to a reference time zone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Day returns midnight of the calendar day t falls on in the reference zone.
func (c *Calendar) Day(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, ErrInvalidActivityDate
	}
	return t, nil
}

// ExpiresAt is the start of the day following activityDate.
func (c *Calendar) ExpiresAt(activityDate time.Time) time.Time {
	return c.Day(activityDate).AddDate(0, 0, 1)
}

// DayBounds returns [start, end) of the given calendar day.
func (c *Calendar) DayBounds(day time.Time) (time.Time, time.Time) {
	start := c.Day(day)
	return start, start.AddDate(0, 0, 1)
}
