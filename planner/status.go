package planner

import (
	"time"

	models "github.com/phillip/meetup-planner-go/models"
)

// defaultDuration is assumed when a meetup has no explicit end date/time.
const defaultDuration = 3 * time.Hour

// Status classifies a meetup as upcoming, in progress or past at the given
// instant. Both boundaries are inclusive for in_progress. The result is a
// function of wall-clock time and must be recomputed on every read.
func Status(m *models.Meetup, now time.Time) models.MeetupStatus {
	start := atClock(m.Date, m.Time)

	var end time.Time
	if m.EndDate != nil && m.EndTime != "" {
		end = atClock(*m.EndDate, m.EndTime)
	} else {
		end = start.Add(defaultDuration)
	}

	switch {
	case now.Before(start):
		return models.StatusUpcoming
	case !now.After(end):
		return models.StatusInProgress
	default:
		return models.StatusPast
	}
}

// atClock pins an "HH:MM" wall-clock string onto a calendar day. A malformed
// clock string counts as midnight.
func atClock(day time.Time, clock string) time.Time {
	hour, min := splitClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func splitClock(clock string) (hour, min int) {
	if len(clock) < 5 || clock[2] != ':' {
		return 0, 0
	}
	hour = digits(clock[0:2])
	min = digits(clock[3:5])
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0
	}
	return hour, min
}

func digits(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
