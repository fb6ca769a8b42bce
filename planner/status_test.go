package planner

import (
	"testing"
	"time"

	models "github.com/phillip/meetup-planner-go/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatus(t *testing.T) {
	start := day(2025, time.June, 14)
	end := day(2025, time.June, 15)

	tests := []struct {
		name   string
		meetup models.Meetup
		now    time.Time
		want   models.MeetupStatus
	}{
		{
			name:   "before start is upcoming",
			meetup: models.Meetup{Date: start, Time: "18:00"},
			now:    time.Date(2025, time.June, 14, 17, 59, 0, 0, time.UTC),
			want:   models.StatusUpcoming,
		},
		{
			name:   "exactly at start is in progress",
			meetup: models.Meetup{Date: start, Time: "18:00"},
			now:    time.Date(2025, time.June, 14, 18, 0, 0, 0, time.UTC),
			want:   models.StatusInProgress,
		},
		{
			name:   "exactly at default end is in progress",
			meetup: models.Meetup{Date: start, Time: "18:00"},
			now:    time.Date(2025, time.June, 14, 21, 0, 0, 0, time.UTC),
			want:   models.StatusInProgress,
		},
		{
			name:   "past default 3h window",
			meetup: models.Meetup{Date: start, Time: "18:00"},
			now:    time.Date(2025, time.June, 14, 21, 0, 1, 0, time.UTC),
			want:   models.StatusPast,
		},
		{
			name:   "explicit end extends the window",
			meetup: models.Meetup{Date: start, Time: "18:00", EndDate: &end, EndTime: "02:00"},
			now:    time.Date(2025, time.June, 15, 1, 30, 0, 0, time.UTC),
			want:   models.StatusInProgress,
		},
		{
			name:   "exactly at explicit end is in progress",
			meetup: models.Meetup{Date: start, Time: "18:00", EndDate: &end, EndTime: "02:00"},
			now:    time.Date(2025, time.June, 15, 2, 0, 0, 0, time.UTC),
			want:   models.StatusInProgress,
		},
		{
			name:   "after explicit end is past",
			meetup: models.Meetup{Date: start, Time: "18:00", EndDate: &end, EndTime: "02:00"},
			now:    time.Date(2025, time.June, 15, 2, 0, 1, 0, time.UTC),
			want:   models.StatusPast,
		},
		{
			name:   "end date without end time falls back to default duration",
			meetup: models.Meetup{Date: start, Time: "18:00", EndDate: &end},
			now:    time.Date(2025, time.June, 14, 22, 0, 0, 0, time.UTC),
			want:   models.StatusPast,
		},
		{
			name:   "malformed time string counts as midnight",
			meetup: models.Meetup{Date: start, Time: "soonish"},
			now:    time.Date(2025, time.June, 14, 1, 0, 0, 0, time.UTC),
			want:   models.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(&tt.meetup, tt.now); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}
