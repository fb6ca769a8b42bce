package planner

import (
	"errors"
	"testing"
	"time"

	models "github.com/phillip/meetup-planner-go/models"
)

func TestDecideFinalDate(t *testing.T) {
	tests := []struct {
		name      string
		dates     []models.MeetupDate
		avails    []models.DateAvailability
		wantID    string
		wantVotes int
		wantErr   error
	}{
		{
			name:    "no candidates",
			dates:   nil,
			wantErr: ErrNoDateOptions,
		},
		{
			name:    "candidates but zero votes",
			dates:   []models.MeetupDate{{ID: "a"}, {ID: "b"}},
			avails:  []models.DateAvailability{vote("alice", "a", false)},
			wantErr: ErrNoVotes,
		},
		{
			name:  "clear winner",
			dates: []models.MeetupDate{{ID: "a"}, {ID: "b"}},
			avails: []models.DateAvailability{
				vote("alice", "a", true),
				vote("bob", "a", true),
				vote("carol", "b", true),
			},
			wantID:    "a",
			wantVotes: 2,
		},
		{
			name:  "tie keeps the first candidate",
			dates: []models.MeetupDate{{ID: "a"}, {ID: "b"}},
			avails: []models.DateAvailability{
				vote("alice", "a", true),
				vote("bob", "a", true),
				vote("carol", "b", true),
				vote("dave", "b", true),
			},
			wantID:    "a",
			wantVotes: 2,
		},
		{
			name:  "later candidate must strictly exceed",
			dates: []models.MeetupDate{{ID: "a"}, {ID: "b"}},
			avails: []models.DateAvailability{
				vote("alice", "a", true),
				vote("bob", "b", true),
				vote("carol", "b", true),
			},
			wantID:    "b",
			wantVotes: 2,
		},
		{
			name:  "unavailable votes do not count",
			dates: []models.MeetupDate{{ID: "a"}, {ID: "b"}},
			avails: []models.DateAvailability{
				vote("alice", "a", true),
				vote("bob", "b", false),
				vote("carol", "b", false),
			},
			wantID:    "a",
			wantVotes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &models.Meetup{PossibleDates: tt.dates, DateAvailabilities: tt.avails}
			got, err := DecideFinalDate(m)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecideFinalDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecideFinalDate() unexpected error: %v", err)
			}
			if got.Date.ID != tt.wantID {
				t.Errorf("winning date = %s, want %s", got.Date.ID, tt.wantID)
			}
			if got.Votes != tt.wantVotes {
				t.Errorf("votes = %d, want %d", got.Votes, tt.wantVotes)
			}
			if len(got.Voters) != tt.wantVotes {
				t.Errorf("voters = %v, want %d entries", got.Voters, tt.wantVotes)
			}
		})
	}
}

func TestDecideFinalDateEndToEnd(t *testing.T) {
	// Two candidates, three participants: 2 available on A, 1 on B.
	dateA := models.MeetupDate{ID: "a", Date: day(2025, time.July, 5), Time: "19:00", EndTime: "23:00"}
	dateB := models.MeetupDate{ID: "b", Date: day(2025, time.July, 12), Time: "18:00"}

	m := &models.Meetup{
		UsesDatePolling: true,
		Date:            dateA.Date, // provisional: first candidate
		Time:            dateA.Time,
		PossibleDates:   []models.MeetupDate{dateA, dateB},
		DateAvailabilities: []models.DateAvailability{
			vote("alice", "a", true),
			vote("bob", "a", true),
			vote("carol", "b", true),
		},
	}

	decision, err := DecideFinalDate(m)
	if err != nil {
		t.Fatalf("DecideFinalDate() error: %v", err)
	}
	if !decision.Date.Date.Equal(dateA.Date) || decision.Date.Time != "19:00" {
		t.Errorf("winner = %v %s, want candidate A", decision.Date.Date, decision.Date.Time)
	}
	if decision.Votes != 2 || len(decision.Voters) != 2 {
		t.Errorf("votes = %d voters = %v, want 2 and 2 entries", decision.Votes, decision.Voters)
	}
}
