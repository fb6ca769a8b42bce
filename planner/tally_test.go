package planner

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/meetup-planner-go/models"
)

func vote(user, dateID string, available bool) models.DateAvailability {
	return models.DateAvailability{
		ParticipantID: primitive.NewObjectID(),
		Username:      user,
		DateID:        dateID,
		Available:     available,
	}
}

func TestTallyDates(t *testing.T) {
	dates := []models.MeetupDate{
		{ID: "a", Date: day(2025, time.July, 5), Time: "19:00"},
		{ID: "b", Date: day(2025, time.July, 12), Time: "19:00"},
		{ID: "c", Date: day(2025, time.July, 19), Time: "19:00"},
	}
	avails := []models.DateAvailability{
		vote("alice", "a", true),
		vote("bob", "a", true),
		vote("carol", "a", false),
		vote("alice", "b", true),
		vote("bob", "b", false),
	}

	stats := TallyDates(dates, avails)
	if len(stats) != 3 {
		t.Fatalf("got %d stats, want 3", len(stats))
	}

	a, b, c := stats[0], stats[1], stats[2]

	if a.Available != 2 || a.Unavailable != 1 || a.Total != 3 {
		t.Errorf("date a counts = %d/%d/%d, want 2/1/3", a.Available, a.Unavailable, a.Total)
	}
	if a.Percentage < 66.6 || a.Percentage > 66.7 {
		t.Errorf("date a percentage = %v, want ~66.67", a.Percentage)
	}
	if len(a.AvailableUsers) != 2 || a.AvailableUsers[0] != "alice" || a.AvailableUsers[1] != "bob" {
		t.Errorf("date a available users = %v", a.AvailableUsers)
	}
	if len(a.UnavailableUsers) != 1 || a.UnavailableUsers[0] != "carol" {
		t.Errorf("date a unavailable users = %v", a.UnavailableUsers)
	}

	if b.Percentage != 50 {
		t.Errorf("date b percentage = %v, want 50", b.Percentage)
	}

	// No votes at all: percentage must be 0, not NaN.
	if c.Total != 0 || c.Percentage != 0 {
		t.Errorf("date c = total %d percentage %v, want 0 and 0", c.Total, c.Percentage)
	}

	if !a.Leading || b.Leading || c.Leading {
		t.Errorf("leading flags = %v/%v/%v, want true/false/false", a.Leading, b.Leading, c.Leading)
	}
}

func TestTallyDatesNoVotesHasNoLeader(t *testing.T) {
	dates := []models.MeetupDate{{ID: "a"}, {ID: "b"}}
	stats := TallyDates(dates, nil)
	for _, s := range stats {
		if s.Leading {
			t.Errorf("date %s flagged leading with zero votes", s.Date.ID)
		}
		if s.Percentage < 0 || s.Percentage > 100 {
			t.Errorf("date %s percentage %v out of range", s.Date.ID, s.Percentage)
		}
	}
}

func TestTallyDatesAvailableSumBound(t *testing.T) {
	dates := []models.MeetupDate{{ID: "a"}, {ID: "b"}}
	avails := []models.DateAvailability{
		vote("alice", "a", true),
		vote("bob", "b", true),
		vote("carol", "b", false),
		vote("dave", "ghost", true), // vote for a removed candidate
	}

	stats := TallyDates(dates, avails)

	sum := 0
	for _, s := range stats {
		sum += s.Available
	}
	availableVotes := 0
	for _, a := range avails {
		if a.Available {
			availableVotes++
		}
	}
	if sum > availableVotes {
		t.Errorf("sum of tallied available %d exceeds available votes %d", sum, availableVotes)
	}
}

func TestSortByPercentage(t *testing.T) {
	dates := []models.MeetupDate{
		{ID: "a", Date: day(2025, time.July, 5)},
		{ID: "b", Date: day(2025, time.July, 12)},
	}
	avails := []models.DateAvailability{
		vote("alice", "a", false),
		vote("alice", "b", true),
	}

	stats := TallyDates(dates, avails)
	SortByPercentage(stats)
	if stats[0].Date.ID != "b" {
		t.Errorf("results view first = %s, want b", stats[0].Date.ID)
	}
}

func TestSortByDate(t *testing.T) {
	dates := []models.MeetupDate{
		{ID: "later", Date: day(2025, time.August, 2)},
		{ID: "earlier", Date: day(2025, time.July, 5)},
	}

	stats := TallyDates(dates, nil)
	SortByDate(stats)
	if stats[0].Date.ID != "earlier" {
		t.Errorf("voting view first = %s, want earlier", stats[0].Date.ID)
	}
}
