package planner

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/meetup-planner-go/models"
)

func TestReplaceAvailability(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	existing := []models.DateAvailability{
		{ParticipantID: alice, Username: "alice", DateID: "a", Available: true},
		{ParticipantID: alice, Username: "alice", DateID: "b", Available: false},
		{ParticipantID: bob, Username: "bob", DateID: "a", Available: true},
	}

	entries := []AvailabilityEntry{
		{DateID: "a", Available: false},
		{DateID: "b", Available: true},
	}

	updated := ReplaceAvailability(existing, alice, "alice", entries)

	if len(updated) != 3 {
		t.Fatalf("got %d rows, want 3", len(updated))
	}
	// Bob's row survives untouched.
	if updated[0].ParticipantID != bob {
		t.Errorf("first row belongs to %v, want bob's row preserved", updated[0].ParticipantID)
	}
	// Alice's rows are the new submission, not a merge with the old one.
	if updated[1].DateID != "a" || updated[1].Available {
		t.Errorf("alice row a = %+v, want available=false", updated[1])
	}
	if updated[2].DateID != "b" || !updated[2].Available {
		t.Errorf("alice row b = %+v, want available=true", updated[2])
	}
}

func TestReplaceAvailabilityIdempotent(t *testing.T) {
	alice := primitive.NewObjectID()
	entries := []AvailabilityEntry{
		{DateID: "a", Available: true},
		{DateID: "b", Available: false},
	}

	once := ReplaceAvailability(nil, alice, "alice", entries)
	twice := ReplaceAvailability(once, alice, "alice", entries)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("resubmission changed the set:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestReplaceAvailabilityEmptySubmissionClears(t *testing.T) {
	alice := primitive.NewObjectID()
	existing := []models.DateAvailability{
		{ParticipantID: alice, Username: "alice", DateID: "a", Available: true},
	}

	updated := ReplaceAvailability(existing, alice, "alice", nil)
	if len(updated) != 0 {
		t.Errorf("got %d rows, want 0 after empty resubmission", len(updated))
	}
}
