package planner

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/phillip/meetup-planner-go/models"
)

// AvailabilityEntry is one (date, available) answer in a submission.
type AvailabilityEntry struct {
	DateID    string `json:"date_id" binding:"required"`
	Available bool   `json:"available"`
}

// ReplaceAvailability drops every existing row belonging to the participant
// and appends one row per submitted entry. Replace-not-merge makes
// resubmission idempotent.
func ReplaceAvailability(existing []models.DateAvailability, participantID primitive.ObjectID, username string, entries []AvailabilityEntry) []models.DateAvailability {
	updated := make([]models.DateAvailability, 0, len(existing)+len(entries))
	for _, a := range existing {
		if a.ParticipantID != participantID {
			updated = append(updated, a)
		}
	}
	for _, e := range entries {
		updated = append(updated, models.DateAvailability{
			ParticipantID: participantID,
			Username:      username,
			DateID:        e.DateID,
			Available:     e.Available,
		})
	}
	return updated
}
