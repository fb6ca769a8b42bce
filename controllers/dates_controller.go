package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/phillip/meetup-planner-go/config"
	models "github.com/phillip/meetup-planner-go/models"
	planner "github.com/phillip/meetup-planner-go/planner"
)

// ---------------- SUBMIT AVAILABILITY ----------------
func SubmitAvailability(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		var input struct {
			Availabilities []planner.AvailabilityEntry `json:"availabilities" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		username := c.GetString("username")
		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !meetup.UsesDatePolling {
				return nil, badRequest("meetup does not use date polling")
			}
			if meetup.DateFinalized {
				return nil, conflict("date already finalized, availability editing is closed")
			}
			for _, entry := range input.Availabilities {
				if !candidateExists(meetup.PossibleDates, entry.DateID) {
					return nil, badRequest("unknown date option: " + entry.DateID)
				}
			}
			availabilities := planner.ReplaceAvailability(meetup.DateAvailabilities, userID, username, input.Availabilities)
			return bson.M{"date_availabilities": availabilities}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "availability saved"})
	}
}

func candidateExists(dates []models.MeetupDate, id string) bool {
	for _, d := range dates {
		if d.ID == id {
			return true
		}
	}
	return false
}

// ---------------- POLL ----------------
func GetDatePoll(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		meetup, err := fetchMeetup(ctx, cfg, meetupID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "meetup not found"})
			return
		}

		stats := planner.TallyDates(meetup.PossibleDates, meetup.DateAvailabilities)
		// Results view ranks by support, the voting view keeps calendar order.
		if c.DefaultQuery("view", "voting") == "results" || meetup.DateFinalized {
			planner.SortByPercentage(stats)
		} else {
			planner.SortByDate(stats)
		}

		c.JSON(http.StatusOK, gin.H{
			"dates":               stats,
			"uses_date_polling":   meetup.UsesDatePolling,
			"date_finalized":      meetup.DateFinalized,
			"winning_date_votes":  meetup.WinningDateVotes,
			"winning_date_voters": meetup.WinningDateVoters,
		})
	}
}

// ---------------- FINALIZE ----------------
func FinalizeDate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}

		var decision *planner.FinalDecision
		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "only the host can finalize the date"}
			}
			if meetup.DateFinalized {
				return nil, conflict("date already finalized")
			}

			d, err := planner.DecideFinalDate(meetup)
			if err != nil {
				return nil, badRequest(err.Error())
			}
			decision = d

			// Winning candidate becomes the actual meetup date, one way.
			return bson.M{
				"date":                d.Date.Date,
				"time":                d.Date.Time,
				"end_time":            d.Date.EndTime,
				"date_finalized":      true,
				"finalized_at":        time.Now(),
				"winning_date_votes":  d.Votes,
				"winning_date_voters": d.Voters,
			}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"winning_date": decision.Date,
			"votes":        decision.Votes,
			"voters":       decision.Voters,
		})
	}
}
