package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/phillip/meetup-planner-go/config"
	models "github.com/phillip/meetup-planner-go/models"
	utils "github.com/phillip/meetup-planner-go/utils"
)

// ---------------- JOIN ----------------
func JoinMeetup(cfg *config.Config) gin.HandlerFunc {
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
			IsVegetarian  bool     `json:"is_vegetarian"`
			IsVegan       bool     `json:"is_vegan"`
			DrinksAlcohol bool     `json:"drinks_alcohol"`
			StayDuration  float64  `json:"stay_duration"`
			JoinTime      string   `json:"join_time"`
			Suggestions   string   `json:"suggestions"`
			BringingItems []string `json:"bringing_items"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.JoinTime != "" && !utils.ValidClock(input.JoinTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "join time must be HH:MM"})
			return
		}

		participant := models.Participant{
			ID:            uuid.NewString(),
			ParticipantID: userID,
			Username:      c.GetString("username"),
			IsVegetarian:  input.IsVegetarian,
			IsVegan:       input.IsVegan,
			DrinksAlcohol: input.DrinksAlcohol,
			StayDuration:  input.StayDuration,
			JoinTime:      input.JoinTime,
			Suggestions:   input.Suggestions,
			BringingItems: input.BringingItems,
			JoinedAt:      time.Now(),
		}
		if participant.BringingItems == nil {
			participant.BringingItems = []string{}
		}

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if meetup.HostID == userID {
				return nil, badRequest("the host is already counted, no need to join")
			}
			for _, p := range meetup.Participants {
				if p.ParticipantID == userID {
					return nil, badRequest("already joined this meetup")
				}
			}
			return bson.M{"participants": append(meetup.Participants, participant)}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusCreated, participant)
	}
}

// ---------------- LEAVE ----------------
func LeaveMeetup(cfg *config.Config) gin.HandlerFunc {
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

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			remaining := make([]models.Participant, 0, len(meetup.Participants))
			for _, p := range meetup.Participants {
				if p.ParticipantID != userID {
					remaining = append(remaining, p)
				}
			}
			if len(remaining) == len(meetup.Participants) {
				return nil, notFound("participant not found")
			}
			return bson.M{"participants": remaining}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "left meetup"})
	}
}

// ---------------- UPDATE PARTICIPATION ----------------
func UpdateParticipation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		participantID, err := primitive.ObjectIDFromHex(c.Param("participantId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
			return
		}

		var input struct {
			IsVegetarian  *bool     `json:"is_vegetarian"`
			IsVegan       *bool     `json:"is_vegan"`
			DrinksAlcohol *bool     `json:"drinks_alcohol"`
			StayDuration  *float64  `json:"stay_duration"`
			JoinTime      *string   `json:"join_time"`
			Suggestions   *string   `json:"suggestions"`
			BringingItems *[]string `json:"bringing_items"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.JoinTime != nil && *input.JoinTime != "" && !utils.ValidClock(*input.JoinTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "join time must be HH:MM"})
			return
		}

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if c.GetString("user_id") != participantID.Hex() && !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "cannot edit another participant"}
			}

			found := false
			now := time.Now()
			participants := make([]models.Participant, len(meetup.Participants))
			copy(participants, meetup.Participants)
			for i := range participants {
				if participants[i].ParticipantID != participantID {
					continue
				}
				found = true
				p := &participants[i]
				if input.IsVegetarian != nil {
					p.IsVegetarian = *input.IsVegetarian
				}
				if input.IsVegan != nil {
					p.IsVegan = *input.IsVegan
				}
				if input.DrinksAlcohol != nil {
					p.DrinksAlcohol = *input.DrinksAlcohol
				}
				if input.StayDuration != nil {
					p.StayDuration = *input.StayDuration
				}
				if input.JoinTime != nil {
					p.JoinTime = *input.JoinTime
				}
				if input.Suggestions != nil {
					p.Suggestions = *input.Suggestions
				}
				if input.BringingItems != nil {
					p.BringingItems = *input.BringingItems
				}
				p.UpdatedAt = &now
			}
			if !found {
				return nil, notFound("participant not found")
			}
			return bson.M{"participants": participants}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "participation updated"})
	}
}

// ---------------- REMOVE (host) ----------------
func RemoveParticipant(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		joinRecordID := c.Param("participantId")

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "only the host can remove participants"}
			}
			remaining := make([]models.Participant, 0, len(meetup.Participants))
			for _, p := range meetup.Participants {
				if p.ID != joinRecordID {
					remaining = append(remaining, p)
				}
			}
			if len(remaining) == len(meetup.Participants) {
				return nil, notFound("participant not found")
			}
			return bson.M{"participants": remaining}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "participant removed"})
	}
}
