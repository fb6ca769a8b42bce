package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/phillip/meetup-planner-go/config"
	models "github.com/phillip/meetup-planner-go/models"
	planner "github.com/phillip/meetup-planner-go/planner"
)

// ---------------- RESOLVED LIST ----------------
func GetShoppingList(cfg *config.Config) gin.HandlerFunc {
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

		count := planner.HeadCount(meetup)
		c.JSON(http.StatusOK, gin.H{
			"items":             planner.ResolveShoppingList(meetup.ShoppingList, count),
			"participant_count": count,
		})
	}
}

// ---------------- SUGGEST ----------------
func SuggestItem(cfg *config.Config) gin.HandlerFunc {
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
			Name       string  `json:"name" binding:"required"`
			BaseAmount float64 `json:"base_amount" binding:"required"`
			Unit       string  `json:"unit" binding:"required"`
			Category   string  `json:"category" binding:"required"`
			PerPerson  bool    `json:"per_person"`
			Reason     string  `json:"reason"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.BaseAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "base amount must be greater than 0"})
			return
		}
		if !validCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item category"})
			return
		}

		suggestion := models.ItemSuggestion{
			ID:                  uuid.NewString(),
			ParticipantID:       userID,
			ParticipantUsername: c.GetString("username"),
			Name:                input.Name,
			BaseAmount:          input.BaseAmount,
			Unit:                input.Unit,
			Category:            input.Category,
			PerPerson:           input.PerPerson,
			Reason:              input.Reason,
			SuggestedAt:         time.Now(),
			Status:              models.SuggestionPending,
		}

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if meetup.HostID == userID {
				return nil, badRequest("the host can add items to the shopping list directly")
			}
			return bson.M{"item_suggestions": append(meetup.ItemSuggestions, suggestion)}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusCreated, suggestion)
	}
}

// ---------------- ACCEPT ----------------
func AcceptSuggestion(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		suggestionID := c.Param("suggestionId")

		var item models.ShoppingItem
		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "only the host can accept suggestions"}
			}

			suggestion, remaining, reqErr := takeSuggestion(meetup.ItemSuggestions, suggestionID)
			if reqErr != nil {
				return nil, reqErr
			}

			item = models.ShoppingItem{
				ID:         uuid.NewString(),
				Name:       suggestion.Name,
				BaseAmount: suggestion.BaseAmount,
				Unit:       suggestion.Unit,
				Category:   suggestion.Category,
				PerPerson:  suggestion.PerPerson,
			}

			// Removal and append land in one write so the document never
			// shows a half-applied acceptance.
			return bson.M{
				"item_suggestions": remaining,
				"shopping_list":    append(meetup.ShoppingList, item),
			}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "suggestion accepted", "item": item})
	}
}

// ---------------- REJECT ----------------
func RejectSuggestion(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		suggestionID := c.Param("suggestionId")

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "only the host can reject suggestions"}
			}

			_, remaining, reqErr := takeSuggestion(meetup.ItemSuggestions, suggestionID)
			if reqErr != nil {
				return nil, reqErr
			}
			return bson.M{"item_suggestions": remaining}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "suggestion rejected"})
	}
}

// takeSuggestion splits the list into the matching suggestion and the rest.
func takeSuggestion(suggestions []models.ItemSuggestion, id string) (*models.ItemSuggestion, []models.ItemSuggestion, *requestError) {
	var found *models.ItemSuggestion
	remaining := make([]models.ItemSuggestion, 0, len(suggestions))
	for i := range suggestions {
		if suggestions[i].ID == id {
			found = &suggestions[i]
			continue
		}
		remaining = append(remaining, suggestions[i])
	}
	if found == nil {
		return nil, nil, notFound("suggestion not found")
	}
	return found, remaining, nil
}
