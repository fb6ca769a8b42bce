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
	utils "github.com/phillip/meetup-planner-go/utils"
)

// ---------------- ADD ----------------
func AddCost(cfg *config.Config) gin.HandlerFunc {
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
			Items []struct {
				Name       string   `json:"name" binding:"required"`
				Amount     float64  `json:"amount" binding:"required"`
				SharedWith []string `json:"shared_with"`
			} `json:"items" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.CostItem, 0, len(input.Items))
		for _, in := range input.Items {
			if in.Name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
				return
			}
			if in.Amount <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "item amount must be greater than 0"})
				return
			}
			items = append(items, models.CostItem{
				Name:       in.Name,
				Amount:     in.Amount,
				SharedWith: in.SharedWith,
			})
		}

		cost := models.Cost{
			ID:                  uuid.NewString(),
			ParticipantID:       userID,
			ParticipantUsername: c.GetString("username"),
			Items:               items,
			// Total is computed here once and trusted on every later read.
			Total:   planner.CostTotal(items),
			AddedAt: time.Now(),
		}

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if meetup.HostID != userID && !hasParticipant(meetup, userID) {
				return nil, &requestError{status: http.StatusForbidden, msg: "join the meetup before adding costs"}
			}
			return bson.M{"costs": append(meetup.Costs, cost)}, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusCreated, cost)
	}
}

func hasParticipant(meetup *models.Meetup, userID primitive.ObjectID) bool {
	for _, p := range meetup.Participants {
		if p.ParticipantID == userID {
			return true
		}
	}
	return false
}

// ---------------- RECEIPT UPLOAD ----------------
func UploadCostReceipt(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}
		costID := c.Param("costId")

		fileHeader, err := c.FormFile("receipt")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		url, err := utils.UploadReceiptToCloudinary(file, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "receipt upload failed", "details": err.Error()})
			return
		}

		var replaced string
		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			costs := make([]models.Cost, len(meetup.Costs))
			copy(costs, meetup.Costs)

			found := false
			for i := range costs {
				if costs[i].ID != costID {
					continue
				}
				if costs[i].ParticipantID.Hex() != c.GetString("user_id") && !isHost(c, meetup) {
					return nil, &requestError{status: http.StatusForbidden, msg: "cannot attach a receipt to another participant's cost"}
				}
				replaced = costs[i].ReceiptURL
				costs[i].ReceiptURL = url
				found = true
			}
			if !found {
				return nil, notFound("cost not found")
			}
			return bson.M{"costs": costs}, nil
		})
		if updated == nil {
			// The upload already happened; clean it up on failure.
			utils.DeleteFromCloudinary(url)
			return
		}

		if replaced != "" {
			utils.DeleteFromCloudinary(replaced)
		}

		c.JSON(http.StatusOK, gin.H{"message": "receipt uploaded", "receipt_url": url})
	}
}

// ---------------- SPLIT ----------------
func GetCostSplit(cfg *config.Config) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, planner.SplitCosts(meetup.Costs, planner.HeadCount(meetup)))
	}
}
