package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/meetup-planner-go/config"
	models "github.com/phillip/meetup-planner-go/models"
	planner "github.com/phillip/meetup-planner-go/planner"
	utils "github.com/phillip/meetup-planner-go/utils"
)

// codeRetries bounds the share-code generation loop; each retry only happens
// on a duplicate-key collision against the unique index.
const codeRetries = 5

type dateOptionInput struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

type shoppingItemInput struct {
	Name       string  `json:"name" binding:"required"`
	BaseAmount float64 `json:"base_amount" binding:"required"`
	Unit       string  `json:"unit" binding:"required"`
	Category   string  `json:"category"`
	PerPerson  bool    `json:"per_person"`
}

func validCategory(category string) bool {
	switch category {
	case models.CategoryFood, models.CategoryDrink, models.CategoryAlcohol, models.CategoryOther:
		return true
	}
	return false
}

func buildShoppingItems(inputs []shoppingItemInput) ([]models.ShoppingItem, *requestError) {
	items := make([]models.ShoppingItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, badRequest("item name is required")
		}
		if in.BaseAmount <= 0 {
			return nil, badRequest("item base amount must be greater than 0")
		}
		category := in.Category
		if category == "" {
			category = models.CategoryOther
		}
		if !validCategory(category) {
			return nil, badRequest("invalid item category")
		}
		items = append(items, models.ShoppingItem{
			ID:         uuid.NewString(),
			Name:       in.Name,
			BaseAmount: in.BaseAmount,
			Unit:       in.Unit,
			Category:   category,
			PerPerson:  in.PerPerson,
		})
	}
	return items, nil
}

// ---------------- CREATE ----------------
func CreateMeetup(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Authenticated host ---
		hostID, ok := requesterID(c)
		if !ok {
			return
		}

		var input struct {
			Title         string              `json:"title" binding:"required"`
			Description   string              `json:"description"`
			Location      string              `json:"location"`
			Date          string              `json:"date"`
			Time          string              `json:"time"`
			EndDate       string              `json:"end_date"`
			EndTime       string              `json:"end_time"`
			HasAlcohol    bool                `json:"has_alcohol"`
			ShoppingList  []shoppingItemInput `json:"shopping_list"`
			PossibleDates []dateOptionInput   `json:"possible_dates"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		shoppingList, reqErr := buildShoppingItems(input.ShoppingList)
		if reqErr != nil {
			c.JSON(reqErr.status, gin.H{"error": reqErr.msg})
			return
		}

		now := time.Now()
		meetup := models.Meetup{
			ID:                 primitive.NewObjectID(),
			Title:              input.Title,
			Description:        input.Description,
			Location:           input.Location,
			HostID:             hostID,
			HostUsername:       c.GetString("username"),
			HasAlcohol:         input.HasAlcohol,
			ShoppingList:       shoppingList,
			ItemSuggestions:    []models.ItemSuggestion{},
			Participants:       []models.Participant{},
			Costs:              []models.Cost{},
			DateAvailabilities: []models.DateAvailability{},
			CreatedAt:          now,
		}

		if len(input.PossibleDates) > 0 {
			// --- Polling mode: candidates carry the dates, the first one
			// becomes the provisional meetup date until finalization ---
			candidates := make([]models.MeetupDate, 0, len(input.PossibleDates))
			for _, opt := range input.PossibleDates {
				parsed, err := utils.ParseDate(opt.Date)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				if !utils.ValidClock(opt.Time) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "date option time must be HH:MM"})
					return
				}
				candidates = append(candidates, models.MeetupDate{
					ID:          uuid.NewString(),
					Date:        parsed,
					Time:        opt.Time,
					EndTime:     opt.EndTime,
					Description: opt.Description,
				})
			}

			meetup.UsesDatePolling = true
			meetup.DateFinalized = false
			meetup.PossibleDates = candidates
			meetup.Date = candidates[0].Date
			meetup.Time = candidates[0].Time
			meetup.EndTime = candidates[0].EndTime
		} else {
			// --- Single-date mode ---
			if input.Date == "" || input.Time == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "date and time are required"})
				return
			}
			parsed, err := utils.ParseDate(input.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !utils.ValidClock(input.Time) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
				return
			}
			meetup.Date = parsed
			meetup.Time = input.Time
			meetup.EndTime = input.EndTime

			if input.EndDate != "" {
				endDate, err := utils.ParseDate(input.EndDate)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				meetup.EndDate = &endDate
			}
		}

		col := meetupCollection(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// --- Generate share code, retry on collision ---
		inserted := false
		for attempt := 0; attempt < codeRetries; attempt++ {
			code, err := utils.GenerateMeetupCode()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate meetup code"})
				return
			}
			meetup.Code = code

			if _, err := col.InsertOne(ctx, meetup); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					continue
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create meetup"})
				return
			}
			inserted = true
			break
		}
		if !inserted {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not allocate a unique meetup code"})
			return
		}

		meetup.Status = planner.Status(&meetup, time.Now())
		c.JSON(http.StatusCreated, meetup)
	}
}

// ---------------- LIST (hosted + joined) ----------------
func ListUserMeetups(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		col := meetupCollection(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		now := time.Now()
		fetch := func(filter bson.M) ([]models.Meetup, error) {
			cursor, err := col.Find(ctx, filter)
			if err != nil {
				return nil, err
			}
			meetups := []models.Meetup{}
			if err := cursor.All(ctx, &meetups); err != nil {
				return nil, err
			}
			for i := range meetups {
				meetups[i].Status = planner.Status(&meetups[i], now)
			}
			return meetups, nil
		}

		hosted, err := fetch(bson.M{"host_id": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch meetups"})
			return
		}
		joined, err := fetch(bson.M{"participants.participant_id": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch meetups"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"hosted": hosted, "joined": joined})
	}
}

// ---------------- GET ----------------
func GetMeetup(cfg *config.Config) gin.HandlerFunc {
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

		lastModified := meetup.CreatedAt
		if meetup.UpdatedAt != nil {
			lastModified = *meetup.UpdatedAt
		}
		etag := utils.GenerateETag(meetup.ID, lastModified)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", lastModified.UTC().Format(http.TimeFormat))

		meetup.Status = planner.Status(meetup, time.Now())
		c.JSON(http.StatusOK, meetup)
	}
}

// ---------------- FIND BY CODE ----------------
func FindMeetupByCode(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var meetup models.Meetup
		err := meetupCollection(cfg).FindOne(ctx, bson.M{"code": code}).Decode(&meetup)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "meetup not found"})
			return
		}

		meetup.Status = planner.Status(&meetup, time.Now())
		c.JSON(http.StatusOK, meetup)
	}
}

// ---------------- UPDATE ----------------
func UpdateMeetup(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		meetupID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meetup id"})
			return
		}

		var input struct {
			Title        string              `json:"title"`
			Description  *string             `json:"description"`
			Location     *string             `json:"location"`
			Date         string              `json:"date"`
			Time         string              `json:"time"`
			EndDate      *string             `json:"end_date"`
			EndTime      *string             `json:"end_time"`
			HasAlcohol   *bool               `json:"has_alcohol"`
			ShoppingList []shoppingItemInput `json:"shopping_list"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated := applyMeetupUpdate(c, cfg, meetupID, func(meetup *models.Meetup) (bson.M, *requestError) {
			if !isHost(c, meetup) {
				return nil, &requestError{status: http.StatusForbidden, msg: "only the host can update the meetup"}
			}

			update := bson.M{}
			if input.Title != "" {
				update["title"] = input.Title
			}
			if input.Description != nil {
				update["description"] = *input.Description
			}
			if input.Location != nil {
				update["location"] = *input.Location
			}
			if input.Date != "" {
				parsed, err := utils.ParseDate(input.Date)
				if err != nil {
					return nil, badRequest(err.Error())
				}
				update["date"] = parsed
			}
			if input.Time != "" {
				if !utils.ValidClock(input.Time) {
					return nil, badRequest("time must be HH:MM")
				}
				update["time"] = input.Time
			}
			if input.EndDate != nil {
				if *input.EndDate == "" {
					update["end_date"] = nil
				} else {
					parsed, err := utils.ParseDate(*input.EndDate)
					if err != nil {
						return nil, badRequest(err.Error())
					}
					update["end_date"] = parsed
				}
			}
			if input.EndTime != nil {
				if *input.EndTime != "" && !utils.ValidClock(*input.EndTime) {
					return nil, badRequest("end time must be HH:MM")
				}
				update["end_time"] = *input.EndTime
			}
			if input.HasAlcohol != nil {
				update["has_alcohol"] = *input.HasAlcohol
			}
			if input.ShoppingList != nil {
				items, reqErr := buildShoppingItems(input.ShoppingList)
				if reqErr != nil {
					return nil, reqErr
				}
				update["shopping_list"] = items
			}

			if len(update) == 0 {
				return nil, badRequest("no fields to update")
			}
			return update, nil
		})
		if updated == nil {
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "meetup updated", "id": meetupID.Hex()})
	}
}

// ---------------- DELETE ----------------
func DeleteMeetup(cfg *config.Config) gin.HandlerFunc {
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
		if !isHost(c, meetup) {
			c.JSON(http.StatusForbidden, gin.H{"error": "only the host can delete the meetup"})
			return
		}

		res, err := meetupCollection(cfg).DeleteOne(ctx, bson.M{"_id": meetupID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete meetup"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "meetup not found"})
			return
		}

		// Orphaned receipt uploads go with the meetup.
		for _, cost := range meetup.Costs {
			if cost.ReceiptURL != "" {
				utils.DeleteFromCloudinary(cost.ReceiptURL)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "meetup deleted", "id": meetupID.Hex()})
	}
}
