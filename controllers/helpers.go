package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/meetup-planner-go/config"
	models "github.com/phillip/meetup-planner-go/models"
)

// updateRetries bounds the optimistic-concurrency loop. Concurrent writers
// to the same meetup document are rare; three attempts is plenty.
const updateRetries = 3

func meetupCollection(cfg *config.Config) *mongo.Collection {
	return cfg.MongoClient.Database(cfg.DBName).Collection("meetups")
}

func userCollection(cfg *config.Config) *mongo.Collection {
	return cfg.MongoClient.Database(cfg.DBName).Collection("users")
}

func fetchMeetup(ctx context.Context, cfg *config.Config, id primitive.ObjectID) (*models.Meetup, error) {
	var meetup models.Meetup
	err := meetupCollection(cfg).FindOne(ctx, bson.M{"_id": id}).Decode(&meetup)
	if err != nil {
		return nil, err
	}
	return &meetup, nil
}

// requestError lets a mutation callback pick the client-facing status.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: msg}
}

func notFound(msg string) *requestError {
	return &requestError{status: http.StatusNotFound, msg: msg}
}

func conflict(msg string) *requestError {
	return &requestError{status: http.StatusConflict, msg: msg}
}

// applyMeetupUpdate runs a read-modify-write loop against one meetup
// document. mutate inspects the current snapshot and returns the fields to
// $set; the write only lands if the document version is unchanged since the
// read, otherwise the loop re-reads and tries again. Responds and returns
// nil on any failure; returns the snapshot the successful write was based on
// otherwise.
func applyMeetupUpdate(c *gin.Context, cfg *config.Config, id primitive.ObjectID, mutate func(*models.Meetup) (bson.M, *requestError)) *models.Meetup {
	col := meetupCollection(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for attempt := 0; attempt < updateRetries; attempt++ {
		var meetup models.Meetup
		if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&meetup); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "meetup not found"})
			return nil
		}

		update, reqErr := mutate(&meetup)
		if reqErr != nil {
			c.JSON(reqErr.status, gin.H{"error": reqErr.msg})
			return nil
		}
		update["updated_at"] = time.Now()

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": id, "version": meetup.Version},
			bson.M{"$set": update, "$inc": bson.M{"version": 1}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update meetup"})
			return nil
		}
		if res.MatchedCount == 1 {
			return &meetup
		}
		// Version moved under us; re-read and retry.
	}

	c.JSON(http.StatusConflict, gin.H{"error": "meetup was modified concurrently, please retry"})
	return nil
}

// isHost reports whether the requester owns the meetup; admins pass too.
func isHost(c *gin.Context, meetup *models.Meetup) bool {
	return c.GetString("role") == "admin" || meetup.HostID.Hex() == c.GetString("user_id")
}

// requesterID returns the authenticated user's ObjectID.
func requesterID(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
		return primitive.NilObjectID, false
	}
	return oid, true
}
