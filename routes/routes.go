package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	config "github.com/phillip/meetup-planner-go/config"
	controllers "github.com/phillip/meetup-planner-go/controllers"
	middleware "github.com/phillip/meetup-planner-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// public
	r.POST("/auth/register", controllers.Register(cfg))
	r.POST("/auth/login", controllers.Login(cfg))
	r.POST("/auth/refresh", controllers.RefreshToken(cfg))

	// ops
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// protected
	auth := middleware.AuthMiddleware(cfg)

	meetups := r.Group("/meetups")
	meetups.Use(auth)
	{
		meetups.POST("", controllers.CreateMeetup(cfg))
		meetups.GET("/find", controllers.FindMeetupByCode(cfg))
		meetups.GET("/user/:userId", controllers.ListUserMeetups(cfg))
		meetups.GET("/:id", controllers.GetMeetup(cfg))
		meetups.PATCH("/:id", controllers.UpdateMeetup(cfg))
		meetups.DELETE("/:id", controllers.DeleteMeetup(cfg))

		// participation
		meetups.POST("/:id/join", controllers.JoinMeetup(cfg))
		meetups.POST("/:id/leave", controllers.LeaveMeetup(cfg))
		meetups.PUT("/:id/participants/:participantId", controllers.UpdateParticipation(cfg))
		meetups.DELETE("/:id/participants/:participantId", controllers.RemoveParticipant(cfg))

		// date polling
		meetups.POST("/:id/availability", controllers.SubmitAvailability(cfg))
		meetups.GET("/:id/poll", controllers.GetDatePoll(cfg))
		meetups.POST("/:id/finalize-date", controllers.FinalizeDate(cfg))

		// shopping list + suggestions
		meetups.GET("/:id/shopping-list", controllers.GetShoppingList(cfg))
		meetups.POST("/:id/item-suggestions", controllers.SuggestItem(cfg))
		meetups.POST("/:id/item-suggestions/:suggestionId/accept", controllers.AcceptSuggestion(cfg))
		meetups.POST("/:id/item-suggestions/:suggestionId/reject", controllers.RejectSuggestion(cfg))

		// costs
		meetups.POST("/:id/costs", controllers.AddCost(cfg))
		meetups.POST("/:id/costs/:costId/receipt", controllers.UploadCostReceipt(cfg))
		meetups.GET("/:id/costs/split", controllers.GetCostSplit(cfg))
	}
}
