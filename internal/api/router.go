package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/diegoclair/crew-planner/internal/mw"
)

// RouterOptions tunes the router's middleware.
type RouterOptions struct {
	RateLimit rate.Limit
	Burst     int
	// SlackCommands serves POST /slack/commands when set.
	SlackCommands http.HandlerFunc
}

// NewRouter creates and configures a new Gin router.
func NewRouter(handler *Handler, opts RouterOptions, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if opts.SlackCommands != nil {
		r.POST("/slack/commands", gin.WrapF(opts.SlackCommands))
	}

	// holidays are a pure function of the year
	holidayCache := mw.Cache(cache.New(24*time.Hour, time.Hour), 24*time.Hour)

	api := r.Group("/api")
	api.Use(mw.RateLimiter(opts.RateLimit, opts.Burst))
	{
		api.GET("/weeks/:key", handler.GetWeek)
		api.GET("/months/:year/:month", handler.GetMonth)
		api.GET("/holidays/:year", holidayCache, handler.GetHolidays)
		api.GET("/trucks", handler.GetTrucks)
		api.GET("/trucks/:truck/crew", handler.GetCrew)

		api.POST("/assignments/probe", handler.ProbeAssignment)
		api.POST("/assignments", handler.CreateAssignment)
		api.POST("/assignments/:id/copy", handler.CopyAssignment)
		api.DELETE("/assignments/:id", handler.DeleteAssignment)

		api.POST("/segments", handler.PlaceSegment)
		api.POST("/segments/span", handler.PlaceSpan)
		api.PATCH("/segments/:id/move", handler.MoveSegment)
		api.PATCH("/segments/:id", handler.UpdateSegment)
		api.DELETE("/segments/:id", handler.UnplaceSegment)
		api.PATCH("/spans/:segmentId/move", handler.MoveSpan)
		api.DELETE("/spans/:segmentId", handler.UnplaceSpan)
		api.PUT("/lanes/order", handler.ReorderLane)

		api.GET("/projects/:id/bags", handler.GetProjectBags)
		api.POST("/projects/:id/bags", handler.ReportBags)
	}

	return r
}
