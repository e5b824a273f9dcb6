package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
)

func filterFromQuery(c *gin.Context) contract.Filter {
	return contract.Filter{
		Truck:       strings.TrimSpace(c.Query("truck")),
		Salesperson: strings.TrimSpace(c.Query("salesperson")),
		Search:      strings.TrimSpace(c.Query("q")),
	}
}

// GetWeek handles GET /api/weeks/:key. The key may also be a day, which
// selects the ISO week containing it.
func (h *Handler) GetWeek(c *gin.Context) {
	monday, err := calendar.ParseDayOrWeek(c.Param("key"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	board, err := h.view.Week(c.Request.Context(), calendar.ISOWeekKey(monday), filterFromQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetMonth handles GET /api/months/:year/:month.
func (h *Handler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	board, err := h.view.Month(c.Request.Context(), year, time.Month(month), filterFromQuery(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

type holidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Eve  bool   `json:"eve"`
}

// GetHolidays handles GET /api/holidays/:year.
func (h *Handler) GetHolidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1583 || year > 9999 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	holidays := calendar.SwedishHolidays(year)
	response := make([]holidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		response = append(response, holidayResponse{Date: calendar.FormatDay(hd.Date), Name: hd.Name, Eve: hd.Eve})
	}
	c.JSON(http.StatusOK, response)
}

// GetTrucks handles GET /api/trucks.
func (h *Handler) GetTrucks(c *gin.Context) {
	c.JSON(http.StatusOK, h.view.Trucks())
}

// GetCrew handles GET /api/trucks/:truck/crew?day=YYYY-MM-DD. Without a day
// it answers for today.
func (h *Handler) GetCrew(c *gin.Context) {
	day := calendar.Truncate(time.Now())
	if raw := c.Query("day"); raw != "" {
		parsed, err := calendar.ParseDay(raw)
		if err != nil {
			h.respondError(c, err)
			return
		}
		day = parsed
	}

	truck := c.Param("truck")
	crew, err := h.view.Crew(c.Request.Context(), truck, day)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"truck": truck, "day": calendar.FormatDay(day), "crew": crew})
}
