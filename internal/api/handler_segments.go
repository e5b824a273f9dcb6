package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

type placeRequest struct {
	ProjectID      int64   `json:"projectId"`
	Day            string  `json:"day"`
	Truck          *string `json:"truck"`
	JobType        string  `json:"jobType"`
	BagCount       *int    `json:"bagCount"`
	Color          *string `json:"color"`
	Days           int     `json:"days"`
	SkipNonWorking bool    `json:"skipNonWorking"`
}

func (r placeRequest) toContract() (contract.PlaceRequest, error) {
	day, err := calendar.ParseDay(r.Day)
	if err != nil {
		return contract.PlaceRequest{}, err
	}
	return contract.PlaceRequest{
		ProjectID: r.ProjectID,
		Day:       day,
		Truck:     r.Truck,
		JobType:   r.JobType,
		BagCount:  r.BagCount,
		Color:     r.Color,
	}, nil
}

type segmentResponse struct {
	*entity.ScheduledSegment
	Day string `json:"day"`
}

func newSegmentResponse(s *entity.ScheduledSegment) segmentResponse {
	return segmentResponse{ScheduledSegment: s, Day: calendar.FormatDay(s.Day)}
}

func newSegmentResponses(rows []*entity.ScheduledSegment) []segmentResponse {
	out := make([]segmentResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, newSegmentResponse(s))
	}
	return out
}

// PlaceSegment handles POST /api/segments.
func (h *Handler) PlaceSegment(c *gin.Context) {
	var body placeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	req, err := body.toContract()
	if err != nil {
		h.respondError(c, err)
		return
	}

	segment, err := h.placement.Place(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSegmentResponse(segment))
}

// PlaceSpan handles POST /api/segments/span, placing one logical segment over
// several days.
func (h *Handler) PlaceSpan(c *gin.Context) {
	var body placeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	req, err := body.toContract()
	if err != nil {
		h.respondError(c, err)
		return
	}

	rows, err := h.placement.PlaceSpan(c.Request.Context(), req, body.Days, body.SkipNonWorking)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSegmentResponses(rows))
}

// moveRequest targets a lane. A null or missing truck is the unassigned lane.
type moveRequest struct {
	Day   string  `json:"day"`
	Truck *string `json:"truck"`
}

// MoveSegment handles PATCH /api/segments/:id/move.
func (h *Handler) MoveSegment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body moveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	day, err := calendar.ParseDay(body.Day)
	if err != nil {
		h.respondError(c, err)
		return
	}

	segment, err := h.placement.Move(c.Request.Context(), id, day, body.Truck)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSegmentResponse(segment))
}

// MoveSpan handles PATCH /api/spans/:segmentId/move. Day is the new first day.
func (h *Handler) MoveSpan(c *gin.Context) {
	var body moveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	day, err := calendar.ParseDay(body.Day)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rows, err := h.placement.MoveSpan(c.Request.Context(), c.Param("segmentId"), day, body.Truck)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSegmentResponses(rows))
}

type updateRequest struct {
	JobType    *string `json:"jobType"`
	BagCount   *int    `json:"bagCount"`
	ClearBags  bool    `json:"clearBags"`
	Color      *string `json:"color"`
	ClearColor bool    `json:"clearColor"`
}

// UpdateSegment handles PATCH /api/segments/:id.
func (h *Handler) UpdateSegment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body updateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}

	segment, err := h.placement.Update(c.Request.Context(), id, contract.SegmentPatch{
		JobType:    body.JobType,
		BagCount:   body.BagCount,
		ClearBags:  body.ClearBags,
		Color:      body.Color,
		ClearColor: body.ClearColor,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSegmentResponse(segment))
}

type reorderRequest struct {
	Day   string  `json:"day"`
	Truck *string `json:"truck"`
	IDs   []int64 `json:"ids"`
}

// ReorderLane handles PUT /api/lanes/order.
func (h *Handler) ReorderLane(c *gin.Context) {
	var body reorderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	day, err := calendar.ParseDay(body.Day)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.placement.Reorder(c.Request.Context(), day, body.Truck, body.IDs); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnplaceSegment handles DELETE /api/segments/:id.
func (h *Handler) UnplaceSegment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.placement.Unplace(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnplaceSpan handles DELETE /api/spans/:segmentId.
func (h *Handler) UnplaceSpan(c *gin.Context) {
	if err := h.placement.UnplaceSpan(c.Request.Context(), c.Param("segmentId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
