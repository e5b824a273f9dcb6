package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

type assignmentRequest struct {
	TruckID   string `json:"truckId"`
	StartDay  string `json:"startDay"`
	EndDay    string `json:"endDay"`
	Team1ID   *int64 `json:"team1Id"`
	Team2ID   *int64 `json:"team2Id"`
	Team1Name string `json:"teamMember1Name"`
	Team2Name string `json:"teamMember2Name"`
	Replace   bool   `json:"replace"`
}

func (r assignmentRequest) toContract() (contract.AssignmentRequest, error) {
	start, err := calendar.ParseDay(r.StartDay)
	if err != nil {
		return contract.AssignmentRequest{}, err
	}
	end, err := calendar.ParseDay(r.EndDay)
	if err != nil {
		return contract.AssignmentRequest{}, err
	}
	return contract.AssignmentRequest{
		TruckID:   r.TruckID,
		StartDay:  start,
		EndDay:    end,
		Team1ID:   r.Team1ID,
		Team2ID:   r.Team2ID,
		Team1Name: r.Team1Name,
		Team2Name: r.Team2Name,
	}, nil
}

type assignmentResponse struct {
	*entity.TruckAssignment
	StartDay string `json:"startDay"`
	EndDay   string `json:"endDay"`
}

func newAssignmentResponse(a *entity.TruckAssignment) assignmentResponse {
	return assignmentResponse{
		TruckAssignment: a,
		StartDay:        calendar.FormatDay(a.StartDay),
		EndDay:          calendar.FormatDay(a.EndDay),
	}
}

type replaceResponse struct {
	Assignment assignmentResponse   `json:"assignment"`
	Superseded []assignmentResponse `json:"superseded"`
}

func newReplaceResponse(result *contract.ReplaceResult) replaceResponse {
	resp := replaceResponse{
		Assignment: newAssignmentResponse(result.Assignment),
		Superseded: make([]assignmentResponse, 0, len(result.Superseded)),
	}
	for _, a := range result.Superseded {
		resp.Superseded = append(resp.Superseded, newAssignmentResponse(a))
	}
	return resp
}

// ProbeAssignment handles POST /api/assignments/probe. It never writes; the
// client uses the count to ask the planner before replacing.
func (h *Handler) ProbeAssignment(c *gin.Context) {
	var body assignmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	req, err := body.toContract()
	if err != nil {
		h.respondError(c, err)
		return
	}

	count, err := h.assignments.ProbeOverlap(c.Request.Context(), req)
	if oc, ok := domain.AsOverlapConflict(err); ok {
		c.JSON(http.StatusOK, gin.H{"overlapCount": oc.Count, "existing": oc.Existing})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overlapCount": count, "existing": []int64{}})
}

// CreateAssignment handles POST /api/assignments. Without "replace" an
// overlapping request answers 409 with the overlap count.
func (h *Handler) CreateAssignment(c *gin.Context) {
	var body assignmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}
	req, err := body.toContract()
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.assignments.CreateOrReplace(c.Request.Context(), req, body.Replace)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newReplaceResponse(result))
}

type copyRequest struct {
	Replace bool `json:"replace"`
}

// CopyAssignment handles POST /api/assignments/:id/copy, duplicating the
// assignment one week later.
func (h *Handler) CopyAssignment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body copyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			invalidRequest(c)
			return
		}
	}

	result, err := h.assignments.CopyToNextWeek(c.Request.Context(), id, body.Replace)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newReplaceResponse(result))
}

// DeleteAssignment handles DELETE /api/assignments/:id.
func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.assignments.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
