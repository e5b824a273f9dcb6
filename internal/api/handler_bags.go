package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProjectBags handles GET /api/projects/:id/bags. A project without any
// planned bag count answers with a null status.
func (h *Handler) GetProjectBags(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	status, err := h.bags.ProjectStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projectId": id, "status": status})
}

type bagReportRequest struct {
	Bags int    `json:"bags"`
	Note string `json:"note"`
}

// ReportBags handles POST /api/projects/:id/bags.
func (h *Handler) ReportBags(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var body bagReportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalidRequest(c)
		return
	}

	report, err := h.bags.ReportUsage(c.Request.Context(), id, body.Bags, body.Note)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
