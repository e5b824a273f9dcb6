package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diegoclair/crew-planner/internal/domain"
)

// respondError maps the domain error taxonomy onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	if pe, ok := domain.AsParseError(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "input": pe.Input, "message": pe.Reason})
		return
	}
	if ve, ok := domain.AsValidationError(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation", "field": ve.Field, "message": ve.Message})
		return
	}
	if oc, ok := domain.AsOverlapConflict(err); ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "overlap", "truckId": oc.TruckID, "count": oc.Count, "existing": oc.Existing})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	if pe, ok := domain.AsPersistenceError(err); ok {
		h.log.Errorf("%s failed: %v", pe.Op, err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage_unavailable", "op": pe.Op, "retryable": true})
		return
	}

	h.log.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal"})
}

func invalidRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
