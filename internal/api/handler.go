package api

import (
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/logger"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	assignments contract.AssignmentService
	placement   contract.PlacementService
	bags        contract.BagService
	view        contract.ViewService
	log         logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(assignments contract.AssignmentService, placement contract.PlacementService, bags contract.BagService, view contract.ViewService, log logger.Logger) *Handler {
	return &Handler{
		assignments: assignments,
		placement:   placement,
		bags:        bags,
		view:        view,
		log:         log,
	}
}
