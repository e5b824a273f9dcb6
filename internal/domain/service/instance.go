package service

import (
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/logger"
)

type Instance struct {
	Assignment *assignmentService
	Placement  *placementService
	Bags       *bagService
	View       *viewService
}

func NewInstance(dm contract.DataManager, directory contract.CrewDirectory, trucks []string, log logger.Logger) *Instance {
	return &Instance{
		Assignment: newAssignmentService(dm, log),
		Placement:  newPlacementService(dm, log),
		Bags:       newBagService(dm, log),
		View:       newViewService(dm, directory, trucks, log),
	}
}
