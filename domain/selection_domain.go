package domain

import (
	"errors"
	"time"

	"weekend-planner/entities"
)

var (
	MessageSuccessCreateSelection = "selection created successfully"
	MessageSuccessUpdateSelection = "selection updated successfully"
	MessageSuccessDeleteSelection = "selection deleted successfully"
	MessageSuccessGetSelection    = "selection retrieved successfully"
	MessageSuccessGetSelections   = "selections retrieved successfully"

	MessageFailedCreateSelection = "failed to create selection"
	MessageFailedUpdateSelection = "failed to update selection"
	MessageFailedDeleteSelection = "failed to delete selection"
	MessageFailedGetSelection    = "failed to retrieve selection"
	MessageFailedGetSelections   = "failed to retrieve selections"

	ErrInvalidSelectionID = errors.New("invalid selection ID")
	ErrSelectionNotFound  = errors.New("selection not found")
	ErrLocationsRequired  = errors.New("selectedLocations is required")
	ErrPlanDayConflict    = errors.New("day already planned")
)

type (
	// UpsertSelectionRequest is the full payload for both create and update.
	// Updates replace the whole record, there are no partial patches.
	UpsertSelectionRequest struct {
		Feeling           *string                     `json:"feeling"`
		SelectedMoods     []string                    `json:"selectedMoods"`
		SelectedCuisines  []string                    `json:"selectedCuisines"`
		CustomIdeas       []string                    `json:"customIdeas"`
		SelectedLocations *entities.SelectedLocations `json:"selectedLocations" validate:"required"`
		Checklist         *entities.Checklist         `json:"checklist"`
	}

	SelectionResponse struct {
		ID                string                     `json:"id"`
		Feeling           *string                    `json:"feeling"`
		SelectedMoods     []string                   `json:"selected_moods"`
		SelectedCuisines  []string                   `json:"selected_cuisines"`
		CustomIdeas       []string                   `json:"custom_ideas"`
		SelectedLocations entities.SelectedLocations `json:"selected_locations"`
		Checklist         entities.Checklist         `json:"checklist"`
		PlanDay           *string                    `json:"plan_day"`
		CreatedAt         time.Time                  `json:"created_at"`
		UpdatedAt         time.Time                  `json:"updated_at"`
	}

	// PlanDayClaim is the (id, plan_day) projection the conflict checker
	// works on; fetching full rows just to test day overlap would be waste.
	PlanDayClaim struct {
		ID      string  `json:"id"`
		PlanDay *string `json:"plan_day"`
	}
)
