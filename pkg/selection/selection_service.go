package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weekend-planner/domain"
	"weekend-planner/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SelectionService interface {
		CreateSelection(ctx context.Context, req domain.UpsertSelectionRequest) (domain.SelectionResponse, error)
		UpdateSelection(ctx context.Context, id string, req domain.UpsertSelectionRequest) (domain.SelectionResponse, error)
		DeleteSelection(ctx context.Context, id string) error
		GetSelectionByID(ctx context.Context, id string) (domain.SelectionResponse, error)
		GetSelections(ctx context.Context) ([]domain.SelectionResponse, error)
	}

	selectionService struct {
		selectionRepository SelectionRepository
	}
)

func NewSelectionService(selectionRepository SelectionRepository) SelectionService {
	return &selectionService{selectionRepository: selectionRepository}
}

func (s *selectionService) CreateSelection(ctx context.Context, req domain.UpsertSelectionRequest) (domain.SelectionResponse, error) {
	if req.SelectedLocations == nil {
		return domain.SelectionResponse{}, domain.ErrLocationsRequired
	}

	planDay := ClassifyPlanDay(*req.SelectedLocations)
	if err := s.checkDayConflict(ctx, planDay, ""); err != nil {
		return domain.SelectionResponse{}, err
	}

	selection := &entities.Selection{PlanDay: planDay}
	applyPayload(selection, req)

	// The pre-check above and this insert are not one atomic step; a
	// concurrent create could still slip in a colliding plan_day. Accepted
	// for a single-user deployment.
	if err := s.selectionRepository.CreateSelection(ctx, selection); err != nil {
		return domain.SelectionResponse{}, err
	}

	return toSelectionResponse(selection), nil
}

func (s *selectionService) UpdateSelection(ctx context.Context, id string, req domain.UpsertSelectionRequest) (domain.SelectionResponse, error) {
	if err := validateSelectionID(id); err != nil {
		return domain.SelectionResponse{}, err
	}
	if req.SelectedLocations == nil {
		return domain.SelectionResponse{}, domain.ErrLocationsRequired
	}

	selection, err := s.selectionRepository.GetSelectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SelectionResponse{}, domain.ErrSelectionNotFound
		}
		return domain.SelectionResponse{}, err
	}

	planDay := ClassifyPlanDay(*req.SelectedLocations)
	if err := s.checkDayConflict(ctx, planDay, id); err != nil {
		return domain.SelectionResponse{}, err
	}

	selection.PlanDay = planDay
	applyPayload(selection, req)

	if err := s.selectionRepository.UpdateSelection(ctx, selection); err != nil {
		return domain.SelectionResponse{}, err
	}

	return toSelectionResponse(selection), nil
}

func (s *selectionService) DeleteSelection(ctx context.Context, id string) error {
	if err := validateSelectionID(id); err != nil {
		return err
	}

	if err := s.selectionRepository.DeleteSelection(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSelectionNotFound
		}
		return err
	}
	return nil
}

func (s *selectionService) GetSelectionByID(ctx context.Context, id string) (domain.SelectionResponse, error) {
	if err := validateSelectionID(id); err != nil {
		return domain.SelectionResponse{}, err
	}

	selection, err := s.selectionRepository.GetSelectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SelectionResponse{}, domain.ErrSelectionNotFound
		}
		return domain.SelectionResponse{}, err
	}

	return toSelectionResponse(selection), nil
}

func (s *selectionService) GetSelections(ctx context.Context) ([]domain.SelectionResponse, error) {
	selections, err := s.selectionRepository.GetSelections(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SelectionResponse, 0, len(selections))
	for _, selection := range selections {
		result = append(result, toSelectionResponse(selection))
	}
	return result, nil
}

// checkDayConflict enforces the one-claim-per-day rule. excludeID is the row
// being updated, empty for creates.
func (s *selectionService) checkDayConflict(ctx context.Context, planDay *string, excludeID string) error {
	if planDay == nil {
		return nil
	}

	claims, err := s.selectionRepository.GetPlanDayClaims(ctx)
	if err != nil {
		return err
	}

	claimed := make(map[string]bool)
	for _, claim := range claims {
		if claim.PlanDay == nil || claim.ID == excludeID {
			continue
		}
		for _, day := range overlappingDays(*planDay, *claim.PlanDay) {
			claimed[day] = true
		}
	}

	if len(claimed) == 0 {
		return nil
	}

	days := make([]string, 0, len(claimed))
	for _, day := range []string{PlanDaySaturday, PlanDaySunday} {
		if claimed[day] {
			days = append(days, day)
		}
	}
	return fmt.Errorf("%w: %s already taken, delete the existing plan first", domain.ErrPlanDayConflict, strings.Join(days, " and "))
}

// validateSelectionID rejects malformed ids locally, before any datastore
// call. Only the canonical 36-character hyphenated form is accepted.
func validateSelectionID(id string) error {
	if len(id) != 36 {
		return domain.ErrInvalidSelectionID
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidSelectionID
	}
	return nil
}

// applyPayload copies the request onto the entity, defaulting every absent
// optional field so the stored row never carries nil collections.
func applyPayload(selection *entities.Selection, req domain.UpsertSelectionRequest) {
	selection.Feeling = req.Feeling

	selection.SelectedMoods = req.SelectedMoods
	if selection.SelectedMoods == nil {
		selection.SelectedMoods = []string{}
	}

	selection.SelectedCuisines = req.SelectedCuisines
	if selection.SelectedCuisines == nil {
		selection.SelectedCuisines = []string{}
	}

	selection.CustomIdeas = req.CustomIdeas
	if selection.CustomIdeas == nil {
		selection.CustomIdeas = []string{}
	}

	selection.SelectedLocations = *req.SelectedLocations
	if selection.SelectedLocations.Saturday == nil {
		selection.SelectedLocations.Saturday = []entities.LocationEntry{}
	}
	if selection.SelectedLocations.Sunday == nil {
		selection.SelectedLocations.Sunday = []entities.LocationEntry{}
	}

	if req.Checklist != nil {
		selection.Checklist = *req.Checklist
	}
	if selection.Checklist.Items == nil {
		selection.Checklist.Items = []entities.ChecklistItem{}
	}
	if selection.Checklist.CheckedItems == nil {
		selection.Checklist.CheckedItems = []string{}
	}
}

func toSelectionResponse(selection *entities.Selection) domain.SelectionResponse {
	return domain.SelectionResponse{
		ID:                selection.ID.String(),
		Feeling:           selection.Feeling,
		SelectedMoods:     selection.SelectedMoods,
		SelectedCuisines:  selection.SelectedCuisines,
		CustomIdeas:       selection.CustomIdeas,
		SelectedLocations: selection.SelectedLocations,
		Checklist:         selection.Checklist,
		PlanDay:           selection.PlanDay,
		CreatedAt:         selection.CreatedAt,
		UpdatedAt:         selection.UpdatedAt,
	}
}
