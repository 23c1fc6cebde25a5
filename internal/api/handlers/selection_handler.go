package handlers

import (
	"errors"

	"weekend-planner/domain"
	"weekend-planner/internal/api/presenters"
	"weekend-planner/pkg/selection"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SelectionHandler interface {
		CreateSelection(c *fiber.Ctx) error
		UpdateSelection(c *fiber.Ctx) error
		DeleteSelection(c *fiber.Ctx) error
		GetSelection(c *fiber.Ctx) error
		GetSelections(c *fiber.Ctx) error
	}

	selectionHandler struct {
		selectionService selection.SelectionService
		validator        *validator.Validate
	}
)

func NewSelectionHandler(selectionService selection.SelectionService, validator *validator.Validate) SelectionHandler {
	return &selectionHandler{
		selectionService: selectionService,
		validator:        validator,
	}
}

func (h *selectionHandler) CreateSelection(c *fiber.Ctx) error {
	req := new(domain.UpsertSelectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSelection, domain.ErrLocationsRequired)
	}

	res, err := h.selectionService.CreateSelection(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, selectionErrorStatus(err), domain.MessageFailedCreateSelection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSelection)
}

func (h *selectionHandler) UpdateSelection(c *fiber.Ctx) error {
	selectionID := c.Params("id")
	req := new(domain.UpsertSelectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSelection, domain.ErrLocationsRequired)
	}

	res, err := h.selectionService.UpdateSelection(c.Context(), selectionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, selectionErrorStatus(err), domain.MessageFailedUpdateSelection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSelection)
}

func (h *selectionHandler) DeleteSelection(c *fiber.Ctx) error {
	selectionID := c.Params("id")

	if err := h.selectionService.DeleteSelection(c.Context(), selectionID); err != nil {
		return presenters.ErrorResponse(c, selectionErrorStatus(err), domain.MessageFailedDeleteSelection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSelection)
}

func (h *selectionHandler) GetSelection(c *fiber.Ctx) error {
	selectionID := c.Params("id")

	res, err := h.selectionService.GetSelectionByID(c.Context(), selectionID)
	if err != nil {
		return presenters.ErrorResponse(c, selectionErrorStatus(err), domain.MessageFailedGetSelection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSelection)
}

func (h *selectionHandler) GetSelections(c *fiber.Ctx) error {
	res, err := h.selectionService.GetSelections(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSelections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSelections)
}

// selectionErrorStatus keeps the three failure classes distinct on the wire:
// validation 400, missing row 404, anything else is infrastructure 500.
func selectionErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSelectionID),
		errors.Is(err, domain.ErrLocationsRequired),
		errors.Is(err, domain.ErrPlanDayConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrSelectionNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
