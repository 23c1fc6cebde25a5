package handlers

import (
	"time"

	"weekend-planner/domain"
	"weekend-planner/internal/api/presenters"
	"weekend-planner/pkg/catalog"
	"weekend-planner/pkg/countdown"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetLocations(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
		GetFoodMoods(c *fiber.Ctx) error
		GetFeelings(c *fiber.Ctx) error
		GetChecklistItems(c *fiber.Ctx) error
		SuggestChecklistItems(c *fiber.Ctx) error
		GetCountdown(c *fiber.Ctx) error
	}

	catalogHandler struct {
		validator       *validator.Validate
		countdownTarget time.Time
	}
)

func NewCatalogHandler(validator *validator.Validate, countdownTarget time.Time) CatalogHandler {
	return &catalogHandler{
		validator:       validator,
		countdownTarget: countdownTarget,
	}
}

func (h *catalogHandler) GetLocations(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, catalog.Locations, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetCuisines(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, catalog.Cuisines, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetFoodMoods(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, catalog.FoodMoods, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetFeelings(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, catalog.Feelings, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetChecklistItems(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, catalog.DefaultChecklistItems, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) SuggestChecklistItems(c *fiber.Ctx) error {
	req := new(domain.ChecklistSuggestionsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestions, err)
	}

	suggestions := catalog.SuggestChecklistItems(req.SelectedLocations, req.ExistingItemIDs)
	return presenters.SuccessResponse(c, suggestions, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *catalogHandler) GetCountdown(c *fiber.Ctx) error {
	breakdown := countdown.Until(h.countdownTarget, time.Now())
	return presenters.SuccessResponse(c, fiber.Map{
		"target":    h.countdownTarget,
		"countdown": breakdown,
	}, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}
