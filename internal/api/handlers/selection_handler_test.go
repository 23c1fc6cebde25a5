package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"weekend-planner/domain"
	"weekend-planner/entities"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSelectionService returns canned results so the handler's status
// mapping and envelope can be exercised without a database.
type stubSelectionService struct {
	createErr error
	getErr    error
	deleteErr error
	response  domain.SelectionResponse
}

func (s *stubSelectionService) CreateSelection(_ context.Context, _ domain.UpsertSelectionRequest) (domain.SelectionResponse, error) {
	return s.response, s.createErr
}

func (s *stubSelectionService) UpdateSelection(_ context.Context, _ string, _ domain.UpsertSelectionRequest) (domain.SelectionResponse, error) {
	return s.response, s.createErr
}

func (s *stubSelectionService) DeleteSelection(_ context.Context, _ string) error {
	return s.deleteErr
}

func (s *stubSelectionService) GetSelectionByID(_ context.Context, _ string) (domain.SelectionResponse, error) {
	return s.response, s.getErr
}

func (s *stubSelectionService) GetSelections(_ context.Context) ([]domain.SelectionResponse, error) {
	return []domain.SelectionResponse{s.response}, nil
}

func newTestApp(service *stubSelectionService) *fiber.App {
	app := fiber.New()
	handler := NewSelectionHandler(service, validator.New())

	selections := app.Group("/api/v1/selections")
	selections.Post("", handler.CreateSelection)
	selections.Get("", handler.GetSelections)
	selections.Get("/:id", handler.GetSelection)
	selections.Put("/:id", handler.UpdateSelection)
	selections.Delete("/:id", handler.DeleteSelection)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestCreateSelection_Created(t *testing.T) {
	planDay := "saturday"
	app := newTestApp(&stubSelectionService{response: domain.SelectionResponse{
		ID:      "11111111-1111-1111-1111-111111111111",
		PlanDay: &planDay,
	}})

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/selections", fiber.Map{
		"selectedLocations": entities.SelectedLocations{
			Saturday: []entities.LocationEntry{{LocationID: "park_walk", Time: "09:00"}},
		},
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "saturday", data["plan_day"])
}

func TestCreateSelection_MissingLocationsRejected(t *testing.T) {
	app := newTestApp(&stubSelectionService{})

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/selections", fiber.Map{
		"selectedMoods": []string{"casual"},
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["error"], "selectedLocations")
}

func TestCreateSelection_ConflictIs400(t *testing.T) {
	app := newTestApp(&stubSelectionService{createErr: domain.ErrPlanDayConflict})

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/selections", fiber.Map{
		"selectedLocations": entities.SelectedLocations{
			Saturday: []entities.LocationEntry{{LocationID: "cinema", Time: "19:00"}},
		},
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}

func TestGetSelection_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		getErr error
		want   int
	}{
		{name: "bad id", getErr: domain.ErrInvalidSelectionID, want: fiber.StatusBadRequest},
		{name: "not found", getErr: domain.ErrSelectionNotFound, want: fiber.StatusNotFound},
		{name: "infrastructure", getErr: assert.AnError, want: fiber.StatusInternalServerError},
		{name: "ok", getErr: nil, want: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubSelectionService{getErr: tt.getErr})
			resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/selections/some-id", nil)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestDeleteSelection_NotFound(t *testing.T) {
	app := newTestApp(&stubSelectionService{deleteErr: domain.ErrSelectionNotFound})

	resp, body := doJSON(t, app, http.MethodDelete, "/api/v1/selections/11111111-1111-1111-1111-111111111111", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
}
