package domain

import "weekend-planner/entities"

var (
	MessageSuccessGetCatalog = "catalog retrieved successfully"
	MessageFailedSuggestions = "failed to build checklist suggestions"
)

type (
	Location struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}

	Cuisine struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	}

	FoodMood struct {
		ID     string `json:"id"`
		Label  string `json:"label"`
		Flavor string `json:"flavor"`
	}

	Feeling struct {
		ID          string `json:"id"`
		Label       string `json:"label"`
		Description string `json:"description"`
	}

	ChecklistSuggestionsRequest struct {
		SelectedLocations []entities.LocationEntry `json:"selectedLocations"`
		ExistingItemIDs   []string                 `json:"existingItemIds"`
	}
)
