package entities

import (
	"github.com/google/uuid"
)

// Selection is the persisted weekend plan. At most one row may claim a given
// calendar day via PlanDay; the service layer enforces that before any write.
type Selection struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Feeling           *string           `json:"feeling"`
	SelectedMoods     []string          `gorm:"type:jsonb;serializer:json" json:"selected_moods"`
	SelectedCuisines  []string          `gorm:"type:jsonb;serializer:json" json:"selected_cuisines"`
	CustomIdeas       []string          `gorm:"type:jsonb;serializer:json" json:"custom_ideas"`
	SelectedLocations SelectedLocations `gorm:"type:jsonb;serializer:json" json:"selected_locations"`
	Checklist         Checklist         `gorm:"type:jsonb;serializer:json" json:"checklist"`
	PlanDay           *string           `gorm:"index" json:"plan_day"` // "saturday", "sunday", "both" or NULL

	Timestamp
}

// SelectedLocations holds the itinerary per day. Order within a day is the
// visit order, so these stay slices, not sets.
type SelectedLocations struct {
	Saturday []LocationEntry `json:"saturday"`
	Sunday   []LocationEntry `json:"sunday"`
}

type LocationEntry struct {
	LocationID string `json:"locationId"`
	Time       string `json:"time"`
}

type Checklist struct {
	Items        []ChecklistItem `json:"items"`
	CheckedItems []string        `json:"checkedItems"`
}

type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	IconType string `json:"iconType,omitempty"`
}
