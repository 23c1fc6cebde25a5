package catalog

import (
	"testing"

	"weekend-planner/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookups(t *testing.T) {
	location := GetLocationByID("park_walk")
	require.NotNil(t, location)
	assert.Equal(t, "outdoor", location.Category)

	cuisine := GetCuisineByID("japanese")
	require.NotNil(t, cuisine)
	assert.Equal(t, "Nhật Bản", cuisine.Name)

	mood := GetFoodMoodByID("casual")
	require.NotNil(t, mood)
	assert.Equal(t, "Thoải Mái & Tiện Lợi", mood.Label)
}

func TestLookups_MissIsNotAnError(t *testing.T) {
	assert.Nil(t, GetLocationByID("atlantis"))
	assert.Nil(t, GetCuisineByID("martian"))
	assert.Nil(t, GetFoodMoodByID(""))
}

func TestSuggestChecklistItems(t *testing.T) {
	tests := []struct {
		name     string
		selected []entities.LocationEntry
		existing []string
		wantIDs  []string
	}{
		{
			name:     "outdoor location suggests sunscreen and water",
			selected: []entities.LocationEntry{{LocationID: "park_walk", Time: "09:00"}},
			wantIDs:  []string{"sunscreen", "water"},
		},
		{
			name:     "mall suggests comfortable shoes",
			selected: []entities.LocationEntry{{LocationID: "aeon_xuan_thuy", Time: "14:00"}},
			wantIDs:  []string{"comfortable_shoes"},
		},
		{
			name:     "entertainment suggests comfortable shoes",
			selected: []entities.LocationEntry{{LocationID: "cinema", Time: "19:00"}},
			wantIDs:  []string{"comfortable_shoes"},
		},
		{
			name:     "existing items are not repeated",
			selected: []entities.LocationEntry{{LocationID: "picnic", Time: "10:00"}},
			existing: []string{"sunscreen", "water"},
			wantIDs:  []string{},
		},
		{
			name: "duplicate locations suggest once",
			selected: []entities.LocationEntry{
				{LocationID: "park_walk", Time: "09:00"},
				{LocationID: "picnic", Time: "11:00"},
			},
			wantIDs: []string{"sunscreen", "water"},
		},
		{
			name:     "unknown location is skipped",
			selected: []entities.LocationEntry{{LocationID: "atlantis", Time: "09:00"}},
			wantIDs:  []string{},
		},
		{
			name:     "quiet cafe needs nothing extra",
			selected: []entities.LocationEntry{{LocationID: "quiet_cafe", Time: "15:00"}},
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestChecklistItems(tt.selected, tt.existing)
			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
