package selection

import (
	"testing"

	"weekend-planner/entities"

	"github.com/stretchr/testify/assert"
)

func entries(n int) []entities.LocationEntry {
	list := make([]entities.LocationEntry, n)
	for i := range list {
		list[i] = entities.LocationEntry{LocationID: "park_walk", Time: "09:00"}
	}
	return list
}

func TestClassifyPlanDay(t *testing.T) {
	tests := []struct {
		name     string
		saturday int
		sunday   int
		expected *string
	}{
		{name: "saturday only", saturday: 1, sunday: 0, expected: strPtr(PlanDaySaturday)},
		{name: "sunday only", saturday: 0, sunday: 2, expected: strPtr(PlanDaySunday)},
		{name: "both days", saturday: 3, sunday: 1, expected: strPtr(PlanDayBoth)},
		{name: "no days", saturday: 0, sunday: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPlanDay(entities.SelectedLocations{
				Saturday: entries(tt.saturday),
				Sunday:   entries(tt.sunday),
			})
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func TestOverlappingDays(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected []string
	}{
		{name: "saturday vs saturday", a: PlanDaySaturday, b: PlanDaySaturday, expected: []string{PlanDaySaturday}},
		{name: "saturday vs sunday", a: PlanDaySaturday, b: PlanDaySunday, expected: nil},
		{name: "saturday vs both", a: PlanDaySaturday, b: PlanDayBoth, expected: []string{PlanDaySaturday}},
		{name: "both vs sunday", a: PlanDayBoth, b: PlanDaySunday, expected: []string{PlanDaySunday}},
		{name: "both vs both", a: PlanDayBoth, b: PlanDayBoth, expected: []string{PlanDaySaturday, PlanDaySunday}},
		{name: "sunday vs sunday", a: PlanDaySunday, b: PlanDaySunday, expected: []string{PlanDaySunday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overlappingDays(tt.a, tt.b))
		})
	}
}

func strPtr(s string) *string {
	return &s
}
