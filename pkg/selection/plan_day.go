package selection

import "weekend-planner/entities"

const (
	PlanDaySaturday = "saturday"
	PlanDaySunday   = "sunday"
	PlanDayBoth     = "both"
)

// ClassifyPlanDay derives the plan_day tag from the per-day itineraries.
// It is recomputed on every create/update, callers never set it directly.
func ClassifyPlanDay(locations entities.SelectedLocations) *string {
	hasSaturday := len(locations.Saturday) > 0
	hasSunday := len(locations.Sunday) > 0

	var planDay string
	switch {
	case hasSaturday && hasSunday:
		planDay = PlanDayBoth
	case hasSaturday:
		planDay = PlanDaySaturday
	case hasSunday:
		planDay = PlanDaySunday
	default:
		return nil
	}
	return &planDay
}

// impliedDays maps a plan_day tag to the calendar days it occupies.
func impliedDays(planDay string) []string {
	if planDay == PlanDayBoth {
		return []string{PlanDaySaturday, PlanDaySunday}
	}
	return []string{planDay}
}

// overlappingDays returns the days both tags claim. Two plans conflict when
// this is non-empty; "both" overlaps everything non-nil, "saturday" and
// "sunday" only each other via "both". This is set intersection, not string
// equality.
func overlappingDays(a, b string) []string {
	bDays := make(map[string]bool)
	for _, day := range impliedDays(b) {
		bDays[day] = true
	}

	var overlap []string
	for _, day := range impliedDays(a) {
		if bDays[day] {
			overlap = append(overlap, day)
		}
	}
	return overlap
}
