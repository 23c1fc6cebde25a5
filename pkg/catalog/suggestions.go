package catalog

import "weekend-planner/entities"

// SuggestChecklistItems derives extra packing items from the chosen
// locations: anything outdoor asks for sunscreen and water, malls and
// entertainment venues for comfortable shoes. Items the caller already has
// (by id) are skipped, as are unknown location ids.
func SuggestChecklistItems(selected []entities.LocationEntry, existingIDs []string) []entities.ChecklistItem {
	have := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		have[id] = true
	}

	add := func(suggestions []entities.ChecklistItem, item entities.ChecklistItem) []entities.ChecklistItem {
		if have[item.ID] {
			return suggestions
		}
		have[item.ID] = true
		return append(suggestions, item)
	}

	suggestions := []entities.ChecklistItem{}
	for _, entry := range selected {
		location := GetLocationByID(entry.LocationID)
		if location == nil {
			continue
		}

		if location.Category == "outdoor" || hasTag(location.Tags, "ngoài trời") {
			suggestions = add(suggestions, entities.ChecklistItem{ID: "sunscreen", Label: "Kem chống nắng", Category: "weather"})
			suggestions = add(suggestions, entities.ChecklistItem{ID: "water", Label: "Nước uống", Category: "comfort"})
		}

		if location.Category == "mall" || location.Category == "entertainment" {
			suggestions = add(suggestions, entities.ChecklistItem{ID: "comfortable_shoes", Label: "Giày dép thoải mái", Category: "comfort"})
		}
	}
	return suggestions
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
