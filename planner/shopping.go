package planner

import (
	models "github.com/phillip/meetup-planner-go/models"
)

// ResolvedItem is a shopping item with its effective quantity for the current
// headcount.
type ResolvedItem struct {
	models.ShoppingItem
	CalculatedAmount float64 `json:"calculated_amount"`
}

// HeadCount is the number of mouths to feed: every participant plus the host.
func HeadCount(m *models.Meetup) int {
	return len(m.Participants) + 1
}

// ResolveShoppingList scales per-person items by headcount and passes the
// rest through unchanged. Fractional amounts are kept as-is, no rounding.
func ResolveShoppingList(items []models.ShoppingItem, participantCount int) []ResolvedItem {
	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		amount := item.BaseAmount
		if item.PerPerson {
			amount = item.BaseAmount * float64(participantCount)
		}
		resolved = append(resolved, ResolvedItem{ShoppingItem: item, CalculatedAmount: amount})
	}
	return resolved
}
