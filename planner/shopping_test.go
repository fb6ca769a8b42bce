package planner

import (
	"testing"

	models "github.com/phillip/meetup-planner-go/models"
)

func TestResolveShoppingList(t *testing.T) {
	items := []models.ShoppingItem{
		{ID: "1", Name: "Chips", BaseAmount: 2, Unit: "bags", Category: models.CategoryFood, PerPerson: true},
		{ID: "2", Name: "Grill", BaseAmount: 1, Unit: "pcs", Category: models.CategoryOther},
		{ID: "3", Name: "Beer", BaseAmount: 0.5, Unit: "l", Category: models.CategoryAlcohol, PerPerson: true},
	}

	resolved := ResolveShoppingList(items, 5)
	if len(resolved) != 3 {
		t.Fatalf("got %d items, want 3", len(resolved))
	}

	if resolved[0].CalculatedAmount != 10 {
		t.Errorf("per-person item = %v, want 10", resolved[0].CalculatedAmount)
	}
	if resolved[1].CalculatedAmount != 1 {
		t.Errorf("fixed item = %v, want 1", resolved[1].CalculatedAmount)
	}
	// Fractional per-person amounts are not rounded.
	if resolved[2].CalculatedAmount != 2.5 {
		t.Errorf("fractional per-person item = %v, want 2.5", resolved[2].CalculatedAmount)
	}
}

func TestResolveShoppingListFixedItemsIgnoreHeadcount(t *testing.T) {
	items := []models.ShoppingItem{{ID: "1", Name: "Grill", BaseAmount: 1}}
	for _, count := range []int{1, 2, 50} {
		resolved := ResolveShoppingList(items, count)
		if resolved[0].CalculatedAmount != 1 {
			t.Errorf("headcount %d: amount = %v, want 1", count, resolved[0].CalculatedAmount)
		}
	}
}

func TestHeadCount(t *testing.T) {
	m := &models.Meetup{}
	if HeadCount(m) != 1 {
		t.Errorf("empty meetup headcount = %d, want 1 (host)", HeadCount(m))
	}
	m.Participants = make([]models.Participant, 4)
	if HeadCount(m) != 5 {
		t.Errorf("headcount = %d, want 5", HeadCount(m))
	}
}
