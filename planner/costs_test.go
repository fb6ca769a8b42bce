package planner

import (
	"math"
	"testing"

	models "github.com/phillip/meetup-planner-go/models"
)

func TestCostTotal(t *testing.T) {
	items := []models.CostItem{
		{Name: "Meat", Amount: 22.5},
		{Name: "Charcoal", Amount: 7.5},
	}
	if got := CostTotal(items); got != 30 {
		t.Errorf("CostTotal() = %v, want 30", got)
	}
	if got := CostTotal(nil); got != 0 {
		t.Errorf("CostTotal(nil) = %v, want 0", got)
	}
}

func TestSplitCosts(t *testing.T) {
	costs := []models.Cost{
		{Total: 30},
		{Total: 20},
	}

	split := SplitCosts(costs, 5)
	if split.TotalCost != 50 {
		t.Errorf("total = %v, want 50", split.TotalCost)
	}
	if split.UserShare != 10 {
		t.Errorf("share = %v, want 10", split.UserShare)
	}
	if split.ParticipantCount != 5 {
		t.Errorf("participant count = %d, want 5", split.ParticipantCount)
	}
}

func TestSplitCostsTrustsStoredTotals(t *testing.T) {
	// The stored total wins even if it disagrees with the items; totals are
	// computed once at submission and never recomputed on read.
	costs := []models.Cost{{
		Total: 40,
		Items: []models.CostItem{{Name: "Drinks", Amount: 10}},
	}}

	split := SplitCosts(costs, 2)
	if split.TotalCost != 40 {
		t.Errorf("total = %v, want stored 40", split.TotalCost)
	}
	if math.Abs(split.UserShare-20) > 1e-9 {
		t.Errorf("share = %v, want 20", split.UserShare)
	}
}

func TestSplitCostsIgnoresSharedWith(t *testing.T) {
	costs := []models.Cost{{
		Total: 30,
		Items: []models.CostItem{{Name: "Wine", Amount: 30, SharedWith: []string{"p1"}}},
	}}

	split := SplitCosts(costs, 3)
	if split.UserShare != 10 {
		t.Errorf("share = %v, want equal split 10 regardless of shared_with", split.UserShare)
	}
}

func TestSplitCostsNoCosts(t *testing.T) {
	split := SplitCosts(nil, 4)
	if split.TotalCost != 0 || split.UserShare != 0 {
		t.Errorf("empty costs split = %+v, want zeros", split)
	}
}
