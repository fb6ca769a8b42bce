package planner

import (
	models "github.com/phillip/meetup-planner-go/models"
)

// CostSplit is the equal division of all submitted costs across everyone,
// host included. The per-item shared_with annotation is deliberately not
// consulted here.
type CostSplit struct {
	TotalCost        float64 `json:"total_cost"`
	UserShare        float64 `json:"user_share"`
	ParticipantCount int     `json:"participant_count"`
}

// CostTotal sums a cost entry's item amounts. It runs once when the cost is
// submitted; the stored total is trusted on every later read.
func CostTotal(items []models.CostItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// SplitCosts sums the stored cost totals and divides equally. The host is
// always counted, so participantCount is at least 1 and the division cannot
// blow up.
func SplitCosts(costs []models.Cost, participantCount int) CostSplit {
	total := 0.0
	for _, c := range costs {
		total += c.Total
	}
	return CostSplit{
		TotalCost:        total,
		UserShare:        total / float64(participantCount),
		ParticipantCount: participantCount,
	}
}
