package planner

import (
	"sort"

	models "github.com/phillip/meetup-planner-go/models"
)

// DateStats aggregates the availability votes for one candidate date.
type DateStats struct {
	Date             models.MeetupDate `json:"date"`
	Available        int               `json:"available"`
	Unavailable      int               `json:"unavailable"`
	Total            int               `json:"total"`
	Percentage       float64           `json:"percentage"`
	AvailableUsers   []string          `json:"available_users"`
	UnavailableUsers []string          `json:"unavailable_users"`
	Leading          bool              `json:"leading"`
}

// TallyDates computes per-date stats for every candidate, in candidate order.
// Percentage is 0 (never NaN) when a date has no votes at all. Dates whose
// percentage equals the maximum are flagged as leading, provided that maximum
// is positive; the flag is for display only, finalization has its own rule.
func TallyDates(possibleDates []models.MeetupDate, availabilities []models.DateAvailability) []DateStats {
	stats := make([]DateStats, 0, len(possibleDates))
	for _, d := range possibleDates {
		s := DateStats{Date: d, AvailableUsers: []string{}, UnavailableUsers: []string{}}
		for _, a := range availabilities {
			if a.DateID != d.ID {
				continue
			}
			if a.Available {
				s.Available++
				s.AvailableUsers = append(s.AvailableUsers, a.Username)
			} else {
				s.Unavailable++
				s.UnavailableUsers = append(s.UnavailableUsers, a.Username)
			}
		}
		s.Total = s.Available + s.Unavailable
		if s.Total > 0 {
			s.Percentage = float64(s.Available) / float64(s.Total) * 100
		}
		stats = append(stats, s)
	}

	max := 0.0
	for _, s := range stats {
		if s.Percentage > max {
			max = s.Percentage
		}
	}
	if max > 0 {
		for i := range stats {
			if stats[i].Percentage == max {
				stats[i].Leading = true
			}
		}
	}
	return stats
}

// SortByPercentage orders stats for the results view, best date first.
func SortByPercentage(stats []DateStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Percentage > stats[j].Percentage
	})
}

// SortByDate orders stats for the voting view, earliest candidate first.
func SortByDate(stats []DateStats) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date.Date.Before(stats[j].Date.Date)
	})
}
