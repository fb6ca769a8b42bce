package planner

import (
	"errors"

	models "github.com/phillip/meetup-planner-go/models"
)

var (
	// ErrNoDateOptions means finalization was asked of a meetup with no
	// candidate dates.
	ErrNoDateOptions = errors.New("no date options available")
	// ErrNoVotes means no candidate date received a single available vote.
	ErrNoVotes = errors.New("no votes received for any date option")
)

// FinalDecision is the outcome of a successful finalization.
type FinalDecision struct {
	Date   models.MeetupDate `json:"date"`
	Votes  int               `json:"votes"`
	Voters []string          `json:"voters"`
}

// DecideFinalDate selects the candidate date with the most available votes.
// Ties keep the first candidate encountered with the maximum count; the
// reduction is strictly left-to-right and there is no secondary ordering.
// Finalization is refused when there are no candidates or when the best
// candidate has zero votes.
func DecideFinalDate(m *models.Meetup) (*FinalDecision, error) {
	if len(m.PossibleDates) == 0 {
		return nil, ErrNoDateOptions
	}

	var winner *FinalDecision
	for _, d := range m.PossibleDates {
		votes := 0
		voters := []string{}
		for _, a := range m.DateAvailabilities {
			if a.DateID == d.ID && a.Available {
				votes++
				voters = append(voters, a.Username)
			}
		}
		if winner == nil || votes > winner.Votes {
			winner = &FinalDecision{Date: d, Votes: votes, Voters: voters}
		}
	}

	if winner.Votes == 0 {
		return nil, ErrNoVotes
	}
	return winner, nil
}
