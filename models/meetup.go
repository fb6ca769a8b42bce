package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetupStatus is derived from the meetup's date/time fields on every read,
// never stored.
type MeetupStatus string

const (
	StatusUpcoming   MeetupStatus = "upcoming"
	StatusInProgress MeetupStatus = "in_progress"
	StatusPast       MeetupStatus = "past"
)

// ItemCategory values for shopping items and suggestions.
const (
	CategoryFood    = "food"
	CategoryDrink   = "drink"
	CategoryAlcohol = "alcohol"
	CategoryOther   = "other"
)

type Meetup struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`

	// Date is the calendar day; Time/EndTime are "HH:MM" wall-clock strings.
	// While a polling meetup is unfinalized these hold the first candidate's
	// values as a provisional date.
	Date    time.Time  `bson:"date" json:"date"`
	Time    string     `bson:"time" json:"time"`
	EndDate *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	EndTime string     `bson:"end_time,omitempty" json:"end_time,omitempty"`

	PossibleDates      []MeetupDate       `bson:"possible_dates,omitempty" json:"possible_dates,omitempty"`
	DateAvailabilities []DateAvailability `bson:"date_availabilities" json:"date_availabilities"`
	UsesDatePolling    bool               `bson:"uses_date_polling" json:"uses_date_polling"`
	DateFinalized      bool               `bson:"date_finalized" json:"date_finalized"`
	FinalizedAt        *time.Time         `bson:"finalized_at,omitempty" json:"finalized_at,omitempty"`
	WinningDateVotes   int                `bson:"winning_date_votes,omitempty" json:"winning_date_votes,omitempty"`
	WinningDateVoters  []string           `bson:"winning_date_voters,omitempty" json:"winning_date_voters,omitempty"`

	HostID       primitive.ObjectID `bson:"host_id" json:"host_id"`
	HostUsername string             `bson:"host_username" json:"host_username"`
	Code         string             `bson:"code" json:"code"` // 6-char uppercase alnum, unique, immutable
	HasAlcohol   bool               `bson:"has_alcohol" json:"has_alcohol"`

	ShoppingList    []ShoppingItem   `bson:"shopping_list" json:"shopping_list"`
	ItemSuggestions []ItemSuggestion `bson:"item_suggestions" json:"item_suggestions"`
	Participants    []Participant    `bson:"participants" json:"participants"`
	Costs           []Cost           `bson:"costs" json:"costs"`

	// Version guards read-modify-write updates of the embedded arrays.
	Version   int64      `bson:"version" json:"-"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`

	// Enriched fields
	Status MeetupStatus `bson:"-" json:"status,omitempty"`
}

// MeetupDate is one candidate date in a poll.
type MeetupDate struct {
	ID          string    `bson:"id" json:"id"`
	Date        time.Time `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	EndTime     string    `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
}

// DateAvailability is one participant's vote on one candidate date. At most
// one row exists per (participant, date); a new submission replaces all of a
// participant's rows.
type DateAvailability struct {
	ParticipantID primitive.ObjectID `bson:"participant_id" json:"participant_id"`
	Username      string             `bson:"username" json:"username"`
	DateID        string             `bson:"date_id" json:"date_id"`
	Available     bool               `bson:"available" json:"available"`
}

type Participant struct {
	ID            string             `bson:"id" json:"id"` // join-record id
	ParticipantID primitive.ObjectID `bson:"participant_id" json:"participant_id"`
	Username      string             `bson:"username" json:"username"`
	IsVegetarian  bool               `bson:"is_vegetarian" json:"is_vegetarian"`
	IsVegan       bool               `bson:"is_vegan" json:"is_vegan"`
	DrinksAlcohol bool               `bson:"drinks_alcohol" json:"drinks_alcohol"`
	StayDuration  float64            `bson:"stay_duration" json:"stay_duration"` // hours
	JoinTime      string             `bson:"join_time,omitempty" json:"join_time,omitempty"`
	Suggestions   string             `bson:"suggestions,omitempty" json:"suggestions,omitempty"`
	BringingItems []string           `bson:"bringing_items" json:"bringing_items"`
	JoinedAt      time.Time          `bson:"joined_at" json:"joined_at"`
	UpdatedAt     *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type ShoppingItem struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	BaseAmount float64 `bson:"base_amount" json:"base_amount"`
	Unit       string  `bson:"unit" json:"unit"`
	Category   string  `bson:"category" json:"category"` // food, drink, alcohol, other
	PerPerson  bool    `bson:"per_person,omitempty" json:"per_person,omitempty"`
}

// SuggestionStatus lifecycle: pending until the host accepts or rejects;
// both outcomes remove the suggestion from the meetup.
const (
	SuggestionPending  = "pending"
	SuggestionAccepted = "accepted"
	SuggestionRejected = "rejected"
)

type ItemSuggestion struct {
	ID                  string             `bson:"id" json:"id"`
	ParticipantID       primitive.ObjectID `bson:"participant_id" json:"participant_id"`
	ParticipantUsername string             `bson:"participant_username" json:"participant_username"`
	Name                string             `bson:"name" json:"name"`
	BaseAmount          float64            `bson:"base_amount" json:"base_amount"`
	Unit                string             `bson:"unit" json:"unit"`
	Category            string             `bson:"category" json:"category"`
	PerPerson           bool               `bson:"per_person,omitempty" json:"per_person,omitempty"`
	Reason              string             `bson:"reason,omitempty" json:"reason,omitempty"`
	SuggestedAt         time.Time          `bson:"suggested_at" json:"suggested_at"`
	Status              string             `bson:"status" json:"status"`
}

type Cost struct {
	ID                  string             `bson:"id" json:"id"`
	ParticipantID       primitive.ObjectID `bson:"participant_id" json:"participant_id"`
	ParticipantUsername string             `bson:"participant_username" json:"participant_username"`
	Items               []CostItem         `bson:"items" json:"items"`
	Total               float64            `bson:"total" json:"total"` // computed once at submission
	ReceiptURL          string             `bson:"receipt_url,omitempty" json:"receipt_url,omitempty"`
	AddedAt             time.Time          `bson:"added_at" json:"added_at"`
}

type CostItem struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
	// SharedWith is recorded for display but the split stays an equal split
	// across everyone.
	SharedWith []string `bson:"shared_with,omitempty" json:"shared_with,omitempty"`
}
