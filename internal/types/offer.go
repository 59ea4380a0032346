package types

import "time"

// Offer represents a job offer from the external catalog. The matching engine
// treats offers as read-only input; their lifecycle (creation, activation
// window) is owned by the catalog.
type Offer struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Category    string    `json:"category,omitempty"`
	Company     string    `json:"company,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	ValidFrom   time.Time `json:"valid_from,omitempty"`
	ValidTo     time.Time `json:"valid_to,omitempty"`
}

// CurrentlyValid reports whether the offer is active and inside its validity
// window at the given instant. A zero ValidFrom or ValidTo leaves that end of
// the window open.
func (o *Offer) CurrentlyValid(now time.Time) bool {
	if !o.Active {
		return false
	}
	if !o.ValidFrom.IsZero() && now.Before(o.ValidFrom) {
		return false
	}
	if !o.ValidTo.IsZero() && now.After(o.ValidTo) {
		return false
	}
	return true
}

// MatchResult holds the score of one offer against a candidate. Reasons are
// fixed human-readable strings appended in scoring-rule evaluation order so
// every score is auditable.
type MatchResult struct {
	OfferID string   `json:"offer_id"`
	Title   string   `json:"title"`
	Company string   `json:"company,omitempty"`
	Score   int      `json:"score"` // 0-100
	Reasons []string `json:"reasons"`
}

// CandidateMatch holds the score of one candidate against an offer, for the
// reverse matching direction.
type CandidateMatch struct {
	CandidateID     string   `json:"id"`
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	CurrentPosition string   `json:"current_position,omitempty"`
	Score           int      `json:"match_percentage"` // 0-100
	Reasons         []string `json:"reasons"`
}
