package model

// Status is the outreach state of an at-risk customer.
type Status string

// Customer statuses.
const (
	StatusUrgent        Status = "Urgent"
	StatusPending       Status = "Pending"
	StatusContacted     Status = "Contacted"
	StatusHelpRequested Status = "Help Requested"
	StatusGoodStanding  Status = "Good Standing"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUrgent, StatusPending, StatusContacted, StatusHelpRequested, StatusGoodStanding:
		return true
	}
	return false
}

// CustomerRecord is one synthetic at-risk customer.
type CustomerRecord struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	RiskScore         int    `json:"risk_score"`
	Trigger           string `json:"trigger"`
	RecommendedAction string `json:"recommended_action"`
	Status            Status `json:"status"`
	RequestedHelp     bool   `json:"requested_help"`
	RequestDate       string `json:"request_date,omitempty"` // set iff RequestedHelp
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	LoanAmount        string `json:"loan_amount"`
	MissedPayments    int    `json:"missed_payments"`
}

// HasRequestDate reports whether a request date is recorded.
func (c CustomerRecord) HasRequestDate() bool {
	return c.RequestDate != ""
}

// TriggerTemplate is a catalog entry that bounds generated risk scores.
type TriggerTemplate struct {
	Label             string `json:"label" yaml:"label"`
	ScoreMin          int    `json:"score_min" yaml:"score_min"`
	ScoreMax          int    `json:"score_max" yaml:"score_max"`
	RecommendedAction string `json:"recommended_action" yaml:"recommended_action"`
}

// Contains reports whether score falls inside the template's range.
func (t TriggerTemplate) Contains(score int) bool {
	return score >= t.ScoreMin && score <= t.ScoreMax
}
