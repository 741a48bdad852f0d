package population

import (
	"slices"

	"github.com/greenbag/intervention-cli/internal/model"
)

// TriggerCatalog returns a copy of the fixed trigger catalog.
func TriggerCatalog() []model.TriggerTemplate {
	return slices.Clone(triggers)
}

// AnchorRecords returns a copy of the anchor records in their defined order.
func AnchorRecords() []model.CustomerRecord {
	return slices.Clone(anchors)
}

// triggers is the fixed trigger catalog. Templates are picked uniformly and
// the score is drawn uniformly inside the chosen range.
var triggers = []model.TriggerTemplate{
	{Label: "SALARY DELAY", ScoreMin: 86, ScoreMax: 98, RecommendedAction: "Immediate Phone Intervention"},
	{Label: "BOUNCED EMI", ScoreMin: 84, ScoreMax: 97, RecommendedAction: "Immediate Collections Outreach"},
	{Label: "SAVINGS DEPLETION", ScoreMin: 76, ScoreMax: 94, RecommendedAction: "Soft Nudge SMS / Email"},
	{Label: "LOAN APP SPIKE", ScoreMin: 70, ScoreMax: 90, RecommendedAction: "Financial Wellness Consult"},
	{Label: "UTILIZATION SPIKE", ScoreMin: 62, ScoreMax: 86, RecommendedAction: "Credit Limit Review"},
	{Label: "OVERDRAFT SPIKE", ScoreMin: 60, ScoreMax: 82, RecommendedAction: "Account Monitoring Call"},
	{Label: "MINIMUM DUE ONLY", ScoreMin: 55, ScoreMax: 76, RecommendedAction: "Budget + Repayment Plan"},
	{Label: "CASH WITHDRAWAL SPIKE", ScoreMin: 52, ScoreMax: 72, RecommendedAction: "Stress / Fraud Check-in"},
}

const (
	triggerSalaryDelay = "SALARY DELAY"
	triggerBouncedEMI  = "BOUNCED EMI"
)

var lastNames = []string{
	"Sharma", "Singh", "Gupta", "Reddy", "Patel", "Kumar", "Iyer", "Nair", "Joshi", "Verma",
	"Mehta", "Bose", "Chatterjee", "Kulkarni", "Desai", "Bhat", "Mishra", "Saxena", "Kapoor", "Malhotra",
}

var firstNames = []string{
	"Rajesh", "Anjali", "Neha", "Karthik", "Priya", "Amit", "Meera", "Vivek", "Rohan", "Sneha",
	"Arjun", "Ishita", "Rahul", "Pooja", "Suresh", "Kavya", "Manish", "Nikita", "Deepak", "Ayesha",
}

var (
	idLetters    = []string{"X", "B", "K", "P", "R", "M", "L", "T", "F", "D", "H", "G"}
	phonePrefix  = []string{"98", "97", "99", "96"}
	emailDomains = []string{"email.com", "bankmail.in", "finmail.in", "example.in"}
	requestMins  = []string{"02", "08", "12", "19", "23", "35", "41", "47", "53"}
)

// anchors are the hand-authored records included verbatim in every
// population, in this order.
var anchors = []model.CustomerRecord{
	{
		ID:                "8829-X-4421",
		Name:              "Sharma, Rajesh",
		RiskScore:         92,
		Trigger:           "SALARY DELAY (4D)",
		RecommendedAction: "Immediate Phone Intervention",
		Status:            model.StatusUrgent,
		RequestedHelp:     true,
		RequestDate:       "Feb 16, 2026 09:23 AM",
		Phone:             "+91 98765 43210",
		Email:             "r.sharma@email.com",
		LoanAmount:        "₹16,17,000",
	},
	{
		ID:                "1104-B-8923",
		Name:              "Singh, Anjali",
		RiskScore:         88,
		Trigger:           "SAVINGS DEPLETION",
		RecommendedAction: "Soft Nudge SMS / Email",
		Status:            model.StatusPending,
		Phone:             "+91 98765 43213",
		Email:             "a.singh@email.com",
		LoanAmount:        "₹20,16,000",
	},
	{
		ID:                "7732-K-0012",
		Name:              "Gupta, Neha",
		RiskScore:         74,
		Trigger:           "LOAN APP SPIKE",
		RecommendedAction: "Financial Wellness Consult",
		Status:            model.StatusPending,
		Phone:             "+91 98765 43214",
		Email:             "n.gupta@email.com",
		LoanAmount:        "₹13,12,500",
	},
	{
		ID:                "5543-P-2111",
		Name:              "Reddy, Karthik",
		RiskScore:         68,
		Trigger:           "UTILIZATION SPIKE",
		RecommendedAction: "Credit Limit Review",
		Status:            model.StatusContacted,
		Phone:             "+91 98765 43215",
		Email:             "k.reddy@email.com",
		LoanAmount:        "₹9,34,500",
	},
}

// goodStanding are low-risk reference customers appended to the "all" view.
var goodStanding = []model.CustomerRecord{
	{
		ID:         "2341-T-5678",
		Name:       "Desai, Rohan",
		RiskScore:  24,
		Trigger:    "N/A",
		Status:     model.StatusGoodStanding,
		Phone:      "+91 98765 43217",
		Email:      "r.desai@email.com",
		LoanAmount: "₹10,71,000",
	},
	{
		ID:         "8912-F-3421",
		Name:       "Nair, Vivek",
		RiskScore:  18,
		Trigger:    "N/A",
		Status:     model.StatusGoodStanding,
		Phone:      "+91 98765 43218",
		Email:      "v.nair@email.com",
		LoanAmount: "₹8,19,000",
	},
}
