package population

import (
	"math"

	"github.com/greenbag/intervention-cli/internal/model"
)

// DefaultRequestDate is stamped on priority rows that never recorded one.
const DefaultRequestDate = "Feb 16, 2026 10:05 AM"

// ImmediateActionScore is the score at which a customer needs same-day action.
const ImmediateActionScore = 90

// View names accepted by Views.Select.
const (
	ViewPriority  = "priority"
	ViewRegular   = "regular"
	ViewAll       = "all"
	ViewContacted = "contacted"
)

// Views are the queue projections of one population. They are derived
// copies; the population itself is never modified.
type Views struct {
	Priority []model.CustomerRecord
	Regular  []model.CustomerRecord
}

// BuildViews splits pop into a priority queue of priorityCount rows and the
// regular at-risk list.
func BuildViews(pop []model.CustomerRecord, priorityCount int) Views {
	mix := PickPriorityMix(pop, priorityCount)

	priority := make([]model.CustomerRecord, len(mix))
	ids := make(map[string]struct{}, len(mix))
	for i, c := range mix {
		c.RequestedHelp = true
		c.Status = model.StatusHelpRequested
		if c.RequestDate == "" {
			c.RequestDate = DefaultRequestDate
		}
		priority[i] = c
		ids[c.ID] = struct{}{}
	}

	regular := make([]model.CustomerRecord, 0, len(pop)-len(mix))
	for _, c := range pop {
		if _, ok := ids[c.ID]; ok {
			continue
		}
		c.RequestedHelp = false
		c.RequestDate = ""
		if c.Status == model.StatusUrgent || c.Status == model.StatusHelpRequested {
			c.Status = model.StatusPending
		}
		regular = append(regular, c)
	}

	return Views{Priority: priority, Regular: regular}
}

// AtRisk returns the priority queue followed by the regular list.
func (v Views) AtRisk() []model.CustomerRecord {
	out := make([]model.CustomerRecord, 0, len(v.Priority)+len(v.Regular))
	out = append(out, v.Priority...)
	return append(out, v.Regular...)
}

// All returns every at-risk customer plus the good-standing references.
func (v Views) All() []model.CustomerRecord {
	return append(v.AtRisk(), goodStanding...)
}

// Contacted returns at-risk customers that have already been reached.
func (v Views) Contacted() []model.CustomerRecord {
	var out []model.CustomerRecord
	for _, c := range v.AtRisk() {
		if c.Status == model.StatusContacted {
			out = append(out, c)
		}
	}
	return out
}

// Select returns the named view and whether the name is known.
func (v Views) Select(name string) ([]model.CustomerRecord, bool) {
	switch name {
	case ViewPriority:
		return v.Priority, true
	case ViewRegular:
		return v.Regular, true
	case ViewAll:
		return v.All(), true
	case ViewContacted:
		return v.Contacted(), true
	}
	return nil, false
}

// Summary holds the headline counters of the at-risk page.
type Summary struct {
	TotalAtRisk     int `json:"total_at_risk"`
	HelpRequested   int `json:"help_requested"`
	AvgRiskScore    int `json:"avg_risk_score"`
	ImmediateAction int `json:"immediate_action"`
	Contacted       int `json:"contacted"`
}

// Summarize computes the headline counters over the at-risk rows.
func Summarize(v Views) Summary {
	rows := v.AtRisk()
	s := Summary{
		TotalAtRisk:   len(rows),
		HelpRequested: len(v.Priority),
	}
	if len(rows) == 0 {
		return s
	}

	sum := 0
	for _, c := range rows {
		sum += c.RiskScore
		if c.RiskScore >= ImmediateActionScore {
			s.ImmediateAction++
		}
		if c.Status == model.StatusContacted {
			s.Contacted++
		}
	}
	s.AvgRiskScore = int(math.Round(float64(sum) / float64(len(rows))))
	return s
}

// Page is one window of a paginated list.
type Page struct {
	Rows   []model.CustomerRecord `json:"rows"`
	Number int                    `json:"page"`
	Size   int                    `json:"page_size"`
	Total  int                    `json:"total"`
	Pages  int                    `json:"pages"`
	Start  int                    `json:"start"`
	End    int                    `json:"end"`
}

// Paginate returns the 1-based page of rows. Out-of-range pages are clamped.
func Paginate(rows []model.CustomerRecord, page, size int) Page {
	if size <= 0 {
		size = 25
	}
	total := len(rows)
	pages := max((total+size-1)/size, 1)
	page = min(max(page, 1), pages)

	start := min((page-1)*size, total)
	end := min(start+size, total)

	return Page{
		Rows:   rows[start:end],
		Number: page,
		Size:   size,
		Total:  total,
		Pages:  pages,
		Start:  start,
		End:    end,
	}
}
