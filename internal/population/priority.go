package population

import (
	"slices"

	"github.com/greenbag/intervention-cli/internal/model"
)

// Tier is a score band of the priority queue and the share of the queue it
// should fill.
type Tier struct {
	Name  string
	Min   int
	Max   int
	Share float64 // fraction of the queue; ignored for the last tier, which takes the remainder
}

// DefaultTiers mixes very high, high and borderline-high customers so the
// help-requested queue does not look uniformly top-heavy.
var DefaultTiers = []Tier{
	{Name: "critical", Min: 95, Max: 100, Share: 0.42},
	{Name: "high", Min: 90, Max: 94, Share: 0.33},
	{Name: "elevated", Min: 85, Max: 89},
}

// PickPriorityMix selects min(k, len(rows)) distinct rows using
// DefaultTiers. Row ids must be unique, as Generate guarantees.
func PickPriorityMix(rows []model.CustomerRecord, k int) []model.CustomerRecord {
	return PickTieredMix(rows, k, DefaultTiers)
}

// PickTieredMix fills each tier greedily from the risk-sorted order, then
// backfills any shortfall from the highest-scoring unused rows. rows is not
// modified.
//
// Rows are told apart by ID, so ids must be unique. Rows sharing an id are
// picked at most once, which returns fewer than min(k, len(rows)) rows.
func PickTieredMix(rows []model.CustomerRecord, k int, tiers []Tier) []model.CustomerRecord {
	k = min(k, len(rows))
	if k <= 0 {
		return []model.CustomerRecord{}
	}

	sorted := slices.Clone(rows)
	SortByRisk(sorted)

	quotas := tierQuotas(k, tiers)
	picked := make([]model.CustomerRecord, 0, k)
	used := make(map[string]struct{}, k)

	take := func(r model.CustomerRecord) {
		used[r.ID] = struct{}{}
		picked = append(picked, r)
	}

	for i, tier := range tiers {
		taken := 0
		for _, r := range sorted {
			if len(picked) >= k || taken >= quotas[i] {
				break
			}
			if _, ok := used[r.ID]; ok {
				continue
			}
			if r.RiskScore < tier.Min || r.RiskScore > tier.Max {
				continue
			}
			take(r)
			taken++
		}
	}

	for _, r := range sorted {
		if len(picked) >= k {
			break
		}
		if _, ok := used[r.ID]; ok {
			continue
		}
		take(r)
	}

	return picked
}

// tierQuotas floors each tier's share of k; the last tier gets what is left.
func tierQuotas(k int, tiers []Tier) []int {
	quotas := make([]int, len(tiers))
	rest := k
	for i, t := range tiers {
		if i == len(tiers)-1 {
			quotas[i] = max(rest, 0)
			break
		}
		quotas[i] = int(float64(k) * t.Share)
		rest -= quotas[i]
	}
	return quotas
}
