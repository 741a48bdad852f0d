package population

import (
	"cmp"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greenbag/intervention-cli/internal/model"
)

// DefaultSeed is the seed the dashboard uses for its population.
const DefaultSeed int64 = 20260219

const (
	maxIDAttempts = 200
	loanMin       = 550000
	loanMax       = 3200000
)

// Options controls presentation details of generated records. None of them
// change the random stream.
type Options struct {
	CurrencyLocale string
	CurrencySymbol string
}

// Option mutates Options.
type Option func(*Options)

// WithCurrency sets the locale used for digit grouping and the currency
// symbol prefixed to loan amounts.
func WithCurrency(locale, symbol string) Option {
	return func(o *Options) {
		if locale != "" {
			o.CurrencyLocale = locale
		}
		if symbol != "" {
			o.CurrencySymbol = symbol
		}
	}
}

// DefaultOptions returns the Indian-rupee presentation used by the dashboard.
func DefaultOptions() Options {
	return Options{CurrencyLocale: "en-IN", CurrencySymbol: "₹"}
}

// Generate returns total customers derived only from total and seed. Anchor
// records come first (truncated when total is smaller than the anchor set),
// the rest are procedural. The result is sorted by descending risk score with
// ties ordered by TieKey.
func Generate(total int, seed int64, opts ...Option) []model.CustomerRecord {
	if total <= 0 {
		return []model.CustomerRecord{}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &generator{
		rand:    NewRand(uint32(seed)),
		used:    make(map[string]struct{}, total),
		printer: message.NewPrinter(language.Make(o.CurrencyLocale)),
		symbol:  o.CurrencySymbol,
	}

	out := make([]model.CustomerRecord, 0, total)
	for _, a := range anchors {
		g.used[a.ID] = struct{}{}
	}
	out = append(out, anchors[:min(total, len(anchors))]...)

	for len(out) < total {
		out = append(out, g.next())
	}

	SortByRisk(out)
	return out
}

// SortByRisk orders rows by descending risk score, breaking ties by TieKey
// and finally by id.
func SortByRisk(rows []model.CustomerRecord) {
	slices.SortStableFunc(rows, func(a, b model.CustomerRecord) int {
		if c := cmp.Compare(b.RiskScore, a.RiskScore); c != 0 {
			return c
		}
		if c := cmp.Compare(TieKey(a.ID), TieKey(b.ID)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// TieKey is the FNV-1a hash of id, used as the secondary sort key so equal
// scores do not cluster by generation order.
func TieKey(id string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return h.Sum32()
}

// HelpProbability is the chance that a customer with the given score has
// asked for help. It never decreases as score grows.
func HelpProbability(score int) float64 {
	switch {
	case score >= 90:
		return 0.55
	case score >= 80:
		return 0.25
	default:
		return 0.08
	}
}

type generator struct {
	rand     *Rand
	used     map[string]struct{}
	fallback int
	printer  *message.Printer
	symbol   string
}

func (g *generator) next() model.CustomerRecord {
	r := g.rand

	first := Pick(r, firstNames)
	last := Pick(r, lastNames)

	tmpl := Pick(r, triggers)
	score := r.Intn(tmpl.ScoreMin, tmpl.ScoreMax)

	trigger := tmpl.Label
	if tmpl.Label == triggerSalaryDelay {
		trigger = fmt.Sprintf("%s (%dD)", triggerSalaryDelay, r.Intn(2, 7))
	}

	helped := r.Chance(HelpProbability(score))

	var status model.Status
	switch {
	case helped:
		status = model.StatusHelpRequested
	case score >= 90:
		status = model.StatusUrgent
	case score >= 75:
		status = model.StatusPending
	case r.Chance(0.45):
		status = model.StatusContacted
	default:
		status = model.StatusPending
	}

	missed := 0
	switch {
	case tmpl.Label == triggerBouncedEMI:
		missed = r.Intn(1, 2)
	case score >= 92:
		missed = r.Intn(0, 1)
	}

	c := model.CustomerRecord{
		ID:                g.id(),
		Name:              last + ", " + first,
		RiskScore:         score,
		Trigger:           trigger,
		RecommendedAction: tmpl.RecommendedAction,
		Status:            status,
		RequestedHelp:     helped,
		MissedPayments:    missed,
	}
	c.Phone = g.phone()
	c.Email = g.email(first, last)
	c.LoanAmount = g.money(r.Intn(loanMin, loanMax))
	if helped {
		c.RequestDate = g.requestDate()
	}
	return c
}

// id draws NNNN-L-NNNN tokens until an unused one appears. After
// maxIDAttempts it falls back to a sequential token.
func (g *generator) id() string {
	r := g.rand
	for range maxIDAttempts {
		id := fmt.Sprintf("%d-%s-%d", r.Intn(1000, 9999), Pick(r, idLetters), r.Intn(1000, 9999))
		if _, taken := g.used[id]; !taken {
			g.used[id] = struct{}{}
			return id
		}
	}
	for {
		g.fallback++
		id := fmt.Sprintf("0000-X-%04d", g.fallback)
		if _, taken := g.used[id]; !taken {
			g.used[id] = struct{}{}
			return id
		}
	}
}

func (g *generator) phone() string {
	start := Pick(g.rand, phonePrefix)
	rest := fmt.Sprintf("%d", g.rand.Intn(10000000, 99999999))
	return fmt.Sprintf("+91 %s%s %s", start, rest[:3], rest[3:])
}

func (g *generator) email(first, last string) string {
	tag := g.rand.Intn(1, 99)
	domain := Pick(g.rand, emailDomains)
	return strings.ToLower(fmt.Sprintf("%c.%s%02d@%s", first[0], last, tag, domain))
}

func (g *generator) money(amount int) string {
	return g.symbol + g.printer.Sprintf("%d", amount)
}

// requestDate returns a timestamp between Feb 15 and Feb 19, 2026.
func (g *generator) requestDate() string {
	r := g.rand
	day := r.Intn(15, 19)
	hours := r.Intn(8, 17)
	mins := Pick(r, requestMins)
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hour12 := (hours+11)%12 + 1
	return fmt.Sprintf("Feb %d, 2026 %02d:%s %s", day, hour12, mins, ampm)
}
