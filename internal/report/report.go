// Package report aggregates graded cards into per-name grade tallies,
// revenue and profit, and exports the result as CSV.
//
// A Report is not safe for concurrent use.
package report

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"gradetally/internal/core"
	"gradetally/internal/costs"
)

// DefaultExportFile is the export path used when none is given.
const DefaultExportFile = "graded_card_data.csv"

type (
	// CostLookup resolves the reference cost of a card name.
	CostLookup interface {
		Cost(name string) decimal.Decimal
	}

	// LineItem is one recorded (name, grade) occurrence.
	LineItem struct {
		Name  string
		Grade int
	}

	// Tally holds the running counts for one card name.
	Tally struct {
		Total        int
		Tens         int
		Nines        int
		EightOrLower int
	}

	// Totals holds the running counts across all names.
	Totals struct {
		Graded       int
		Tens         int
		Nines        int
		EightOrLower int
	}

	Report struct {
		label string
		path  string
		costs CostLookup

		totals   Totals
		items    []LineItem
		tallies  map[string]*Tally
		revenues map[string]decimal.Decimal
	}
)

var (
	ErrNameNotFound     = errors.New("card name not found")
	ErrLineItemNotFound = errors.New("card not recorded")
	ErrExport           = errors.New("export failed")
)

// New creates an empty report. An empty path selects DefaultExportFile and a
// nil lookup selects the built-in cost table.
func New(label, path string, lookup CostLookup) *Report {
	if path == "" {
		path = DefaultExportFile
	}
	if lookup == nil {
		lookup = costs.Default()
	}
	return &Report{
		label:    label,
		path:     path,
		costs:    lookup,
		tallies:  make(map[string]*Tally),
		revenues: make(map[string]decimal.Decimal),
	}
}

func (r *Report) Label() string  { return r.label }
func (r *Report) Path() string   { return r.path }
func (r *Report) Totals() Totals { return r.totals }

// LineItems returns a copy of the recorded line-items in insertion order.
func (r *Report) LineItems() []LineItem {
	return slices.Clone(r.items)
}

// AddCard records one card. Existing revenue for the name is kept.
func (r *Report) AddCard(c core.Card) {
	r.totals.add(c.Bucket(), 1)
	r.items = append(r.items, LineItem{Name: c.Name(), Grade: c.Grade()})

	t := r.tally(c.Name())
	t.add(c.Bucket(), 1)

	if _, ok := r.revenues[c.Name()]; !ok {
		r.revenues[c.Name()] = decimal.Zero
	}
}

// RemoveCard removes the first line-item matching the card's name and grade.
// When the last card of a name goes, its tally and revenue are dropped too.
func (r *Report) RemoveCard(c core.Card) error {
	want := LineItem{Name: c.Name(), Grade: c.Grade()}
	i := slices.Index(r.items, want)
	if i < 0 {
		return ErrLineItemNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	r.totals.add(c.Bucket(), -1)

	t := r.tally(c.Name())
	t.add(c.Bucket(), -1)
	if t.Total == 0 {
		delete(r.tallies, c.Name())
		delete(r.revenues, c.Name())
	}
	return nil
}

// Counts returns the tally for name without creating one.
func (r *Report) Counts(name string) (Tally, bool) {
	t, ok := r.tallies[name]
	if !ok {
		return Tally{}, false
	}
	return *t, true
}

// CountsOrInsert returns the tally for name, inserting a zeroed one when the
// name is unseen.
func (r *Report) CountsOrInsert(name string) Tally {
	return *r.tally(name)
}

func (r *Report) tally(name string) *Tally {
	t, ok := r.tallies[name]
	if !ok {
		t = &Tally{}
		r.tallies[name] = t
	}
	return t
}

// UpdateRevenue overwrites the recorded revenue for name.
func (r *Report) UpdateRevenue(name string, revenue decimal.Decimal) error {
	if _, ok := r.revenues[name]; !ok {
		return ErrNameNotFound
	}
	r.revenues[name] = revenue
	return nil
}

// Revenue returns the recorded revenue for name.
func (r *Report) Revenue(name string) (decimal.Decimal, bool) {
	rev, ok := r.revenues[name]
	return rev, ok
}

// Cost returns the reference cost for name, zero when unknown.
func (r *Report) Cost(name string) decimal.Decimal {
	return r.costs.Cost(name)
}

// Profit is revenue minus reference cost, or zero when name has no revenue.
func (r *Report) Profit(name string) decimal.Decimal {
	rev, ok := r.revenues[name]
	if !ok {
		return decimal.Zero
	}
	return rev.Sub(r.Cost(name))
}

// Names returns the distinct line-item names in first-occurrence order.
func (r *Report) Names() []string {
	seen := make(map[string]struct{}, len(r.tallies))
	var names []string
	for _, it := range r.items {
		if _, ok := seen[it.Name]; ok {
			continue
		}
		seen[it.Name] = struct{}{}
		names = append(names, it.Name)
	}
	return names
}

func (t *Tally) add(b core.Bucket, n int) {
	t.Total += n
	switch b {
	case core.BucketTens:
		t.Tens += n
	case core.BucketNines:
		t.Nines += n
	default:
		t.EightOrLower += n
	}
}

func (t *Totals) add(b core.Bucket, n int) {
	t.Graded += n
	switch b {
	case core.BucketTens:
		t.Tens += n
	case core.BucketNines:
		t.Nines += n
	default:
		t.EightOrLower += n
	}
}
