// Package costs holds the reference cost table used to compute profit.
//
// The table is keyed by card name and ignores the cost recorded on
// individual cards.
package costs

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Table maps a card name to its reference cost.
type Table map[string]decimal.Decimal

// Default returns the built-in example table.
func Default() Table {
	return Table{
		"Card A": decimal.NewFromInt(10),
		"Card B": decimal.NewFromInt(5),
		"Card C": decimal.NewFromInt(2),
	}
}

// Load reads a YAML mapping of card name to cost. The file replaces the
// built-in table, it is not merged with it.
//
//	Card A: 10.00
//	"Charizard 1st Ed": 350
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cost table %s: %w", path, err)
	}
	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse cost table %s: %w", path, err)
	}
	t := make(Table, len(raw))
	for name, cost := range raw {
		t[name] = decimal.NewFromFloat(cost)
	}
	return t, nil
}

// Cost returns the reference cost for name, or zero when the name is unknown.
func (t Table) Cost(name string) decimal.Decimal {
	if c, ok := t[name]; ok {
		return c
	}
	return decimal.Zero
}

// Names returns the card names in the table, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
