package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Header is the fixed column order of the export file.
var Header = []string{"Card Name", "Card Grade", "Quantity", "10s", "9s", "8s or lower", "Cost", "Revenue", "Profit"}

// Row is one line of the export: a card name with its current tally.
type Row struct {
	Name         string
	Grade        int // grade of the first surviving line-item, not an aggregate
	Quantity     int
	Tens         int
	Nines        int
	EightOrLower int
	Cost         decimal.Decimal
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
}

// Rows builds one row per distinct line-item name, in first-occurrence order.
// Names with an empty tally are skipped.
func (r *Report) Rows() []Row {
	firstGrade := make(map[string]int, len(r.tallies))
	for _, it := range r.items {
		if _, ok := firstGrade[it.Name]; !ok {
			firstGrade[it.Name] = it.Grade
		}
	}

	var rows []Row
	for _, name := range r.Names() {
		t, ok := r.Counts(name)
		if !ok || t.Total == 0 {
			continue
		}
		rev, _ := r.Revenue(name)
		rows = append(rows, Row{
			Name:         name,
			Grade:        firstGrade[name],
			Quantity:     t.Total,
			Tens:         t.Tens,
			Nines:        t.Nines,
			EightOrLower: t.EightOrLower,
			Cost:         r.Cost(name),
			Revenue:      rev,
			Profit:       r.Profit(name),
		})
	}
	return rows
}

// WriteCSV writes the header and one record per row to w.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range r.Rows() {
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteToFile truncates the export path and writes the report to it.
func (r *Report) WriteToFile() (err error) {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrExport, r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrExport, r.path, cerr)
		}
	}()

	if err := r.WriteCSV(f); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrExport, r.path, err)
	}
	return nil
}

func (row Row) record() []string {
	return []string{
		row.Name,
		strconv.Itoa(row.Grade),
		strconv.Itoa(row.Quantity),
		strconv.Itoa(row.Tens),
		strconv.Itoa(row.Nines),
		strconv.Itoa(row.EightOrLower),
		row.Cost.StringFixed(2),
		row.Revenue.StringFixed(2),
		row.Profit.StringFixed(2),
	}
}
