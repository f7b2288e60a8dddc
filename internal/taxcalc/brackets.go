package taxcalc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

var (
	// ErrBracketsNotFound means no bracket table is configured for a
	// filing status, jurisdiction and year. It is a configuration fault.
	ErrBracketsNotFound = errors.New("tax brackets not found")
	// ErrInvalidBracketTable is returned when bracket rows do not form a
	// contiguous progressive schedule.
	ErrInvalidBracketTable = errors.New("invalid tax bracket table")
)

// Jurisdiction is the taxing authority a bracket table belongs to.
type Jurisdiction string

const (
	Federal Jurisdiction = "FEDERAL"
	State   Jurisdiction = "STATE"
)

// Valid reports whether j is a known jurisdiction.
func (j Jurisdiction) Valid() bool {
	return j == Federal || j == State
}

// Bracket taxes income in [Lower, Upper) at Rate. An invalid Upper marks the
// open-ended top bracket.
type Bracket struct {
	Lower decimal.Decimal     `json:"lower"`
	Upper decimal.NullDecimal `json:"upper"`
	Rate  decimal.Decimal     `json:"rate"`
}

// BracketEntry is a single bracket row as stored in reference data.
type BracketEntry struct {
	Year         int          `json:"year"`
	FilingStatus FilingStatus `json:"filingStatus"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Bracket
}

type bracketKey struct {
	year         int
	status       FilingStatus
	jurisdiction Jurisdiction
}

// BracketTable holds validated progressive schedules. It is immutable after
// construction and safe for concurrent use.
type BracketTable struct {
	schedules map[bracketKey][]Bracket
}

// NewBracketTable groups entries by year, filing status and jurisdiction,
// orders each group by lower bound and validates it.
func NewBracketTable(entries []BracketEntry) (*BracketTable, error) {
	schedules := make(map[bracketKey][]Bracket)
	for _, entry := range entries {
		if !entry.FilingStatus.Valid() {
			return nil, fmt.Errorf("%w: unknown filing status %d", ErrInvalidBracketTable, int(entry.FilingStatus))
		}
		if !entry.Jurisdiction.Valid() {
			return nil, fmt.Errorf("%w: unknown jurisdiction %q", ErrInvalidBracketTable, entry.Jurisdiction)
		}
		key := bracketKey{year: entry.Year, status: entry.FilingStatus, jurisdiction: entry.Jurisdiction}
		schedules[key] = append(schedules[key], entry.Bracket)
	}

	for key, brackets := range schedules {
		slices.SortFunc(brackets, func(a, b Bracket) int {
			return a.Lower.Cmp(b.Lower)
		})
		if err := validateSchedule(brackets); err != nil {
			return nil, fmt.Errorf("%w: %s %s %d: %v", ErrInvalidBracketTable, key.jurisdiction, key.status, key.year, err)
		}
	}

	return &BracketTable{schedules: schedules}, nil
}

func validateSchedule(brackets []Bracket) error {
	if !brackets[0].Lower.IsZero() {
		return fmt.Errorf("first bracket starts at %s, not 0", brackets[0].Lower)
	}
	last := len(brackets) - 1
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("rate %s out of range", b.Rate)
		}
		if i == last {
			if b.Upper.Valid {
				return errors.New("top bracket must be unbounded")
			}
			continue
		}
		if !b.Upper.Valid {
			return fmt.Errorf("bracket starting at %s is unbounded but not last", b.Lower)
		}
		if !b.Upper.Decimal.GreaterThan(b.Lower) {
			return fmt.Errorf("bracket starting at %s is empty", b.Lower)
		}
		if !b.Upper.Decimal.Equal(brackets[i+1].Lower) {
			return fmt.Errorf("gap or overlap between %s and %s", b.Upper.Decimal, brackets[i+1].Lower)
		}
	}
	return nil
}

// BracketsFor returns the ordered schedule for a filing status, jurisdiction
// and year. The returned slice is a copy.
func (t *BracketTable) BracketsFor(status FilingStatus, jurisdiction Jurisdiction, year int) ([]Bracket, error) {
	if t != nil {
		if brackets, ok := t.schedules[bracketKey{year: year, status: status, jurisdiction: jurisdiction}]; ok {
			return slices.Clone(brackets), nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s %d", ErrBracketsNotFound, jurisdiction, status, year)
}

// Years lists the tax years that have at least one schedule, ascending.
func (t *BracketTable) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for key := range t.schedules {
		if !seen[key.year] {
			seen[key.year] = true
			years = append(years, key.year)
		}
	}
	slices.Sort(years)
	return years
}

// Liability walks the schedule and taxes each slice of taxable income at its
// bracket's marginal rate. The result is unrounded and never negative.
func Liability(brackets []Bracket, taxable decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	if !taxable.IsPositive() {
		return tax
	}
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Lower) {
			break
		}
		top := taxable
		if b.Upper.Valid && b.Upper.Decimal.LessThan(taxable) {
			top = b.Upper.Decimal
		}
		tax = tax.Add(top.Sub(b.Lower).Mul(b.Rate))
	}
	return tax
}
