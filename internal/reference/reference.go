// Package reference loads the tax tables the calculator works from: the
// embedded yearly YAML files, optionally overridden by bracket rows stored in
// the database.
package reference

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var defaults embed.FS

// BracketSource lists bracket rows kept in the database.
type BracketSource interface {
	ListTaxBrackets(ctx context.Context) ([]db.TaxBracket, error)
}

type bracketKey struct {
	year         int
	status       taxcalc.FilingStatus
	jurisdiction taxcalc.Jurisdiction
}

// tables is the parsed, not yet validated content of the reference files.
type tables struct {
	brackets           []taxcalc.BracketEntry
	standardDeductions map[int]map[taxcalc.FilingStatus]decimal.Decimal
	credits            map[int]taxcalc.CreditParameters
}

// LoadDefaults builds reference data from the embedded yearly files only.
func LoadDefaults() (*taxcalc.ReferenceData, error) {
	t, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	return t.build()
}

// Load builds reference data from the embedded files and replaces any
// schedule that also exists in the database with the database rows.
func Load(ctx context.Context, source BracketSource) (*taxcalc.ReferenceData, error) {
	t, err := loadEmbedded()
	if err != nil {
		return nil, err
	}

	rows, err := source.ListTaxBrackets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax brackets: %w", err)
	}
	stored, err := BracketEntriesFromRows(rows)
	if err != nil {
		return nil, err
	}
	t.brackets = mergeBrackets(t.brackets, stored)

	logger.Log.Info("Loaded tax reference data",
		zap.Int("stored_bracket_rows", len(stored)),
		zap.Int("total_bracket_rows", len(t.brackets)),
	)
	return t.build()
}

// BracketEntriesFromRows converts stored bracket rows into calculator entries.
func BracketEntriesFromRows(rows []db.TaxBracket) ([]taxcalc.BracketEntry, error) {
	entries := make([]taxcalc.BracketEntry, 0, len(rows))
	for _, row := range rows {
		status, err := taxcalc.FilingStatusFromID(row.FilingStatus)
		if err != nil {
			return nil, fmt.Errorf("tax bracket %d: %w", row.ID, err)
		}
		entries = append(entries, taxcalc.BracketEntry{
			Year:         int(row.Year),
			FilingStatus: status,
			Jurisdiction: taxcalc.Jurisdiction(row.Jurisdiction),
			Bracket: taxcalc.Bracket{
				Lower: row.LowerBound,
				Upper: row.UpperBound,
				Rate:  row.Rate,
			},
		})
	}
	return entries, nil
}

func mergeBrackets(base, override []taxcalc.BracketEntry) []taxcalc.BracketEntry {
	overridden := make(map[bracketKey]bool)
	for _, e := range override {
		overridden[bracketKey{e.Year, e.FilingStatus, e.Jurisdiction}] = true
	}
	merged := make([]taxcalc.BracketEntry, 0, len(base)+len(override))
	for _, e := range base {
		if !overridden[bracketKey{e.Year, e.FilingStatus, e.Jurisdiction}] {
			merged = append(merged, e)
		}
	}
	return append(merged, override...)
}

func loadEmbedded() (*tables, error) {
	files, err := fs.Glob(defaults, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list reference files: %w", err)
	}

	t := &tables{
		standardDeductions: make(map[int]map[taxcalc.FilingStatus]decimal.Decimal),
		credits:            make(map[int]taxcalc.CreditParameters),
	}
	for _, name := range files {
		raw, err := defaults.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := t.add(path.Base(name), raw); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *tables) add(name string, raw []byte) error {
	var file yearFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if file.Year == 0 {
		return fmt.Errorf("%s: missing year", name)
	}
	if _, exists := t.credits[file.Year]; exists {
		return fmt.Errorf("%s: year %d defined twice", name, file.Year)
	}

	p := &parser{source: name}
	deductions := make(map[taxcalc.FilingStatus]decimal.Decimal)
	for statusName, amount := range file.StandardDeductions {
		deductions[p.status(statusName)] = p.amount("standard_deductions."+statusName, amount)
	}
	for jurisdiction, schedules := range file.Brackets {
		for statusName, rows := range schedules {
			status := p.status(statusName)
			for i, row := range rows {
				field := fmt.Sprintf("brackets.%s.%s[%d]", jurisdiction, statusName, i)
				t.brackets = append(t.brackets, taxcalc.BracketEntry{
					Year:         file.Year,
					FilingStatus: status,
					Jurisdiction: taxcalc.Jurisdiction(jurisdiction),
					Bracket: taxcalc.Bracket{
						Lower: p.amount(field+".lower", row.Lower),
						Upper: p.optional(field+".upper", row.Upper),
						Rate:  p.amount(field+".rate", row.Rate),
					},
				})
			}
		}
	}
	credits := file.Credits.parameters(p)
	if p.err != nil {
		return p.err
	}

	t.standardDeductions[file.Year] = deductions
	t.credits[file.Year] = credits
	return nil
}

func (t *tables) build() (*taxcalc.ReferenceData, error) {
	table, err := taxcalc.NewBracketTable(t.brackets)
	if err != nil {
		return nil, err
	}
	return &taxcalc.ReferenceData{
		Brackets:           table,
		StandardDeductions: t.standardDeductions,
		CreditParameters:   t.credits,
	}, nil
}
