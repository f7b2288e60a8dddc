package reference

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

// Amounts are quoted strings in the files so they never pass through float64.

type yearFile struct {
	Year               int                                `yaml:"year"`
	StandardDeductions map[string]string                  `yaml:"standard_deductions"`
	Brackets           map[string]map[string][]bracketRow `yaml:"brackets"`
	Credits            creditsFile                        `yaml:"credits"`
}

type bracketRow struct {
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper"`
	Rate  string `yaml:"rate"`
}

type tierRow struct {
	UpTo string `yaml:"up_to"`
	Rate string `yaml:"rate"`
}

type phaseOutRow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type creditsFile struct {
	ChildTax struct {
		PerChild          string            `yaml:"per_child"`
		PerOtherDependent string            `yaml:"per_other_dependent"`
		PhaseOutIncrement string            `yaml:"phase_out_increment"`
		PhaseOutReduction string            `yaml:"phase_out_reduction"`
		PhaseOutStart     map[string]string `yaml:"phase_out_start"`
	} `yaml:"child_tax"`

	DependentCare struct {
		PerChildExpenseCap string `yaml:"per_child_expense_cap"`
		MaxExpenses        string `yaml:"max_expenses"`
		MaxRate            string `yaml:"max_rate"`
		MinRate            string `yaml:"min_rate"`
		ReductionStart     string `yaml:"reduction_start"`
		ReductionStep      string `yaml:"reduction_step"`
		ReductionPerStep   string `yaml:"reduction_per_step"`
	} `yaml:"dependent_care"`

	Education struct {
		AOTCFullExpenses    string                 `yaml:"aotc_full_expenses"`
		AOTCPartialExpenses string                 `yaml:"aotc_partial_expenses"`
		AOTCPartialRate     string                 `yaml:"aotc_partial_rate"`
		LLCRate             string                 `yaml:"llc_rate"`
		LLCMaxExpenses      string                 `yaml:"llc_max_expenses"`
		PhaseOut            map[string]phaseOutRow `yaml:"phase_out"`
	} `yaml:"education"`

	Savers struct {
		ContributionCap map[string]string    `yaml:"contribution_cap"`
		Tiers           map[string][]tierRow `yaml:"tiers"`
	} `yaml:"savers"`
}

func (c creditsFile) parameters(p *parser) taxcalc.CreditParameters {
	params := taxcalc.CreditParameters{
		ChildTax: taxcalc.ChildTaxParameters{
			PerChild:          p.amount("child_tax.per_child", c.ChildTax.PerChild),
			PerOtherDependent: p.amount("child_tax.per_other_dependent", c.ChildTax.PerOtherDependent),
			PhaseOutIncrement: p.amount("child_tax.phase_out_increment", c.ChildTax.PhaseOutIncrement),
			PhaseOutReduction: p.amount("child_tax.phase_out_reduction", c.ChildTax.PhaseOutReduction),
			PhaseOutStart:     p.byStatus("child_tax.phase_out_start", c.ChildTax.PhaseOutStart),
		},
		DependentCare: taxcalc.DependentCareParameters{
			PerChildExpenseCap: p.amount("dependent_care.per_child_expense_cap", c.DependentCare.PerChildExpenseCap),
			MaxExpenses:        p.amount("dependent_care.max_expenses", c.DependentCare.MaxExpenses),
			MaxRate:            p.amount("dependent_care.max_rate", c.DependentCare.MaxRate),
			MinRate:            p.amount("dependent_care.min_rate", c.DependentCare.MinRate),
			ReductionStart:     p.amount("dependent_care.reduction_start", c.DependentCare.ReductionStart),
			ReductionStep:      p.amount("dependent_care.reduction_step", c.DependentCare.ReductionStep),
			ReductionPerStep:   p.amount("dependent_care.reduction_per_step", c.DependentCare.ReductionPerStep),
		},
		Education: taxcalc.EducationParameters{
			AOTCFullExpenses:    p.amount("education.aotc_full_expenses", c.Education.AOTCFullExpenses),
			AOTCPartialExpenses: p.amount("education.aotc_partial_expenses", c.Education.AOTCPartialExpenses),
			AOTCPartialRate:     p.amount("education.aotc_partial_rate", c.Education.AOTCPartialRate),
			LLCRate:             p.amount("education.llc_rate", c.Education.LLCRate),
			LLCMaxExpenses:      p.amount("education.llc_max_expenses", c.Education.LLCMaxExpenses),
			PhaseOut:            make(map[taxcalc.FilingStatus]taxcalc.PhaseOut),
		},
		Savers: taxcalc.SaversParameters{
			ContributionCap: p.byStatus("savers.contribution_cap", c.Savers.ContributionCap),
			Tiers:           make(map[taxcalc.FilingStatus][]taxcalc.AGITier),
		},
	}

	for name, row := range c.Education.PhaseOut {
		field := "education.phase_out." + name
		params.Education.PhaseOut[p.status(name)] = taxcalc.PhaseOut{
			Start: p.amount(field+".start", row.Start),
			End:   p.amount(field+".end", row.End),
		}
	}
	for name, rows := range c.Savers.Tiers {
		tiers := make([]taxcalc.AGITier, 0, len(rows))
		for i, row := range rows {
			field := fmt.Sprintf("savers.tiers.%s[%d]", name, i)
			tiers = append(tiers, taxcalc.AGITier{
				UpTo: p.optional(field+".up_to", row.UpTo),
				Rate: p.amount(field+".rate", row.Rate),
			})
		}
		params.Savers.Tiers[p.status(name)] = tiers
	}
	return params
}

// parser keeps the first conversion error so a whole file can be read
// before failing.
type parser struct {
	source string
	err    error
}

func (p *parser) fail(field string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%s: %s: %w", p.source, field, err)
	}
}

func (p *parser) amount(field, value string) decimal.Decimal {
	if value == "" {
		p.fail(field, fmt.Errorf("missing value"))
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		p.fail(field, err)
	}
	return d
}

func (p *parser) optional(field, value string) decimal.NullDecimal {
	if value == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.amount(field, value))
}

func (p *parser) status(name string) taxcalc.FilingStatus {
	status, err := taxcalc.ParseFilingStatus(name)
	if err != nil {
		p.fail(name, err)
	}
	return status
}

func (p *parser) byStatus(field string, values map[string]string) map[taxcalc.FilingStatus]decimal.Decimal {
	out := make(map[taxcalc.FilingStatus]decimal.Decimal, len(values))
	for name, value := range values {
		out[p.status(name)] = p.amount(field+"."+name, value)
	}
	return out
}
