package taxcalc

import "github.com/shopspring/decimal"

// CreditRecord carries the credit inputs of a return. A return has at most one.
type CreditRecord struct {
	ID                   int64           `json:"id"`
	TaxReturnID          int64           `json:"taxReturnId"`
	NumDependents        int             `json:"numDependents"`
	NumDependentsAOTC    int             `json:"numDependentsAotc"`
	NumChildren          int             `json:"numChildren"`
	ChildCareExpenses    decimal.Decimal `json:"childCareExpenses"`
	EducationExpenses    decimal.Decimal `json:"educationExpenses"`
	LLCEducationExpenses decimal.Decimal `json:"llcEducationExpenses"`
	IRAContributions     decimal.Decimal `json:"iraContributions"`
	ClaimedAsDependent   bool            `json:"claimedAsDependent"`
	ClaimLLCCredit       bool            `json:"claimLlcCredit"`
}

// Credit computes one credit from the credit record and AGI.
//
// Credits whose amount depends on the taxpayer's dependents report
// DependentBased so the calculator can zero them when the taxpayer is
// claimed as someone else's dependent.
type Credit interface {
	Name() string
	DependentBased() bool
	Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal
}

// CreditLine is the finalized amount of a single credit on a return.
type CreditLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PhaseOut reduces a credit linearly from full at Start to nothing at End.
type PhaseOut struct {
	Start decimal.Decimal
	End   decimal.Decimal
}

// Remaining is the fraction of the credit still allowed at agi.
func (p PhaseOut) Remaining(agi decimal.Decimal) decimal.Decimal {
	if agi.LessThanOrEqual(p.Start) {
		return decimal.NewFromInt(1)
	}
	if agi.GreaterThanOrEqual(p.End) {
		return decimal.Zero
	}
	return p.End.Sub(agi).Div(p.End.Sub(p.Start))
}

// AGITier applies Rate to AGI up to and including UpTo. An invalid UpTo
// matches any AGI.
type AGITier struct {
	UpTo decimal.NullDecimal
	Rate decimal.Decimal
}

func tierRate(tiers []AGITier, agi decimal.Decimal) decimal.Decimal {
	for _, tier := range tiers {
		if !tier.UpTo.Valid || agi.LessThanOrEqual(tier.UpTo.Decimal) {
			return tier.Rate
		}
	}
	return decimal.Zero
}

// StepReduction reduces a credit by Reduction for every started Increment of
// AGI above Start.
type StepReduction struct {
	Start     decimal.Decimal
	Increment decimal.Decimal
	Reduction decimal.Decimal
}

func (s StepReduction) apply(gross, agi decimal.Decimal) decimal.Decimal {
	excess := agi.Sub(s.Start)
	if !excess.IsPositive() || !s.Increment.IsPositive() {
		return gross
	}
	steps := excess.Div(s.Increment).Ceil()
	return nonNegative(gross.Sub(steps.Mul(s.Reduction)))
}

// ChildTaxParameters configures the child and other-dependent credits.
type ChildTaxParameters struct {
	PerChild          decimal.Decimal
	PerOtherDependent decimal.Decimal
	PhaseOutStart     map[FilingStatus]decimal.Decimal
	PhaseOutIncrement decimal.Decimal
	PhaseOutReduction decimal.Decimal
}

// DependentCareParameters configures the child and dependent care credit.
type DependentCareParameters struct {
	PerChildExpenseCap decimal.Decimal
	MaxExpenses        decimal.Decimal
	MaxRate            decimal.Decimal
	MinRate            decimal.Decimal
	ReductionStart     decimal.Decimal
	ReductionStep      decimal.Decimal
	ReductionPerStep   decimal.Decimal
}

// EducationParameters configures the American Opportunity and Lifetime
// Learning credits. A filing status without a PhaseOut entry is ineligible.
type EducationParameters struct {
	AOTCFullExpenses    decimal.Decimal
	AOTCPartialExpenses decimal.Decimal
	AOTCPartialRate     decimal.Decimal
	LLCRate             decimal.Decimal
	LLCMaxExpenses      decimal.Decimal
	PhaseOut            map[FilingStatus]PhaseOut
}

// SaversParameters configures the retirement savings contributions credit.
type SaversParameters struct {
	ContributionCap map[FilingStatus]decimal.Decimal
	Tiers           map[FilingStatus][]AGITier
}

// CreditParameters holds every credit setting for one tax year.
type CreditParameters struct {
	ChildTax      ChildTaxParameters
	DependentCare DependentCareParameters
	Education     EducationParameters
	Savers        SaversParameters
}

// CreditsFor builds the credits available to a filing status. Adding a credit
// means adding a type that implements Credit and appending it here.
func CreditsFor(status FilingStatus, params CreditParameters) []Credit {
	childPhaseOut := StepReduction{
		Start:     params.ChildTax.PhaseOutStart[status],
		Increment: params.ChildTax.PhaseOutIncrement,
		Reduction: params.ChildTax.PhaseOutReduction,
	}
	educationPhaseOut, educationEligible := params.Education.PhaseOut[status]

	return []Credit{
		ChildTaxCredit{PerChild: params.ChildTax.PerChild, PhaseOut: childPhaseOut},
		OtherDependentCredit{PerDependent: params.ChildTax.PerOtherDependent, PhaseOut: childPhaseOut},
		DependentCareCredit{Params: params.DependentCare},
		AmericanOpportunityCredit{
			FullExpenses:    params.Education.AOTCFullExpenses,
			PartialExpenses: params.Education.AOTCPartialExpenses,
			PartialRate:     params.Education.AOTCPartialRate,
			PhaseOut:        educationPhaseOut,
			Eligible:        educationEligible,
		},
		LifetimeLearningCredit{
			Rate:        params.Education.LLCRate,
			MaxExpenses: params.Education.LLCMaxExpenses,
			PhaseOut:    educationPhaseOut,
			Eligible:    educationEligible,
		},
		RetirementSavingsCredit{
			ContributionCap: params.Savers.ContributionCap[status],
			Tiers:           params.Savers.Tiers[status],
		},
	}
}

// ChildTaxCredit is a flat amount per qualifying child.
type ChildTaxCredit struct {
	PerChild decimal.Decimal
	PhaseOut StepReduction
}

func (ChildTaxCredit) Name() string         { return "child_tax_credit" }
func (ChildTaxCredit) DependentBased() bool { return true }

func (c ChildTaxCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	return c.PhaseOut.apply(c.PerChild.Mul(count(rec.NumChildren)), agi)
}

// OtherDependentCredit covers dependents that are not qualifying children.
type OtherDependentCredit struct {
	PerDependent decimal.Decimal
	PhaseOut     StepReduction
}

func (OtherDependentCredit) Name() string         { return "other_dependent_credit" }
func (OtherDependentCredit) DependentBased() bool { return true }

func (c OtherDependentCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	others := count(rec.NumDependents - rec.NumChildren)
	return c.PhaseOut.apply(c.PerDependent.Mul(others), agi)
}

// DependentCareCredit refunds a share of child care expenses. The share
// starts at MaxRate and drops one step per started ReductionStep of AGI above
// ReductionStart, never below MinRate.
type DependentCareCredit struct {
	Params DependentCareParameters
}

func (DependentCareCredit) Name() string         { return "dependent_care_credit" }
func (DependentCareCredit) DependentBased() bool { return true }

func (c DependentCareCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	p := c.Params
	qualifying := decimal.Min(
		nonNegative(rec.ChildCareExpenses),
		p.PerChildExpenseCap.Mul(count(rec.NumChildren)),
		p.MaxExpenses,
	)
	if !qualifying.IsPositive() {
		return decimal.Zero
	}
	return qualifying.Mul(c.rate(agi))
}

func (c DependentCareCredit) rate(agi decimal.Decimal) decimal.Decimal {
	p := c.Params
	excess := agi.Sub(p.ReductionStart)
	if !excess.IsPositive() || !p.ReductionStep.IsPositive() {
		return p.MaxRate
	}
	steps := excess.Div(p.ReductionStep).Ceil()
	return decimal.Max(p.MinRate, p.MaxRate.Sub(steps.Mul(p.ReductionPerStep)))
}

// AmericanOpportunityCredit allows, per eligible student, all of the first
// FullExpenses plus PartialRate of the next PartialExpenses of education
// expenses, phased out linearly over AGI.
type AmericanOpportunityCredit struct {
	FullExpenses    decimal.Decimal
	PartialExpenses decimal.Decimal
	PartialRate     decimal.Decimal
	PhaseOut        PhaseOut
	Eligible        bool
}

func (AmericanOpportunityCredit) Name() string         { return "american_opportunity_credit" }
func (AmericanOpportunityCredit) DependentBased() bool { return true }

func (c AmericanOpportunityCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	students := count(rec.NumDependentsAOTC)
	if !c.Eligible || students.IsZero() {
		return decimal.Zero
	}
	qualified := decimal.Min(nonNegative(rec.EducationExpenses), c.FullExpenses.Add(c.PartialExpenses).Mul(students))
	full := decimal.Min(qualified, c.FullExpenses.Mul(students))
	gross := full.Add(qualified.Sub(full).Mul(c.PartialRate))
	return gross.Mul(c.PhaseOut.Remaining(agi))
}

// LifetimeLearningCredit applies only when the taxpayer elects it.
type LifetimeLearningCredit struct {
	Rate        decimal.Decimal
	MaxExpenses decimal.Decimal
	PhaseOut    PhaseOut
	Eligible    bool
}

func (LifetimeLearningCredit) Name() string         { return "lifetime_learning_credit" }
func (LifetimeLearningCredit) DependentBased() bool { return false }

func (c LifetimeLearningCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	if !c.Eligible || !rec.ClaimLLCCredit {
		return decimal.Zero
	}
	expenses := decimal.Min(nonNegative(rec.LLCEducationExpenses), c.MaxExpenses)
	return expenses.Mul(c.Rate).Mul(c.PhaseOut.Remaining(agi))
}

// RetirementSavingsCredit matches IRA contributions, up to ContributionCap,
// at a rate chosen by AGI tier.
type RetirementSavingsCredit struct {
	ContributionCap decimal.Decimal
	Tiers           []AGITier
}

func (RetirementSavingsCredit) Name() string         { return "retirement_savings_credit" }
func (RetirementSavingsCredit) DependentBased() bool { return false }

func (c RetirementSavingsCredit) Amount(rec CreditRecord, agi decimal.Decimal) decimal.Decimal {
	contribution := decimal.Min(nonNegative(rec.IRAContributions), c.ContributionCap)
	return contribution.Mul(tierRate(c.Tiers, agi))
}
