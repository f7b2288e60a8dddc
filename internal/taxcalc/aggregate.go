package taxcalc

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PersonalInfo is the taxpayer's contact and identity data on a return.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	DateOfBirth string `json:"dateOfBirth"`
	SSN         string `json:"ssn"`
}

// Totals are the derived amounts of a return. Only the Calculator writes them.
type Totals struct {
	TotalIncome            decimal.Decimal `json:"totalIncome"`
	AdjustedGrossIncome    decimal.Decimal `json:"adjustedGrossIncome"`
	TaxableIncome          decimal.Decimal `json:"taxableIncome"`
	FederalTaxWithheld     decimal.Decimal `json:"fedTaxWithheld"`
	StateTaxWithheld       decimal.Decimal `json:"stateTaxWithheld"`
	SocialSecurityWithheld decimal.Decimal `json:"socialSecurityTaxWithheld"`
	MedicareWithheld       decimal.Decimal `json:"medicareTaxWithheld"`
	FederalTax             decimal.Decimal `json:"federalTax"`
	StateTax               decimal.Decimal `json:"stateTax"`
	TotalCredits           decimal.Decimal `json:"totalCredits"`
	Credits                []CreditLine    `json:"credits"`
	FederalRefund          decimal.Decimal `json:"federalRefund"`
	StateRefund            decimal.Decimal `json:"stateRefund"`
}

// TaxReturn is the root of a return aggregate.
type TaxReturn struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"userId"`
	Year         int          `json:"year"`
	FilingStatus FilingStatus `json:"filingStatus"`
	PersonalInfo
	Totals Totals `json:"totals"`
}

// W2 is a wage statement attached to a return.
type W2 struct {
	ID                     int64           `json:"id"`
	TaxReturnID            int64           `json:"taxReturnId"`
	UserID                 int64           `json:"userId"`
	Year                   int             `json:"year"`
	EmployerName           string          `json:"employerName"`
	EmployerStreetAddress  string          `json:"employerStreetAddress"`
	EmployerCity           string          `json:"employerCity"`
	EmployerState          string          `json:"employerState"`
	EmployerZip            string          `json:"employerZip"`
	Ein                    string          `json:"ein"`
	WagesAndTips           decimal.Decimal `json:"wagesAndTips"`
	FederalTaxWithheld     decimal.Decimal `json:"federalIncomeTaxWithheld"`
	StateTaxWithheld       decimal.Decimal `json:"stateIncomeTaxWithheld"`
	SocialSecurityWithheld decimal.Decimal `json:"socialSecurityTaxWithheld"`
	MedicareWithheld       decimal.Decimal `json:"medicareTaxWithheld"`
	ImageKey               string          `json:"imageKey,omitempty"`
}

// OtherIncome holds non-wage income sources of a return.
type OtherIncome struct {
	ID                    int64           `json:"id"`
	TaxReturnID           int64           `json:"taxReturnId"`
	LongTermCapitalGains  decimal.Decimal `json:"longTermCapitalGains"`
	ShortTermCapitalGains decimal.Decimal `json:"shortTermCapitalGains"`
	OtherInvestmentIncome decimal.Decimal `json:"otherInvestmentIncome"`
	NetBusinessIncome     decimal.Decimal `json:"netBusinessIncome"`
	AdditionalIncome      decimal.Decimal `json:"additionalIncome"`
}

// Total sums every income source. A nil receiver totals zero.
func (o *OtherIncome) Total() decimal.Decimal {
	if o == nil {
		return decimal.Zero
	}
	return decimal.Sum(
		o.LongTermCapitalGains,
		o.ShortTermCapitalGains,
		o.OtherInvestmentIncome,
		o.NetBusinessIncome,
		o.AdditionalIncome,
	)
}

// ReturnAggregate is a return together with all of its components,
// assembled per request. Components point back to the return by ID only.
type ReturnAggregate struct {
	Return      TaxReturn          `json:"taxReturn"`
	W2s         []W2               `json:"w2s"`
	Deductions  []ClaimedDeduction `json:"deductions"`
	Credit      *CreditRecord      `json:"credit,omitempty"`
	OtherIncome *OtherIncome       `json:"otherIncome,omitempty"`
}

// Clone returns a deep copy so callers never share component storage.
func (a ReturnAggregate) Clone() ReturnAggregate {
	out := a
	out.W2s = slices.Clone(a.W2s)
	out.Deductions = slices.Clone(a.Deductions)
	out.Return.Totals.Credits = slices.Clone(a.Return.Totals.Credits)
	if a.Credit != nil {
		credit := *a.Credit
		out.Credit = &credit
	}
	if a.OtherIncome != nil {
		other := *a.OtherIncome
		out.OtherIncome = &other
	}
	return out
}
