package responses

// Monetary amounts are rendered as strings with two decimal places.

// CreditLineResponse is one computed credit
type CreditLineResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// TotalsResponse holds the computed amounts of a return
type TotalsResponse struct {
	TotalIncome               string               `json:"totalIncome"`
	AdjustedGrossIncome       string               `json:"adjustedGrossIncome"`
	TaxableIncome             string               `json:"taxableIncome"`
	FedTaxWithheld            string               `json:"fedTaxWithheld"`
	StateTaxWithheld          string               `json:"stateTaxWithheld"`
	SocialSecurityTaxWithheld string               `json:"socialSecurityTaxWithheld"`
	MedicareTaxWithheld       string               `json:"medicareTaxWithheld"`
	FederalTax                string               `json:"federalTax"`
	StateTax                  string               `json:"stateTax"`
	TotalCredits              string               `json:"totalCredits"`
	Credits                   []CreditLineResponse `json:"credits"`
	FederalRefund             string               `json:"federalRefund"`
	StateRefund               string               `json:"stateRefund"`
}

// TaxReturnResponse represents a tax return header with its totals
type TaxReturnResponse struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"userId"`
	Year         int            `json:"year"`
	FilingStatus string         `json:"filingStatus"`
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	PhoneNumber  string         `json:"phoneNumber"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Zip          string         `json:"zip"`
	DateOfBirth  string         `json:"dateOfBirth,omitempty"`
	SSN          string         `json:"ssn,omitempty"`
	Totals       TotalsResponse `json:"totals"`
}

// TaxReturnDetailResponse is a return with every component attached
type TaxReturnDetailResponse struct {
	TaxReturnResponse
	W2s         []W2Response               `json:"w2s"`
	Deductions  []ClaimedDeductionResponse `json:"deductions"`
	Credit      *CreditResponse            `json:"credit,omitempty"`
	OtherIncome *OtherIncomeResponse       `json:"otherIncome,omitempty"`
}

// RefundResponse contains the refund amounts of a return. Negative values are amounts owed.
type RefundResponse struct {
	TaxReturnID   int64  `json:"taxReturnId"`
	FederalRefund string `json:"federalRefund"`
	StateRefund   string `json:"stateRefund"`
}

// FilingStatusResponse describes one filing status
type FilingStatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DeductionResponse is a reference deduction
type DeductionResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Itemized bool    `json:"itemized"`
	AGILimit *string `json:"agiLimit"`
}

// ClaimedDeductionResponse is a deduction claimed on a return
type ClaimedDeductionResponse struct {
	ID            int64   `json:"id"`
	TaxReturnID   int64   `json:"taxReturnId"`
	DeductionID   int64   `json:"deductionId"`
	DeductionName string  `json:"deductionName"`
	Itemized      bool    `json:"itemized"`
	AmountSpent   string  `json:"amountSpent"`
	AGILimit      *string `json:"agiLimit"`
}

// CreditResponse is the credit input record of a return
type CreditResponse struct {
	ID                   int64  `json:"id"`
	TaxReturnID          int64  `json:"taxReturnId"`
	NumDependents        int    `json:"numDependents"`
	NumDependentsAOTC    int    `json:"numDependentsAotc"`
	NumChildren          int    `json:"numChildren"`
	ChildCareExpenses    string `json:"childCareExpenses"`
	EducationExpenses    string `json:"educationExpenses"`
	LLCEducationExpenses string `json:"llcEducationExpenses"`
	IRAContributions     string `json:"iraContributions"`
	ClaimedAsDependent   bool   `json:"claimedAsDependent"`
	ClaimLLCCredit       bool   `json:"claimLlcCredit"`
}

// OtherIncomeResponse is the non-wage income of a return
type OtherIncomeResponse struct {
	ID                    int64  `json:"id"`
	TaxReturnID           int64  `json:"taxReturnId"`
	LongTermCapitalGains  string `json:"longTermCapitalGains"`
	ShortTermCapitalGains string `json:"shortTermCapitalGains"`
	OtherInvestmentIncome string `json:"otherInvestmentIncome"`
	NetBusinessIncome     string `json:"netBusinessIncome"`
	AdditionalIncome      string `json:"additionalIncome"`
}

// ListResponse wraps collections
type ListResponse[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}
