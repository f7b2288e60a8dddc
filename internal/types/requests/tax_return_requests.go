package requests

import "github.com/shopspring/decimal"

// PersonalInfoRequest is the taxpayer section shared by create and update.
type PersonalInfoRequest struct {
	FirstName   string `json:"firstName" binding:"max=100"`
	LastName    string `json:"lastName" binding:"max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Address     string `json:"address" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"omitempty,len=2,alpha"`
	Zip         string `json:"zip" binding:"omitempty,zip5"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	SSN         string `json:"ssn" binding:"omitempty,ssn"`
}

// CreateTaxReturnRequest represents the request body for creating a tax return
type CreateTaxReturnRequest struct {
	Year         int    `json:"year" binding:"required,min=2015"`
	FilingStatus string `json:"filingStatus" binding:"required,filingstatus"`
	PersonalInfoRequest
}

// UpdateTaxReturnRequest represents the request body for updating a tax return
type UpdateTaxReturnRequest struct {
	Year         int    `json:"year" binding:"required,min=2015"`
	FilingStatus string `json:"filingStatus" binding:"required,filingstatus"`
	PersonalInfoRequest
}

// ClaimDeductionRequest represents the request body for claiming a deduction
type ClaimDeductionRequest struct {
	DeductionID int64           `json:"deductionId" binding:"required,min=1"`
	AmountSpent decimal.Decimal `json:"amountSpent" binding:"nonnegmoney"`
}

// UpdateDeductionRequest represents the request body for changing a claimed amount
type UpdateDeductionRequest struct {
	AmountSpent decimal.Decimal `json:"amountSpent" binding:"nonnegmoney"`
}

// CreditRequest represents the credit inputs of a return
type CreditRequest struct {
	NumDependents        int             `json:"numDependents" binding:"min=0,max=50"`
	NumDependentsAOTC    int             `json:"numDependentsAotc" binding:"min=0,max=50"`
	NumChildren          int             `json:"numChildren" binding:"min=0,max=50"`
	ChildCareExpenses    decimal.Decimal `json:"childCareExpenses" binding:"nonnegmoney"`
	EducationExpenses    decimal.Decimal `json:"educationExpenses" binding:"nonnegmoney"`
	LLCEducationExpenses decimal.Decimal `json:"llcEducationExpenses" binding:"nonnegmoney"`
	IRAContributions     decimal.Decimal `json:"iraContributions" binding:"nonnegmoney"`
	ClaimedAsDependent   bool            `json:"claimedAsDependent"`
	ClaimLLCCredit       bool            `json:"claimLlcCredit"`
}

// OtherIncomeRequest represents non-wage income. Amounts may be negative
// to report losses.
type OtherIncomeRequest struct {
	LongTermCapitalGains  decimal.Decimal `json:"longTermCapitalGains" binding:"money"`
	ShortTermCapitalGains decimal.Decimal `json:"shortTermCapitalGains" binding:"money"`
	OtherInvestmentIncome decimal.Decimal `json:"otherInvestmentIncome" binding:"money"`
	NetBusinessIncome     decimal.Decimal `json:"netBusinessIncome" binding:"money"`
	AdditionalIncome      decimal.Decimal `json:"additionalIncome" binding:"money"`
}
