package requests

import "github.com/shopspring/decimal"

// W2Request represents the request body for creating or updating a W-2
type W2Request struct {
	ID                     int64           `json:"id" binding:"min=0"`
	EmployerName           string          `json:"employerName" binding:"required,max=255"`
	EmployerStreetAddress  string          `json:"employerStreetAddress" binding:"max=255"`
	EmployerCity           string          `json:"employerCity" binding:"max=100"`
	EmployerState          string          `json:"employerState" binding:"omitempty,len=2,alpha"`
	EmployerZip            string          `json:"employerZip" binding:"omitempty,zip5"`
	Ein                    string          `json:"ein" binding:"omitempty,ein"`
	WagesAndTips           decimal.Decimal `json:"wagesAndTips" binding:"nonnegmoney"`
	FederalTaxWithheld     decimal.Decimal `json:"federalIncomeTaxWithheld" binding:"nonnegmoney"`
	StateTaxWithheld       decimal.Decimal `json:"stateIncomeTaxWithheld" binding:"nonnegmoney"`
	SocialSecurityWithheld decimal.Decimal `json:"socialSecurityTaxWithheld" binding:"nonnegmoney"`
	MedicareWithheld       decimal.Decimal `json:"medicareTaxWithheld" binding:"nonnegmoney"`
}

// ReplaceW2sRequest replaces every W-2 on a return
type ReplaceW2sRequest struct {
	W2s []W2Request `json:"w2s" binding:"dive"`
}
