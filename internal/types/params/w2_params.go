package params

import "github.com/shopspring/decimal"

// W2Params describes a wage statement. ID is zero for new statements.
type W2Params struct {
	ID                     int64
	UserID                 int64
	TaxReturnID            int64
	EmployerName           string
	EmployerStreetAddress  string
	EmployerCity           string
	EmployerState          string
	EmployerZip            string
	Ein                    string
	WagesAndTips           decimal.Decimal
	FederalTaxWithheld     decimal.Decimal
	StateTaxWithheld       decimal.Decimal
	SocialSecurityWithheld decimal.Decimal
	MedicareWithheld       decimal.Decimal
}

// ListW2sParams filters a user's W-2s. A nil Year lists every year.
type ListW2sParams struct {
	UserID int64
	Year   *int
}

// ReplaceW2sParams makes W2s the complete set of statements on a return.
// Entries with an ID update that statement, entries without one are created,
// and statements missing from the list are deleted.
type ReplaceW2sParams struct {
	UserID      int64
	TaxReturnID int64
	W2s         []W2Params
}

// UploadW2ImageParams carries a scanned W-2.
type UploadW2ImageParams struct {
	UserID      int64
	W2ID        int64
	ContentType string
	Data        []byte
}

// W2Image is a stored W-2 scan.
type W2Image struct {
	Key         string
	ContentType string
	Data        []byte
}

// CleanupResult summarizes the removal of a user's data.
type CleanupResult struct {
	UserID            int64
	TaxReturnsDeleted int64
	ImagesDeleted     int
	ImagesFailed      int
}
