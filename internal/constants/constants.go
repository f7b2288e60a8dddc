package constants

// Environments
const (
	ProdEnvironment = "prod"
	ErrorLevel      = "error"
)

// ServiceName is attached to every log line.
const ServiceName = "tax-service"

// Request headers
const (
	UserIDHeader        = "User-ID"
	CorrelationIDHeader = "X-Correlation-ID"
)

// Error messages returned to API callers
const (
	TaxReturnNotFound        = "Tax return not found"
	W2NotFound               = "W2 not found"
	DeductionNotFound        = "Deduction not found"
	ClaimedDeductionNotFound = "Claimed deduction not found"
	CreditNotFound           = "Credit not found"
	OtherIncomeNotFound      = "Other income not found"
	ImageNotFound            = "Image not found"
	InvalidTaxReturnID       = "Invalid tax return ID"
	InvalidW2ID              = "Invalid W2 ID"
	InvalidDeductionID       = "Invalid deduction ID"
	InvalidRequestBody       = "Invalid request body"
	InvalidYear              = "Invalid year"
	InvalidFilingStatus      = "Invalid filing status"
	InvalidDateOfBirth       = "Invalid date of birth"
	InvalidAmount            = "Amounts must not be negative"
	InvalidImage             = "Image must be a non-empty image or PDF file"
	ImageTooLarge            = "Image exceeds the maximum upload size"
	UnsupportedTaxYear       = "Tax year is not supported"
	MissingUserID            = "Missing or invalid User-ID header"
	AccessDenied             = "You do not have access to this resource"
	DuplicateTaxReturn       = "A tax return already exists for this year"
	DuplicateDeduction       = "This deduction has already been claimed on the tax return"
	DuplicateCredit          = "Credits have already been entered for this tax return"
	DuplicateOtherIncome     = "Other income has already been entered for this tax return"
	CalculationFailed        = "Failed to calculate tax return totals"
	ReferenceDataMissing     = "Tax tables are not configured for this return"
	InternalServerError      = "Internal server error"
)

const (
	// MaxImageSize bounds W2 image uploads.
	MaxImageSize         = 10 << 20
	MinimumTaxReturnYear = 2015
)
