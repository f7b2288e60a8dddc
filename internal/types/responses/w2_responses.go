package responses

// W2Response represents a W-2 wage statement
type W2Response struct {
	ID                        int64  `json:"id"`
	TaxReturnID               int64  `json:"taxReturnId"`
	UserID                    int64  `json:"userId"`
	Year                      int    `json:"year"`
	EmployerName              string `json:"employerName"`
	EmployerStreetAddress     string `json:"employerStreetAddress"`
	EmployerCity              string `json:"employerCity"`
	EmployerState             string `json:"employerState"`
	EmployerZip               string `json:"employerZip"`
	Ein                       string `json:"ein"`
	WagesAndTips              string `json:"wagesAndTips"`
	FederalIncomeTaxWithheld  string `json:"federalIncomeTaxWithheld"`
	StateIncomeTaxWithheld    string `json:"stateIncomeTaxWithheld"`
	SocialSecurityTaxWithheld string `json:"socialSecurityTaxWithheld"`
	MedicareTaxWithheld       string `json:"medicareTaxWithheld"`
	HasImage                  bool   `json:"hasImage"`
}

