package taxcalc

import (
	"fmt"
	"strings"
)

// FilingStatus identifies the filing status of a return. The numeric values
// are the identifiers stored with tax returns and bracket rows.
type FilingStatus int

const (
	Single FilingStatus = iota + 1
	MarriedFilingJointly
	MarriedFilingSeparately
	HeadOfHousehold
	Widow
)

var filingStatusNames = map[FilingStatus]string{
	Single:                  "SINGLE",
	MarriedFilingJointly:    "MARRIED_FILING_JOINTLY",
	MarriedFilingSeparately: "MARRIED_FILING_SEPARATELY",
	HeadOfHousehold:         "HEAD_OF_HOUSEHOLD",
	Widow:                   "WIDOW",
}

// FilingStatuses returns every supported filing status in identifier order.
func FilingStatuses() []FilingStatus {
	return []FilingStatus{Single, MarriedFilingJointly, MarriedFilingSeparately, HeadOfHousehold, Widow}
}

// Valid reports whether s is a known filing status.
func (s FilingStatus) Valid() bool {
	_, ok := filingStatusNames[s]
	return ok
}

func (s FilingStatus) String() string {
	if name, ok := filingStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FilingStatus(%d)", int(s))
}

// ParseFilingStatus accepts the canonical upper snake case name of a status,
// ignoring case and surrounding whitespace.
func ParseFilingStatus(name string) (FilingStatus, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for status, statusName := range filingStatusNames {
		if statusName == normalized {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown filing status %q", name)
}

// FilingStatusFromID converts a stored identifier into a FilingStatus.
func FilingStatusFromID(id int32) (FilingStatus, error) {
	status := FilingStatus(id)
	if !status.Valid() {
		return 0, fmt.Errorf("unknown filing status id %d", id)
	}
	return status, nil
}

func (s FilingStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *FilingStatus) UnmarshalText(text []byte) error {
	status, err := ParseFilingStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
