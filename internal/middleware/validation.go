package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/taxcalc"
)

var (
	phoneRegex = regexp.MustCompile(`^\+?1?[\s.-]?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
	zip5Regex  = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ssnRegex   = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	einRegex   = regexp.MustCompile(`^\d{2}-?\d{7}$`)

	// NUMERIC(12, 2) columns hold at most ten integer digits.
	maxMoney = decimal.New(1, 10)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the tax specific binding rules to gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		registerErr = registerRules(v)
	})
	return registerErr
}

func registerRules(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"phone":        matches(phoneRegex),
		"zip5":         matches(zip5Regex),
		"ssn":          matches(ssnRegex),
		"ein":          matches(einRegex),
		"filingstatus": validFilingStatus,
		"money":        validMoney(false),
		"nonnegmoney":  validMoney(true),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

// decimalValue lets rules see a decimal as its string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func validFilingStatus(fl validator.FieldLevel) bool {
	_, err := taxcalc.ParseFilingStatus(fl.Field().String())
	return err == nil
}

// validMoney accepts amounts with at most two decimal places that fit the
// money columns.
func validMoney(nonNegative bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		if nonNegative && d.IsNegative() {
			return false
		}
		if !d.Equal(d.Round(2)) {
			return false
		}
		return d.Abs().LessThan(maxMoney)
	}
}

// ValidationMessages turns binding errors into one message per field.
func ValidationMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = fieldMessage(fe)
	}
	return out
}

// fieldPath keeps the JSON names of a namespace, dropping the request and
// embedded struct names.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" && !unicode.IsUpper(rune(part[0])) {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must be " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "phone":
		return "must be a valid phone number"
	case "zip5":
		return "must be a 5 digit ZIP code"
	case "ssn":
		return "must be a valid SSN"
	case "ein":
		return "must be a valid EIN"
	case "filingstatus":
		return "must be one of SINGLE, MARRIED_FILING_JOINTLY, MARRIED_FILING_SEPARATELY, HEAD_OF_HOUSEHOLD, WIDOW"
	case "money":
		return "must be an amount with at most two decimal places"
	case "nonnegmoney":
		return "must be a non-negative amount with at most two decimal places"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
