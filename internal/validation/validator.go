package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// amounts are stored as decimal(15,2)
	maxAmountScale         = 2
	maxAmountIntegerDigits = 13
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("include", validateInclude)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns validator.ValidationErrors on failure
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateMoney accepts a signed decimal string that fits decimal(15,2)
func validateMoney(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if !amount.Equal(amount.Round(maxAmountScale)) {
		return false
	}

	integerDigits := len(amount.Abs().Truncate(0).String())
	return integerDigits <= maxAmountIntegerDigits
}

// validateInclude accepts a comma separated subset of account and category,
// or the single value none.
func validateInclude(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" || value == "none" {
		return true
	}

	for _, part := range strings.Split(value, ",") {
		switch strings.TrimSpace(part) {
		case "account", "category":
		default:
			return false
		}
	}
	return true
}

// Details flattens validation errors into "field: message" strings sorted by
// field. Any other error is returned as its message.
func Details(err error) []string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldErr.Field(), FormatFieldError(fieldErr)))
	}
	sort.Strings(details)
	return details
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "numeric":
		return "must be a valid number"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", layoutName(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "dive":
		return "contains an invalid value"
	case "money":
		return "must be a decimal amount with at most 2 decimal places and 13 integer digits"
	case "include":
		return "must be a comma separated list of account, category, or none"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

func layoutName(layout string) string {
	if layout == "2006-01-02" {
		return "YYYY-MM-DD"
	}
	return layout
}
