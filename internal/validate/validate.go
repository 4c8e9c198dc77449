package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Two phone grammars exist historically. PhoneStrict is the canonical one used
// by all mutations; PhoneLoose is the older punctuation-tolerant variant, kept
// as a named alternative.
var (
	phoneIntl   = regexp.MustCompile(`^\+\d{10,15}$`)
	phoneDashed = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	phoneLoose  = regexp.MustCompile(`^\+?\d{1,4}[-.\s]?\(?\d{1,3}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}$`)
)

// Email checks conformance to a standard email grammar.
func Email(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// PhoneStrict accepts "+" followed by 10-15 digits, or DDD-DDD-DDDD.
// An empty phone is always valid.
func PhoneStrict(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneIntl.MatchString(phone) && !phoneDashed.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// PhoneLoose accepts a broader set of separators and an optional area-code
// grouping. Not wired into mutations.
func PhoneLoose(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneLoose.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// Price requires a strictly positive amount.
func Price(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrNonPositivePrice
	}
	return nil
}

// Stock requires a non-negative quantity.
func Stock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
