package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("alice@example.com"))
	assert.NoError(t, Email("a.b+tag@sub.example.co"))

	assert.ErrorIs(t, Email(""), ErrInvalidEmail)
	assert.ErrorIs(t, Email("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, Email("missing@tld@double.com"), ErrInvalidEmail)
}

func TestPhoneStrict(t *testing.T) {
	// Empty phone is always valid.
	assert.NoError(t, PhoneStrict(""))

	assert.NoError(t, PhoneStrict("+1234567890"))
	assert.NoError(t, PhoneStrict("+123456789012345"))
	assert.NoError(t, PhoneStrict("123-456-7890"))

	assert.ErrorIs(t, PhoneStrict("+123456789"), ErrInvalidPhone)      // 9 digits
	assert.ErrorIs(t, PhoneStrict("+1234567890123456"), ErrInvalidPhone) // 16 digits
	assert.ErrorIs(t, PhoneStrict("555.123.4567"), ErrInvalidPhone)
	assert.ErrorIs(t, PhoneStrict("+44-20-1234-5678"), ErrInvalidPhone)
	assert.ErrorIs(t, PhoneStrict("phone"), ErrInvalidPhone)
}

func TestPhoneLoose(t *testing.T) {
	assert.NoError(t, PhoneLoose(""))
	assert.NoError(t, PhoneLoose("+1234567890"))
	assert.NoError(t, PhoneLoose("123-456-7890"))
	// The loose grammar tolerates dot and dash separators the strict one rejects.
	assert.NoError(t, PhoneLoose("555.123.4567"))
	assert.NoError(t, PhoneLoose("+44-20-1234-5678"))

	assert.ErrorIs(t, PhoneLoose("phone"), ErrInvalidPhone)
}

func TestPrice(t *testing.T) {
	assert.NoError(t, Price(decimal.RequireFromString("0.01")))
	assert.NoError(t, Price(decimal.RequireFromString("999.99")))

	assert.ErrorIs(t, Price(decimal.Zero), ErrNonPositivePrice)
	assert.ErrorIs(t, Price(decimal.RequireFromString("-5")), ErrNonPositivePrice)
}

func TestStock(t *testing.T) {
	assert.NoError(t, Stock(0))
	assert.NoError(t, Stock(100))
	assert.ErrorIs(t, Stock(-1), ErrNegativeStock)
}
