package kernel

import (
	"fmt"

	"waterdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money is kept at.
const MoneyScale = 2

// Money is a signed amount in the service currency (UZS). The zero value is zero money.
// Positive balances mean the client owes money.
type Money struct {
	amount decimal.Decimal
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func MoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

func MoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(MoneyScale)}
}

// MoneyFromString parses a decimal string such as "36000" or "-12000.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number: %w", s, err))
	}
	return MoneyFromDecimal(d), nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Times multiplies the amount by a quantity, e.g. a unit price by a bottle count.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
