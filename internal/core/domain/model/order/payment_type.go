package order

import (
	"fmt"

	"waterdelivery/internal/pkg/errs"
)

// PaymentType records how a delivered order was settled.
type PaymentType string

const (
	// PaymentNone is the value of every order that is not done yet.
	PaymentNone PaymentType = ""
	PaymentCash PaymentType = "cash"
	// PaymentDebt adds the amount to the client's balance instead of collecting it.
	PaymentDebt  PaymentType = "debt"
	PaymentClick PaymentType = "click"
)

// ParsePaymentType accepts the settlement types a courier may report.
func ParsePaymentType(s string) (PaymentType, error) {
	pt := PaymentType(s)
	if err := pt.Validate(); err != nil {
		return PaymentNone, err
	}
	return pt, nil
}

// Validate rejects PaymentNone and unknown values.
func (p PaymentType) Validate() error {
	switch p {
	case PaymentCash, PaymentDebt, PaymentClick:
		return nil
	case PaymentNone:
		return errs.NewValueIsRequiredError("payment type")
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment type", fmt.Errorf("unknown payment type %q", string(p)))
	}
}

func (p PaymentType) String() string {
	return string(p)
}
