package checkout

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Step is one stop in the linear checkout wizard.
type Step string

const (
	StepInformation Step = "information"
	StepShipping    Step = "shipping"
	StepPayment     Step = "payment"
)

// steps in wizard order; Advance walks this forward one at a time.
var steps = []Step{StepInformation, StepShipping, StepPayment}

func (s Step) IsFinal() bool {
	return s == StepPayment
}

// String representation (for logging)
func (s Step) String() string {
	return string(s)
}

func stepIndex(s Step) int {
	for i, step := range steps {
		if step == s {
			return i
		}
	}
	return -1
}

var (
	ErrFlowNotFound = errors.New("checkout flow not found")
	ErrUnknownStep  = errors.New("unknown checkout step")
	// ErrFinalStep rejects advancing past payment; submission does not exist.
	ErrFinalStep = errors.New("checkout is already at the final step")
	// ErrStepAhead rejects navigating forward; only completed steps can be revisited.
	ErrStepAhead = errors.New("cannot skip ahead in checkout")
)

// Draft holds the fields collected across the wizard. It lives only for the
// duration of one checkout attempt and is never persisted.
type Draft struct {
	Email        string `json:"email"`
	Newsletter   bool   `json:"newsletter"`
	Country      string `json:"country"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	Apartment    string `json:"apartment,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone"`
	DiscountCode string `json:"discountCode,omitempty"`
}

// Flow is one checkout attempt for a cart session.
type Flow struct {
	ID        string    `json:"id"`
	SessionID string    `json:"-"`
	Step      Step      `json:"step"`
	Draft     Draft     `json:"draft"`
	CreatedAt time.Time `json:"createdAt"`
}

// Advance moves to the next step. No field-validation guard is enforced;
// the continue action is unconditionally available.
func (f *Flow) Advance() error {
	if f.Step.IsFinal() {
		return ErrFinalStep
	}
	f.Step = steps[stepIndex(f.Step)+1]
	return nil
}

// GoTo navigates back to an already-completed step.
func (f *Flow) GoTo(step Step) error {
	idx := stepIndex(step)
	if idx < 0 {
		return ErrUnknownStep
	}
	if idx > stepIndex(f.Step) {
		return ErrStepAhead
	}
	f.Step = step
	return nil
}

// taxRate is the flat estimated-tax policy. Shipping is free across the
// board; neither is configurable.
var taxRate = decimal.NewFromFloat(0.08)

// Totals is the order summary shown alongside the wizard.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives the summary from the cart's live subtotal. It is
// recomputed on every read so it can never lag a cart mutation.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
