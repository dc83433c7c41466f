package enum

import "encoding/json"

// CheckoutStep represents the current stage of the checkout wizard
type CheckoutStep int

const (
	StepCustomer CheckoutStep = 1
	StepItems    CheckoutStep = 2
	StepPayment  CheckoutStep = 3
	StepResult   CheckoutStep = 4
)

func (s CheckoutStep) String() string {
	switch s {
	case StepCustomer:
		return "Customer"
	case StepItems:
		return "Items"
	case StepPayment:
		return "Payment"
	case StepResult:
		return "Result"
	}
	return "Customer"
}

func (s CheckoutStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(s))
}

func (s *CheckoutStep) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return err
	}
	*s = CheckoutStep(i)
	return nil
}

// IsValid reports whether the step is one of the four wizard stages
func (s CheckoutStep) IsValid() bool {
	return s >= StepCustomer && s <= StepResult
}
