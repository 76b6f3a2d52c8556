package domain

// DiscountType distinguishes percentage and fixed-amount reductions
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// DeliveryMode selects home delivery or pickup at a stop desk
type DeliveryMode string

const (
	DeliveryModeHome     DeliveryMode = "home"
	DeliveryModeStopDesk DeliveryMode = "stopDesk"
)

// IsValid checks if the delivery mode is valid
func (m DeliveryMode) IsValid() bool {
	return m == DeliveryModeHome || m == DeliveryModeStopDesk
}

// CheckoutStep is the current stage of the checkout flow
type CheckoutStep string

const (
	StepShipping CheckoutStep = "shipping"
	StepPayment  CheckoutStep = "payment"
	StepReview   CheckoutStep = "review"
	StepPlaced   CheckoutStep = "placed"
)

// IsValid checks if the checkout step is valid
func (s CheckoutStep) IsValid() bool {
	switch s {
	case StepShipping, StepPayment, StepReview, StepPlaced:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step change is legal. The flow only moves
// forward or backward by one step, and Placed is terminal.
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case StepShipping:
		return next == StepPayment
	case StepPayment:
		return next == StepReview || next == StepShipping
	case StepReview:
		return next == StepPlaced || next == StepPayment
	case StepPlaced:
		return false // Terminal state
	default:
		return false
	}
}
