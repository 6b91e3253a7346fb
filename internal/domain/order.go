package domain

// Represents a customer order to be delivered along a single route.
// RouteID is a soft reference: it is not guaranteed to match an existing Route.
type Order struct {
	ID      int64
	Value   float64
	RouteID int64
}

// Orders above this value earn a bonus when delivered on time.
func (o Order) BonusEligible() bool {
	return o.Value > HighValueThreshold
}
