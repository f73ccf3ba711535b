package stock

// Receive converts a purchase-order line (orderedPackages sealed packages of
// ratio atomic units each) into the initial dual-counter state. Exactly one
// package is opened on receipt, so the batch starts with a full package worth
// of loose units; ordering a single package therefore yields an all-loose
// batch, which is accepted behavior.
func Receive(ratio float64, orderedPackages int) (State, error) {
	if orderedPackages < 1 {
		return State{}, &ValidationError{Field: "ordered packages", Reason: "must be at least 1"}
	}
	if ratio <= 0 {
		return State{}, &ValidationError{Field: "units per package", Reason: "must be positive"}
	}

	return State{
		Sealed: orderedPackages - 1,
		Loose:  round2(ratio),
		Ratio:  ratio,
	}, nil
}

// ReceiveSimple builds the state for an unsplit item: the whole quantity is
// loose and the ratio is fixed at 1.
func ReceiveSimple(quantity float64) (State, error) {
	if quantity <= 0 {
		return State{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	return State{Sealed: 0, Loose: round2(quantity), Ratio: 1}, nil
}
