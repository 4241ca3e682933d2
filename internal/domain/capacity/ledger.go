package capacity

// Reserve checks a new claim against the remaining capacity and returns the
// consumed pools after applying it. A claim larger than everything left in
// the session fails on the total bound before any single pool is looked at.
func Reserve(capacity, consumed, req Pools) (Pools, error) {
	if err := ValidateRequest(req); err != nil {
		return consumed, err
	}
	available := Available(capacity, consumed)
	if req.Total() > available.Total() {
		return consumed, ErrExceedsTotalCapacity
	}
	if err := fits(available, req); err != nil {
		return consumed, err
	}
	return consumed.Add(req), nil
}

// Amend replaces prior with next. The prior claim is handed back to the
// pools before next is checked, so only the difference is consumed.
func Amend(capacity, consumed, prior, next Pools) (Pools, error) {
	if err := ValidateRequest(next); err != nil {
		return consumed, err
	}
	available := Available(capacity, consumed).Add(prior)
	if err := fits(available, next); err != nil {
		return consumed, err
	}
	return consumed.Add(next.Sub(prior)), nil
}

// Release hands a claim back. It never fails.
func Release(consumed, claim Pools) Pools {
	return consumed.Sub(claim)
}

// Resize checks that a new declared capacity still covers what is consumed.
func Resize(consumed, next Pools) error {
	if err := ValidateCapacity(next); err != nil {
		return err
	}
	if next.Unrestricted < consumed.Unrestricted {
		return ErrExceedsUnrestrictedCapacity
	}
	if next.A < consumed.A || next.B < consumed.B {
		return ErrExceedsCategoryCapacity
	}
	return nil
}

func fits(available, req Pools) error {
	if req.IsUnrestricted() {
		if req.Unrestricted > available.Unrestricted {
			return ErrExceedsUnrestrictedCapacity
		}
		return nil
	}
	if req.A > available.A || req.B > available.B {
		return ErrExceedsCategoryCapacity
	}
	return nil
}
