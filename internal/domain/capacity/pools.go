package capacity

import "errors"

// MaxSeats bounds every declared pool.
const MaxSeats = 10000

var (
	ErrInvalidRequestShape         = errors.New("invalid reservation request shape")
	ErrNegativeCapacity            = errors.New("capacity cannot be negative")
	ErrCapacityTooLarge            = errors.New("capacity exceeds the per-pool limit")
	ErrExceedsTotalCapacity        = errors.New("request exceeds total available capacity")
	ErrExceedsUnrestrictedCapacity = errors.New("request exceeds unrestricted capacity")
	ErrExceedsCategoryCapacity     = errors.New("request exceeds category capacity")
)

// Pools holds one count per category. It is used for declared capacity,
// consumed capacity, and a single reservation's claim alike.
type Pools struct {
	A            int `json:"a"`
	B            int `json:"b"`
	Unrestricted int `json:"unrestricted"`
}

func (p Pools) Total() int {
	return p.A + p.B + p.Unrestricted
}

func (p Pools) Add(o Pools) Pools {
	return Pools{A: p.A + o.A, B: p.B + o.B, Unrestricted: p.Unrestricted + o.Unrestricted}
}

func (p Pools) Sub(o Pools) Pools {
	return Pools{A: p.A - o.A, B: p.B - o.B, Unrestricted: p.Unrestricted - o.Unrestricted}
}

func (p Pools) hasNegative() bool {
	return p.A < 0 || p.B < 0 || p.Unrestricted < 0
}

// IsUnrestricted reports whether the claim targets the unrestricted pool.
func (p Pools) IsUnrestricted() bool {
	return p.Unrestricted > 0
}

// ValidateCapacity checks a declared capacity.
func ValidateCapacity(p Pools) error {
	if p.hasNegative() {
		return ErrNegativeCapacity
	}
	if p.A > MaxSeats || p.B > MaxSeats || p.Unrestricted > MaxSeats {
		return ErrCapacityTooLarge
	}
	return nil
}

// ValidateRequest enforces the claim shape: non-negative, non-zero in total,
// and either purely unrestricted or purely categorized.
func ValidateRequest(req Pools) error {
	if req.hasNegative() || req.Total() == 0 {
		return ErrInvalidRequestShape
	}
	if req.Unrestricted > 0 && (req.A > 0 || req.B > 0) {
		return ErrInvalidRequestShape
	}
	return nil
}

// Available is what is left of capacity after consumed.
func Available(capacity, consumed Pools) Pools {
	return capacity.Sub(consumed)
}
