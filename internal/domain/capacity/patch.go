package capacity

import "signup-engine/internal/pkg/patch"

// Patch is a partial edit of a claim. Nil fields keep their prior value.
type Patch struct {
	A            *int
	B            *int
	Unrestricted *int
}

// Apply resolves the patch against the prior claim. Categories the session
// declared no capacity for cannot be set and keep their prior value.
func (p Patch) Apply(declared, prior Pools) Pools {
	return Pools{
		A:            patch.CoalesceIf(declared.A > 0, p.A, prior.A),
		B:            patch.CoalesceIf(declared.B > 0, p.B, prior.B),
		Unrestricted: patch.CoalesceIf(declared.Unrestricted > 0, p.Unrestricted, prior.Unrestricted),
	}
}

// Merge resolves the patch against a declared capacity without the
// forcing rule. Used when the session owner resizes pools.
func (p Patch) Merge(current Pools) Pools {
	return Pools{
		A:            patch.Coalesce(p.A, current.A),
		B:            patch.Coalesce(p.B, current.B),
		Unrestricted: patch.Coalesce(p.Unrestricted, current.Unrestricted),
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.A == nil && p.B == nil && p.Unrestricted == nil
}
