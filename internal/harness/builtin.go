package harness

import (
	"math"

	"github.com/sumcheck/sumcheck/internal/arith"
)

// Builtin returns the suite of cases that pin the addition contract. The
// first case is the original reference scenario; the rest cover the
// algebraic properties and the documented overflow behavior of each policy.
func Builtin() *Suite {
	suite := NewSuite()

	cases := []Case{
		{
			Name:     "AddTest.HandlesPositiveInput",
			A:        1,
			B:        2,
			Expected: 3,
			Policy:   arith.PolicyChecked,
		},
		{
			Name:     "AddTest.IdentityElement",
			A:        0,
			B:        42,
			Expected: 42,
			Policy:   arith.PolicyChecked,
		},
		{
			Name:     "AddTest.CommutesPositiveInput",
			A:        2,
			B:        1,
			Expected: 3,
			Policy:   arith.PolicyChecked,
		},
		{
			Name:     "AddTest.BoundaryAroundZero",
			A:        -1,
			B:        1,
			Expected: 0,
			Policy:   arith.PolicyChecked,
		},
		{
			Name:     "AddTest.NegativeOperands",
			A:        -3,
			B:        -4,
			Expected: -7,
			Policy:   arith.PolicyChecked,
		},
		{
			Name:     "AddTest.OverflowWraps",
			A:        math.MaxInt64,
			B:        1,
			Expected: math.MinInt64,
			Policy:   arith.PolicyWrap,
		},
		{
			Name:     "AddTest.OverflowSaturates",
			A:        math.MaxInt64,
			B:        1,
			Expected: math.MaxInt64,
			Policy:   arith.PolicySaturate,
		},
	}

	for _, c := range cases {
		c.Location = "builtin"
		// Names are unique by construction
		_ = suite.Register(c)
	}

	return suite
}
