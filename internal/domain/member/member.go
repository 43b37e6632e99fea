package member

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrCategoryRequired = errors.New("member has no savings category assigned")

// Category is a member's fixed monthly savings tier.
type Category string

const (
	CategoryA    Category = "A"
	CategoryB    Category = "B"
	CategoryC    Category = "C"
	CategoryNone Category = ""
)

var (
	ratioMain   = decimal.RequireFromString("0.75")
	ratioSocial = decimal.RequireFromString("0.175")

	targetA = decimal.NewFromInt(500)
	targetB = decimal.NewFromInt(300)
	targetC = decimal.NewFromInt(100)
)

func (c Category) Valid() bool {
	switch c {
	case CategoryA, CategoryB, CategoryC:
		return true
	}
	return false
}

// MonthlyTarget is the fixed monthly savings amount for the tier.
func (c Category) MonthlyTarget() decimal.Decimal {
	switch c {
	case CategoryA:
		return targetA
	case CategoryB:
		return targetB
	case CategoryC:
		return targetC
	}
	return decimal.Zero
}

// Split is the fixed allocation of a monthly target across sub-buckets.
type Split struct {
	Main    decimal.Decimal
	Social  decimal.Decimal
	Welfare decimal.Decimal
}

// TargetSplit allocates the monthly target 75/17.5/7.5 across
// main-savings/social-fund/welfare-fund. Welfare takes the remainder so
// the three parts always sum exactly to the target.
func (c Category) TargetSplit() Split {
	t := c.MonthlyTarget()
	main := t.Mul(ratioMain).Round(2)
	social := t.Mul(ratioSocial).Round(2)
	return Split{
		Main:    main,
		Social:  social,
		Welfare: t.Sub(main).Sub(social),
	}
}

// Actor is the already-authenticated identity the presentation layer
// supplies with every call. Admin mirrors its "is admin-equivalent"
// capability; this core performs no authentication of its own.
type Actor struct {
	ID    string
	Admin bool
}
