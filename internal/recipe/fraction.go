// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

import (
	"math/big"

	"github.com/pdiddy/forkify/pkg/types"
)

// SimplifyEpsilon is the tolerance Simplify uses when rendering quantities.
const SimplifyEpsilon = 1e-3

// Simplify returns the first continued-fraction convergent of x that lies
// within eps of x, or x itself when no shorter convergent is close enough.
// This turns 0.333 into 1/3 while leaving 0.3 as 3/10.
func Simplify(x *big.Rat, eps float64) *big.Rat {
	if x == nil {
		return nil
	}
	abs := new(big.Rat).Abs(x)
	tol := new(big.Rat)
	tol.SetFloat64(eps)

	terms := continuedFraction(abs)
	for i := 1; i < len(terms); i++ {
		conv := convergent(terms[:i])
		diff := new(big.Rat).Sub(conv, abs)
		diff.Abs(diff)
		if diff.Cmp(tol) < 0 {
			if x.Sign() < 0 {
				conv.Neg(conv)
			}
			return conv
		}
	}
	return new(big.Rat).Set(x)
}

// continuedFraction expands a non-negative rational into its terms.
func continuedFraction(x *big.Rat) []*big.Int {
	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())
	var terms []*big.Int
	for den.Sign() != 0 {
		q, r := new(big.Int).QuoRem(num, den, new(big.Int))
		terms = append(terms, q)
		num, den = den, r
	}
	return terms
}

// convergent folds continued-fraction terms back into a rational.
func convergent(terms []*big.Int) *big.Rat {
	out := new(big.Rat).SetInt(terms[len(terms)-1])
	for k := len(terms) - 2; k >= 0; k-- {
		out.Inv(out)
		out.Add(out, new(big.Rat).SetInt(terms[k]))
	}
	return out
}

// FormatQuantity renders q as a minimal fraction ("1/2", "3/2", "2"). Null
// and zero quantities render as the empty string.
func FormatQuantity(q types.Quantity) string {
	if q.IsZero() {
		return ""
	}
	s := Simplify(q.Rat(), SimplifyEpsilon)
	if s.Sign() == 0 {
		return ""
	}
	return s.RatString()
}
