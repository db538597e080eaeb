// SPDX-License-Identifier: MIT
// Package: mathgen/expr
//
// funcs.go - function names used by Call nodes.
//
// Trig functions come in four 6-element families:
//   direct circular     sin cos tan csc cot sec
//   inverse circular    arcsin arccos arctan arccsc arccot arcsec
//   direct hyperbolic   sinh cosh tanh csch coth sech
//   inverse hyperbolic  arcsinh arccosh arctanh arccsch arccoth arcsech

package expr

import "strconv"

// Func identifies the function applied by a Call.
type Func int

const (
	// FuncRoot is the nth root; the index lives in Call.Root.
	FuncRoot Func = iota

	FuncSin
	FuncCos
	FuncTan
	FuncCsc
	FuncCot
	FuncSec

	FuncArcsin
	FuncArccos
	FuncArctan
	FuncArccsc
	FuncArccot
	FuncArcsec

	FuncSinh
	FuncCosh
	FuncTanh
	FuncCsch
	FuncCoth
	FuncSech

	FuncArcsinh
	FuncArccosh
	FuncArctanh
	FuncArccsch
	FuncArccoth
	FuncArcsech

	// FuncLn is the natural logarithm.
	FuncLn
	// FuncLog is a logarithm with the base in Call.Base.
	FuncLog
	// FuncExp is e raised to the argument.
	FuncExp
)

var funcNames = [...]string{
	FuncRoot: "root",
	FuncSin:  "sin", FuncCos: "cos", FuncTan: "tan", FuncCsc: "csc", FuncCot: "cot", FuncSec: "sec",
	FuncArcsin: "arcsin", FuncArccos: "arccos", FuncArctan: "arctan",
	FuncArccsc: "arccsc", FuncArccot: "arccot", FuncArcsec: "arcsec",
	FuncSinh: "sinh", FuncCosh: "cosh", FuncTanh: "tanh", FuncCsch: "csch", FuncCoth: "coth", FuncSech: "sech",
	FuncArcsinh: "arcsinh", FuncArccosh: "arccosh", FuncArctanh: "arctanh",
	FuncArccsch: "arccsch", FuncArccoth: "arccoth", FuncArcsech: "arcsech",
	FuncLn:  "ln",
	FuncLog: "log",
	FuncExp: "exp",
}

// String returns the function name.
func (f Func) String() string {
	if f < 0 || int(f) >= len(funcNames) {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return funcNames[f]
}

// IsTrig reports whether f belongs to one of the four trig families.
func (f Func) IsTrig() bool { return f >= FuncSin && f <= FuncArcsech }

// IsInverse reports whether f is an inverse trig function.
func (f Func) IsInverse() bool {
	return (f >= FuncArcsin && f <= FuncArcsec) || (f >= FuncArcsinh && f <= FuncArcsech)
}

// IsHyperbolic reports whether f is a direct or inverse hyperbolic function.
func (f Func) IsHyperbolic() bool { return f >= FuncSinh && f <= FuncArcsech }

// trigFamilySize is the number of functions in each trig family.
const trigFamilySize = 6

// TrigFamily returns the six functions of the family selected by the flags.
// The slice is freshly allocated.
func TrigFamily(inverse, hyperbolic bool) []Func {
	first := FuncSin
	switch {
	case inverse && hyperbolic:
		first = FuncArcsinh
	case hyperbolic:
		first = FuncSinh
	case inverse:
		first = FuncArcsin
	}
	out := make([]Func, trigFamilySize)
	for i := range out {
		out[i] = first + Func(i)
	}
	return out
}
