// SPDX-License-Identifier: MIT
package expr_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathgen/expr"
)

// quadratic returns +2*x^2 -1/3*x^1 +5 over {x}.
func quadratic() *expr.Polynomial {
	return &expr.Polynomial{
		Degree: 2,
		Vars:   expr.Vars("x"),
		Terms: []expr.Monomial{
			{Coeff: expr.Int(2), Term: expr.Term{{Var: "x", Exp: 2}}},
			{Coeff: expr.Frac(-1, 3), Term: expr.Term{{Var: "x", Exp: 1}}},
		},
		Constant: expr.Int(5),
	}
}

func sinX() *expr.Call {
	return &expr.Call{Coeff: expr.Int(3), Func: expr.FuncSin, Power: 1, Arg: expr.Variable("x")}
}

// TestValidate_Valid accepts every well-formed node kind.
func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	nodes := []expr.Node{
		expr.Int(-4),
		expr.Variable("y"),
		quadratic(),
		&expr.Polynomial{Degree: 0, Vars: expr.Vars("xy"), Constant: expr.Int(1)},
		&expr.Quotient{Num: &expr.Polynomial{Degree: 0, Constant: expr.One()}, Den: quadratic()},
		&expr.Call{Coeff: expr.One(), Func: expr.FuncRoot, Root: 3, Arg: quadratic()},
		&expr.Call{Coeff: expr.One(), Func: expr.FuncLog, Base: 2, Arg: expr.Variable("x")},
		&expr.ClosedForm{Base: quadratic(), Combinator: expr.CombineDiv, Factors: []*expr.Call{sinX()}},
	}
	for _, n := range nodes {
		require.NoError(t, expr.Validate(n), spew.Sdump(n))
	}
}

// TestValidate_Invalid table-checks every rejected shape via errors.Is.
func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	short := quadratic()
	short.Terms = short.Terms[:1]

	unrealized := quadratic()
	unrealized.Terms[0].Term = expr.Term{{Var: "x", Exp: 1}}

	foreign := quadratic()
	foreign.Terms[1].Term = expr.Term{{Var: "z", Exp: 1}}

	dupVars := quadratic()
	dupVars.Vars = expr.Vars("xx")

	tests := []struct {
		name string
		node expr.Node
	}{
		{"nil", nil},
		{"bad sign", expr.Coefficient{Sign: '?', Num: 1}},
		{"negative magnitude", expr.Coefficient{Sign: expr.Plus, Num: -1}},
		{"empty variable", expr.Variable("")},
		{"term count", short},
		{"degree not realized", unrealized},
		{"unknown indeterminate", foreign},
		{"duplicate indeterminate", dupVars},
		{"quotient missing den", &expr.Quotient{Num: quadratic()}},
		{"root index", &expr.Call{Coeff: expr.One(), Func: expr.FuncRoot, Root: 0, Arg: expr.Int(2)}},
		{"log base", &expr.Call{Coeff: expr.One(), Func: expr.FuncLog, Base: 1, Arg: expr.Int(2)}},
		{"trig power", &expr.Call{Coeff: expr.One(), Func: expr.FuncTan, Arg: expr.Variable("x")}},
		{"call without arg", &expr.Call{Coeff: expr.One(), Func: expr.FuncExp}},
		{"closed form without factors", &expr.ClosedForm{Base: quadratic()}},
		{"closed form bad combinator", &expr.ClosedForm{Base: quadratic(), Combinator: 9, Factors: []*expr.Call{sinX()}}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := expr.Validate(tc.node)
			require.Error(t, err)
			require.True(t, errors.Is(err, expr.ErrInvalidNode), "got %v", err)
		})
	}
}

// TestValidate_PathNamesViolation checks that the error carries the failing path.
func TestValidate_PathNamesViolation(t *testing.T) {
	t.Parallel()

	bad := quadratic()
	bad.Terms = nil
	err := expr.Validate(&expr.Quotient{Num: quadratic(), Den: bad})
	require.ErrorIs(t, err, expr.ErrInvalidNode)
	require.Contains(t, err.Error(), "quotient.den.polynomial")
}
