// SPDX-License-Identifier: MIT
// Package: mathgen/expr
//
// types.go - node interface, kinds, indeterminates and monomial terms.

package expr

import (
	"strconv"
	"strings"
)

// Kind tags the concrete type of a Node.
type Kind int

const (
	// KindCoefficient tags Coefficient.
	KindCoefficient Kind = iota
	// KindVariable tags Variable.
	KindVariable
	// KindPolynomial tags *Polynomial.
	KindPolynomial
	// KindQuotient tags *Quotient.
	KindQuotient
	// KindCall tags *Call.
	KindCall
	// KindClosedForm tags *ClosedForm.
	KindClosedForm
)

var kindNames = [...]string{
	KindCoefficient: "coefficient",
	KindVariable:    "variable",
	KindPolynomial:  "polynomial",
	KindQuotient:    "quotient",
	KindCall:        "call",
	KindClosedForm:  "closedform",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Node is any element of an expression tree. The set of implementations is
// closed: Coefficient, Variable, *Polynomial, *Quotient, *Call, *ClosedForm.
type Node interface {
	// Kind reports the concrete node type.
	Kind() Kind
	// Children returns the direct sub-nodes in display order. The slice is a
	// fresh copy; callers may modify it.
	Children() []Node
	// String returns the debug notation of the subtree.
	String() string

	node()
}

// Variable is an indeterminate symbol such as "x".
type Variable string

// Kind implements Node.
func (Variable) Kind() Kind { return KindVariable }

// Children implements Node; a variable is a leaf.
func (Variable) Children() []Node { return nil }

// String returns the symbol.
func (v Variable) String() string { return string(v) }

func (Variable) node() {}

// Vars splits a compact symbol string ("xyz") into single-letter variables.
func Vars(s string) []Variable {
	out := make([]Variable, 0, len(s))
	for _, r := range s {
		out = append(out, Variable(string(r)))
	}
	return out
}

// Power is one indeterminate raised to a non-negative exponent.
type Power struct {
	Var Variable
	Exp int
}

// Term is a product of powers, e.g. x^2·y^1.
type Term []Power

// ExponentSum returns the total degree of the term.
func (t Term) ExponentSum() int {
	sum := 0
	for _, p := range t {
		sum += p.Exp
	}
	return sum
}

// String renders "x^2*y^1".
func (t Term) String() string {
	var b strings.Builder
	for i, p := range t {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(string(p.Var))
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(p.Exp))
	}
	return b.String()
}

// Monomial pairs a coefficient with a term.
type Monomial struct {
	Coeff Coefficient
	Term  Term
}

// String renders "+3*x^2".
func (m Monomial) String() string {
	return m.Coeff.String() + "*" + m.Term.String()
}
