// SPDX-License-Identifier: MIT
// Package: mathgen/expr
//
// nodes.go - composite nodes: Polynomial, Quotient, Call, ClosedForm.

package expr

import (
	"strconv"
	"strings"
)

// Polynomial is Σ Terms[i] + Constant. Degree is the declared degree the
// polynomial was built for; len(Terms) == Degree and at least one term has
// an exponent sum equal to Degree. A degree-0 polynomial is just Constant.
type Polynomial struct {
	Degree   int
	Vars     []Variable
	Terms    []Monomial
	Constant Coefficient
}

// Kind implements Node.
func (*Polynomial) Kind() Kind { return KindPolynomial }

// Children returns the term coefficients followed by the constant. Terms are
// not nodes of their own; walk p.Terms for the monomial structure. A nil
// polynomial has no children.
func (p *Polynomial) Children() []Node {
	if p == nil {
		return nil
	}
	out := make([]Node, 0, len(p.Terms)+1)
	for _, m := range p.Terms {
		out = append(out, m.Coeff)
	}
	return append(out, p.Constant)
}

// String renders "[+3*x^2 -1/2*x^1 +4]".
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, m := range p.Terms {
		b.WriteString(m.String())
		b.WriteByte(' ')
	}
	b.WriteString(p.Constant.String())
	b.WriteByte(']')
	return b.String()
}

func (*Polynomial) node() {}

// Quotient is Num / Den.
type Quotient struct {
	Num Node
	Den Node
}

// Kind implements Node.
func (*Quotient) Kind() Kind { return KindQuotient }

// Children returns [Num, Den], or nil for a nil quotient.
func (q *Quotient) Children() []Node {
	if q == nil {
		return nil
	}
	return []Node{q.Num, q.Den}
}

// String renders "(num / den)".
func (q *Quotient) String() string {
	return "(" + nodeString(q.Num) + " / " + nodeString(q.Den) + ")"
}

func (*Quotient) node() {}

// Call is Coeff · Func(Arg), the function-wrapped node.
//
// Root is the root index for FuncRoot, Base the logarithm base for FuncLog and
// Power the power-of-function degree for trig functions (sin^Power). Fields
// that do not apply to Func are zero.
type Call struct {
	Coeff Coefficient
	Func  Func
	Root  int
	Base  int
	Power int
	Arg   Node
}

// Kind implements Node.
func (*Call) Kind() Kind { return KindCall }

// Children returns [Coeff, Arg], or nil for a nil call.
func (c *Call) Children() []Node {
	if c == nil {
		return nil
	}
	return []Node{c.Coeff, c.Arg}
}

// Name returns the display name of the function, including root index or
// logarithm base ("3-root", "log-2", "sin").
func (c *Call) Name() string {
	switch c.Func {
	case FuncRoot:
		return strconv.Itoa(c.Root) + "-root"
	case FuncLog:
		return "log-" + strconv.Itoa(c.Base)
	default:
		return c.Func.String()
	}
}

// String renders "+2*sin^1(x)", "-1*3-root([...])", "+5*exp(x)".
func (c *Call) String() string {
	name := c.Name()
	if c.Func.IsTrig() {
		name += "^" + strconv.Itoa(c.Power)
	}
	return c.Coeff.String() + "*" + name + "(" + nodeString(c.Arg) + ")"
}

func (*Call) node() {}

// Combinator joins a closed form's base expression with its factors.
type Combinator int

const (
	// CombineNone appends the factors without an explicit operator.
	CombineNone Combinator = iota
	// CombineMul multiplies the base by the factors.
	CombineMul
	// CombineDiv divides the base by the factors.
	CombineDiv
)

// String returns "", "*" or "/".
func (c Combinator) String() string {
	switch c {
	case CombineMul:
		return "*"
	case CombineDiv:
		return "/"
	default:
		return ""
	}
}

// ClosedForm is a polynomial or algebraic base followed by one combination
// term: Combinator and the ordered function factors (trig, log, exp).
type ClosedForm struct {
	Base       Node
	Combinator Combinator
	Factors    []*Call
}

// Kind implements Node.
func (*ClosedForm) Kind() Kind { return KindClosedForm }

// Children returns the base followed by every factor, or nil for a nil
// closed form.
func (f *ClosedForm) Children() []Node {
	if f == nil {
		return nil
	}
	out := make([]Node, 0, len(f.Factors)+1)
	out = append(out, f.Base)
	for _, c := range f.Factors {
		out = append(out, c)
	}
	return out
}

// String renders "base * {f1 f2}".
func (f *ClosedForm) String() string {
	var b strings.Builder
	b.WriteString(nodeString(f.Base))
	b.WriteByte(' ')
	if op := f.Combinator.String(); op != "" {
		b.WriteString(op)
		b.WriteByte(' ')
	}
	b.WriteByte('{')
	for i, c := range f.Factors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (*ClosedForm) node() {}

// nodeString tolerates nil children in partially built trees.
func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}
