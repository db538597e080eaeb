// SPDX-License-Identifier: MIT
// Package: mathgen/expr
//
// validate.go - structural invariant checks.
//
// Error policy:
//   - A single sentinel, ErrInvalidNode, wrapped with the failing path and reason.
//   - Validate never panics, including on nil children.

package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidNode indicates that a tree violates a structural invariant
// (zero denominator, unrealized degree, missing operand, ...).
// Usage: if errors.Is(err, ErrInvalidNode) { /* reject tree */ }.
var ErrInvalidNode = errors.New("expr: invalid node")

// Validate checks n and every descendant. The returned error names the path
// of the first violation, e.g. "quotient.den.polynomial: 2 terms for degree 3".
func Validate(n Node) error {
	return validate(n, "")
}

func invalid(path, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", path, fmt.Sprintf(format, args...), ErrInvalidNode)
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

func validate(n Node, path string) error {
	switch v := n.(type) {
	case nil:
		return invalid(join(path, "nil"), "missing node")
	case Coefficient:
		return validateCoefficient(v, join(path, "coefficient"))
	case Variable:
		if v == "" {
			return invalid(join(path, "variable"), "empty symbol")
		}
		return nil
	case *Polynomial:
		return validatePolynomial(v, join(path, "polynomial"))
	case *Quotient:
		if v == nil {
			return invalid(join(path, "quotient"), "nil quotient")
		}
		p := join(path, "quotient")
		if err := validate(v.Num, join(p, "num")); err != nil {
			return err
		}
		return validate(v.Den, join(p, "den"))
	case *Call:
		return validateCall(v, join(path, "call"))
	case *ClosedForm:
		return validateClosedForm(v, join(path, "closedform"))
	default:
		return invalid(join(path, "unknown"), "unsupported node type %T", n)
	}
}

func validateCoefficient(c Coefficient, path string) error {
	if c.Sign != Plus && c.Sign != Minus {
		return invalid(path, "bad sign %q", byte(c.Sign))
	}
	if c.Num < 0 || c.Den < 0 {
		return invalid(path, "negative magnitude %d/%d", c.Num, c.Den)
	}
	return nil
}

func validatePolynomial(p *Polynomial, path string) error {
	if p == nil {
		return invalid(path, "nil polynomial")
	}
	if p.Degree < 0 {
		return invalid(path, "negative degree %d", p.Degree)
	}
	if len(p.Terms) != p.Degree {
		return invalid(path, "%d terms for degree %d", len(p.Terms), p.Degree)
	}

	known := make(map[Variable]struct{}, len(p.Vars))
	for _, v := range p.Vars {
		if _, dup := known[v]; dup {
			return invalid(path, "duplicate indeterminate %q", v)
		}
		known[v] = struct{}{}
	}

	realized := p.Degree == 0
	for i, m := range p.Terms {
		tp := fmt.Sprintf("%s.term[%d]", path, i)
		if err := validateCoefficient(m.Coeff, tp); err != nil {
			return err
		}
		if len(m.Term) == 0 {
			return invalid(tp, "empty term")
		}
		for _, pw := range m.Term {
			if pw.Exp < 0 {
				return invalid(tp, "negative exponent %d on %q", pw.Exp, pw.Var)
			}
			if _, ok := known[pw.Var]; !ok {
				return invalid(tp, "indeterminate %q not in %v", pw.Var, p.Vars)
			}
		}
		if m.Term.ExponentSum() == p.Degree {
			realized = true
		}
	}
	if !realized {
		return invalid(path, "no term reaches degree %d", p.Degree)
	}
	return validateCoefficient(p.Constant, path+".constant")
}

func validateCall(c *Call, path string) error {
	if c == nil {
		return invalid(path, "nil call")
	}
	if c.Func < FuncRoot || c.Func > FuncExp {
		return invalid(path, "unknown function %d", int(c.Func))
	}
	switch {
	case c.Func == FuncRoot && c.Root < 1:
		return invalid(path, "root index %d < 1", c.Root)
	case c.Func == FuncLog && c.Base < 2:
		return invalid(path, "log base %d < 2", c.Base)
	case c.Func.IsTrig() && c.Power < 1:
		return invalid(path, "trig power %d < 1", c.Power)
	}
	if err := validateCoefficient(c.Coeff, path+".coeff"); err != nil {
		return err
	}
	return validate(c.Arg, join(path, c.Name()))
}

func validateClosedForm(f *ClosedForm, path string) error {
	if f == nil {
		return invalid(path, "nil closed form")
	}
	if f.Combinator < CombineNone || f.Combinator > CombineDiv {
		return invalid(path, "unknown combinator %d", int(f.Combinator))
	}
	if len(f.Factors) == 0 {
		return invalid(path, "no function factors")
	}
	if err := validate(f.Base, join(path, "base")); err != nil {
		return err
	}
	for i, c := range f.Factors {
		if err := validateCall(c, fmt.Sprintf("%s.factor[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
