package config

import (
	"fmt"

	"github.com/katalvlaran/mathgen/builder"
	"github.com/katalvlaran/mathgen/expr"
)

// Expression kinds accepted in Profile.Kind.
const (
	KindPolynomial = "polynomial"
	KindAlgebraic  = "algebraic"
	KindClosedForm = "closedform"
)

// Profile describes one family of expressions to generate.
type Profile struct {
	Kind      string    `yaml:"kind" json:"kind"`
	Random    bool      `yaml:"random" json:"random"`
	Seed      *int64    `yaml:"seed,omitempty" json:"seed,omitempty"`
	Degree    int       `yaml:"degree" json:"degree"`
	Vars      string    `yaml:"vars" json:"vars"`
	Bounds    *Bounds   `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Algebraic *Shape    `yaml:"algebraic,omitempty" json:"algebraic,omitempty"`
	Functions Functions `yaml:"functions" json:"functions"`
	Menu      []string  `yaml:"menu,omitempty" json:"menu,omitempty"`
	MaxDegree int       `yaml:"max_degree" json:"max_degree"`
}

// Bounds is the coefficient range [Low, High); order-insensitive.
type Bounds struct {
	Low  int `yaml:"low" json:"low"`
	High int `yaml:"high" json:"high"`
}

// Shape mirrors builder.AlgebraicShape.
type Shape struct {
	Root     int  `yaml:"root" json:"root"`
	Rational bool `yaml:"rational" json:"rational"`
	Proper   bool `yaml:"proper" json:"proper"`
}

// Functions mirrors builder.FunctionSet.
type Functions struct {
	Trig bool `yaml:"trig" json:"trig"`
	Log  bool `yaml:"log" json:"log"`
	Expo bool `yaml:"expo" json:"expo"`
}

func (s *Shape) toBuilder() *builder.AlgebraicShape {
	if s == nil {
		return nil
	}
	return &builder.AlgebraicShape{Root: s.Root, Rational: s.Rational, Proper: s.Proper}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// outside reports whether a coefficient bound exceeds builder.MaxBoundMagnitude.
func outside(v int) bool {
	return v < -builder.MaxBoundMagnitude || v > builder.MaxBoundMagnitude
}

// validSymbols reports whether s is a non-empty, duplicate-free symbol string
// within the indeterminate limit.
func validSymbols(s string) error {
	vars := expr.Vars(s)
	if len(vars) == 0 {
		return invalidf("empty indeterminate set")
	}
	if len(vars) > builder.MaxIndeterminates {
		return invalidf("%d indeterminates exceed %d", len(vars), builder.MaxIndeterminates)
	}
	seen := make(map[expr.Variable]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return invalidf("indeterminate %q repeated in %q", v, s)
		}
		seen[v] = true
	}
	return nil
}

// Validate checks the profile without building anything.
func (p Profile) Validate() error {
	switch p.Kind {
	case KindPolynomial, KindAlgebraic, KindClosedForm:
	default:
		return fmt.Errorf("kind %q: %w", p.Kind, ErrUnknownKind)
	}

	if p.MaxDegree < 0 {
		return invalidf("max_degree %d < 0", p.MaxDegree)
	}
	for _, m := range p.Menu {
		if err := validSymbols(m); err != nil {
			return fmt.Errorf("menu: %w", err)
		}
	}
	if b := p.Bounds; b != nil {
		if b.Low == b.High {
			return invalidf("bounds [%d,%d) are empty", b.Low, b.High)
		}
		if outside(b.Low) || outside(b.High) {
			return invalidf("bounds [%d,%d) exceed ±%d", b.Low, b.High, builder.MaxBoundMagnitude)
		}
	}
	if p.Algebraic != nil && p.Algebraic.Root < builder.MinRoot {
		return invalidf("algebraic.root %d < %d", p.Algebraic.Root, builder.MinRoot)
	}
	if p.Kind == KindAlgebraic && p.Algebraic == nil && !p.Random {
		return invalidf("algebraic kind needs an algebraic block")
	}
	if p.Random {
		return nil
	}

	minDegree := builder.MinPolynomialDegree
	if p.Kind == KindAlgebraic || (p.Kind == KindClosedForm && p.Algebraic != nil) {
		minDegree = builder.MinAlgebraicDegree
	}
	if p.Degree < minDegree {
		return invalidf("degree %d < %d for %s", p.Degree, minDegree, p.Kind)
	}
	needVars := p.Degree > 0 || p.Kind != KindPolynomial
	if needVars || p.Vars != "" {
		if err := validSymbols(p.Vars); err != nil {
			return fmt.Errorf("vars: %w", err)
		}
	}
	return nil
}

// BuilderOptions returns the builder knobs of the profile. Without a seed the
// caller must add WithSeed or WithRand.
func (p Profile) BuilderOptions() ([]builder.BuilderOption, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var opts []builder.BuilderOption
	if p.Seed != nil {
		opts = append(opts, builder.WithSeed(*p.Seed))
	}
	if p.Bounds != nil {
		opts = append(opts, builder.WithBounds(p.Bounds.Low, p.Bounds.High))
	}
	if len(p.Menu) > 0 {
		opts = append(opts, builder.WithIndeterminateMenu(p.Menu...))
	}
	if p.MaxDegree > 0 {
		opts = append(opts, builder.WithMaxDegree(p.MaxDegree))
	}
	return opts, nil
}

// Constructor returns the builder constructor the profile describes.
func (p Profile) Constructor() (builder.Constructor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	vars := expr.Vars(p.Vars)
	switch {
	case p.Kind == KindPolynomial && p.Random:
		return builder.RandomPolynomial(), nil
	case p.Kind == KindPolynomial:
		return builder.Polynomial(p.Degree, vars), nil
	case p.Kind == KindAlgebraic && p.Random:
		var rational, proper bool
		if p.Algebraic != nil {
			rational, proper = p.Algebraic.Rational, p.Algebraic.Proper
		}
		return builder.RandomAlgebraic(rational, proper), nil
	case p.Kind == KindAlgebraic:
		return builder.Algebraic(p.Degree, vars, *p.Algebraic.toBuilder()), nil
	case p.Random:
		return builder.RandomClosedForm(), nil
	default:
		set := builder.FunctionSet{Trig: p.Functions.Trig, Log: p.Functions.Log, Expo: p.Functions.Expo}
		return builder.ClosedForm(p.Degree, vars, set, p.Algebraic.toBuilder()), nil
	}
}
