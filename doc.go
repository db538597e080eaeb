// Package mathgen generates randomized symbolic math expressions for practice
// problems: polynomials, rational and radical (algebraic) forms, and closed
// forms that combine a base expression with trigonometric, logarithmic and
// exponential factors.
//
// What is in the box?
//
//	• expr/       : the expression tree (Coefficient, Polynomial, Quotient,
//	                Call, ClosedForm) with Walk and Validate
//	• builder/    : seeded constructors with functional options, sentinel
//	                errors, slog diagnostics and optional Prometheus counters
//	• config/     : YAML/JSON generation profiles mapped to builder options
//	• problemset/ : concurrent, seed-stable batches with UUIDs, duplicate
//	                rejection and OpenTelemetry spans
//
// Rendering, numeric evaluation and answer keys are left to the consumer;
// every builder returns a tree to walk.
//
// Quick example:
//
//	p, err := builder.BuildPolynomial(2, expr.Vars("xy"), builder.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	fmt.Println(p) // same output for the same seed
//
//	go get github.com/katalvlaran/mathgen
package mathgen
