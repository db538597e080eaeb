// Package builder provides seeded, "functional-options"-style constructors for
// randomized symbolic expressions: coefficients, function wrappers,
// polynomials, algebraic (rational/radical) forms and closed forms. Every
// constructor returns an immutable expr.Node tree for an external renderer or
// evaluator to walk.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, coefficient bounds, logger, metrics,
//     random-configuration menu and max degree.
//   - Orchestration:
//     – Build:             resolves options and runs one Constructor.
//     – BuildPolynomial, BuildAlgebraic, BuildClosedForm: typed shortcuts.
//   - Coefficient sampler:
//     – SampleCoefficient, SampleCoefficients, Coefficient.
//   - Function wrappers (Operand = Forced(n) | Free(n)):
//     – NthRoot, Trig (TrigSpec), Log, Exponential.
//   - Composers:
//     – Polynomial, Algebraic (AlgebraicShape), ClosedForm (FunctionSet).
//   - Random-configuration entry points:
//     – RandomPolynomial, RandomAlgebraic, RandomClosedForm.
//   - Observability:
//     – WithLogger:        slog diagnostics for the sampling fallback.
//     – Metrics:           Prometheus counters (NewMetrics + WithMetrics).
//
// Guarantees:
//
//   - Determinism: the same constructor, options and seed produce the same tree.
//   - Denominators are never zero; the leading coefficient of every coefficient
//     list is never zero.
//   - A polynomial of declared degree d has exactly d term slots and at least
//     one of them has exponent sum d.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping Method* context tokens; branch with errors.Is.
//
// Nothing here simplifies expressions: 2/4 stays 2/4 and like terms are not merged.
package builder
