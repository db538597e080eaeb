// SPDX-License-Identifier: MIT

// Package expr defines the expression tree produced by the mathgen builders.
//
// The tree is a closed (sealed) set of node kinds so that renderers and
// evaluators can switch on concrete types instead of inspecting shapes:
//
//	Coefficient  – signed whole number or fraction kept in display form (+3, -1/4).
//	Variable     – a single indeterminate symbol (x, y, z, w).
//	Polynomial   – Σ coefficient·term  +  trailing constant coefficient.
//	Quotient     – numerator / denominator.
//	Call         – coefficient · f(argument): nth-root, trig family, ln/log, exp.
//	ClosedForm   – base expression followed by a combinator and function factors.
//
// Guarantees:
//
//   - Nodes are values describing a finished expression; the builders never
//     retain or mutate a node after returning it.
//   - Coefficients never carry a zero denominator.
//   - Validate reports structural violations with ErrInvalidNode so that trees
//     received from outside the builders can be checked before use.
//
// String returns a compact, stable debug notation; it is used for logging and
// fingerprinting, not as a typesetting format.
package expr
