// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_functions.go - function wrappers: nth root, trig families, log, exp.
//
// Canonical model:
//   - Every wrapper samples its own leading coefficient from the fixed range
//     [FunctionCoeffLow, FunctionCoeffHigh) as a one-slot coefficient list, so
//     it is never zero.
//   - A Forced operand is used as given. A Free operand may be replaced by a
//     numeric radicand/argument drawn from [NumericOperandLow, NumericOperandHigh):
//       nth root: operand kept with probability 2/3;
//       trig:     operand kept with probability 3/5.
//   - Log and Exponential always wrap the operand they are given.
//
// Contract:
//   - root ≥ MinRoot, base == 0 or ≥ MinLogBase, trig power ≥ 0 (0 → DefaultTrigPower).
//   - A Forced nil operand, or a nil operand for Log/Exponential, is ErrConstructFailed.
//
// Complexity: O(1) draws per wrapper; operand construction is the caller's.

package builder

import "github.com/katalvlaran/mathgen/expr"

// Draw shapes of the free-operand decisions.
const (
	rootOperandSlots = 3 // slots ≥ 1 keep the operand
	trigOperandSlots = 5 // slots < 3 keep the operand
	trigOperandKeep  = 3
)

// Operand is the argument of a function wrapper. Forced operands are always
// used; free ones may be swapped for a numeric value by NthRoot and Trig.
type Operand struct {
	Node   expr.Node
	Forced bool
}

// Forced returns an operand the wrapper must use as is.
func Forced(n expr.Node) Operand { return Operand{Node: n, Forced: true} }

// Free returns an operand the wrapper may replace with a sampled number.
// A nil node always yields the numeric substitute.
func Free(n expr.Node) Operand { return Operand{Node: n} }

// TrigSpec selects the trig family and the power-of-function degree.
type TrigSpec struct {
	// Power is the exponent applied to the function (sin^Power). 0 means DefaultTrigPower.
	Power int
	// Inverse selects arcsin, arccos, ... instead of sin, cos, ...
	Inverse bool
	// Hyperbolic selects sinh, cosh, ... instead of sin, cos, ...
	Hyperbolic bool
}

// functionCoefficient samples a wrapper's own leading coefficient.
func functionCoefficient(cfg builderConfig) (expr.Coefficient, error) {
	coeffs, err := sampleCoefficients(cfg, 0, FunctionCoeffLow, FunctionCoeffHigh)
	if err != nil {
		return expr.Coefficient{}, err
	}
	return coeffs[0], nil
}

// numericOperand samples a non-zero numeric radicand or argument.
func numericOperand(cfg builderConfig) (expr.Node, error) {
	coeffs, err := sampleCoefficients(cfg, 0, NumericOperandLow, NumericOperandHigh)
	if err != nil {
		return nil, err
	}
	return coeffs[0], nil
}

// resolveOperand applies the keep-or-substitute rule: a free, non-nil operand
// survives when rng.Intn(slots) < keep.
func resolveOperand(cfg builderConfig, method string, op Operand, slots, keep int) (expr.Node, error) {
	if op.Forced {
		if op.Node == nil {
			return nil, builderErrorf(method, ErrConstructFailed, "forced operand is nil")
		}
		return op.Node, nil
	}
	if op.Node != nil && cfg.rng.Intn(slots) < keep {
		return op.Node, nil
	}
	return numericOperand(cfg)
}

// requireOperand rejects nil operands for wrappers without a numeric substitute.
func requireOperand(method string, op Operand) (expr.Node, error) {
	if op.Node == nil {
		return nil, builderErrorf(method, ErrConstructFailed, "operand is nil")
	}
	return op.Node, nil
}

// nthRoot builds coeff·root-th root(operand).
func nthRoot(cfg builderConfig, root int, op Operand) (*expr.Call, error) {
	if err := validateRoot(MethodNthRoot, root); err != nil {
		return nil, err
	}
	// rootOperandSlots-1 of rootOperandSlots outcomes keep the operand.
	arg, err := resolveOperand(cfg, MethodNthRoot, op, rootOperandSlots, rootOperandSlots-1)
	if err != nil {
		return nil, err
	}
	coeff, err := functionCoefficient(cfg)
	if err != nil {
		return nil, err
	}

	return &expr.Call{Coeff: coeff, Func: expr.FuncRoot, Root: root, Arg: arg}, nil
}

// trig builds coeff·f^power(operand) for a uniformly chosen f of the family.
func trig(cfg builderConfig, op Operand, spec TrigSpec) (*expr.Call, error) {
	power := spec.Power
	if power < 0 {
		return nil, builderErrorf(MethodTrig, ErrBadDegree, "trig power must be ≥ 0, got %d", power)
	}
	if power == 0 {
		power = DefaultTrigPower
	}

	family := expr.TrigFamily(spec.Inverse, spec.Hyperbolic)
	fn := family[cfg.rng.Intn(len(family))]
	arg, err := resolveOperand(cfg, MethodTrig, op, trigOperandSlots, trigOperandKeep)
	if err != nil {
		return nil, err
	}
	coeff, err := functionCoefficient(cfg)
	if err != nil {
		return nil, err
	}

	return &expr.Call{Coeff: coeff, Func: fn, Power: power, Arg: arg}, nil
}

// logarithm builds coeff·ln(operand) for base 0, else coeff·log-base(operand).
func logarithm(cfg builderConfig, op Operand, base int) (*expr.Call, error) {
	if err := validateBase(MethodLog, base); err != nil {
		return nil, err
	}
	arg, err := requireOperand(MethodLog, op)
	if err != nil {
		return nil, err
	}
	coeff, err := functionCoefficient(cfg)
	if err != nil {
		return nil, err
	}

	call := &expr.Call{Coeff: coeff, Func: expr.FuncLn, Arg: arg}
	if base != 0 {
		call.Func, call.Base = expr.FuncLog, base
	}
	return call, nil
}

// exponential builds coeff·exp(operand).
func exponential(cfg builderConfig, op Operand) (*expr.Call, error) {
	arg, err := requireOperand(MethodExponential, op)
	if err != nil {
		return nil, err
	}
	coeff, err := functionCoefficient(cfg)
	if err != nil {
		return nil, err
	}

	return &expr.Call{Coeff: coeff, Func: expr.FuncExp, Arg: arg}, nil
}

// NthRoot returns a Constructor for coeff·root-th root(operand).
// A Free operand is replaced by a number in [1,10) one time in three.
func NthRoot(root int, op Operand) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodNthRoot, cfg); err != nil {
			return nil, err
		}
		call, err := nthRoot(cfg, root, op)
		if err != nil {
			return nil, err
		}
		return call, nil
	}
}

// Trig returns a Constructor for coeff·f^power(operand), f drawn uniformly
// from the family selected by spec. A Free operand is replaced by a number
// in [1,10) two times in five.
func Trig(op Operand, spec TrigSpec) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodTrig, cfg); err != nil {
			return nil, err
		}
		call, err := trig(cfg, op, spec)
		if err != nil {
			return nil, err
		}
		return call, nil
	}
}

// Log returns a Constructor for coeff·ln(operand) (base 0) or coeff·log-base(operand).
func Log(op Operand, base int) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodLog, cfg); err != nil {
			return nil, err
		}
		call, err := logarithm(cfg, op, base)
		if err != nil {
			return nil, err
		}
		return call, nil
	}
}

// Exponential returns a Constructor for coeff·exp(operand).
func Exponential(op Operand) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodExponential, cfg); err != nil {
			return nil, err
		}
		call, err := exponential(cfg, op)
		if err != nil {
			return nil, err
		}
		return call, nil
	}
}
