// Package builder defines shared constants used by expression builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodCoefficient is the canonical name for the coefficient sampler.
	MethodCoefficient = "Coefficient"
	// MethodCoefficients is the canonical name for the coefficient-list sampler.
	MethodCoefficients = "Coefficients"
	// MethodNthRoot is the canonical name for the NthRoot wrapper.
	MethodNthRoot = "NthRoot"
	// MethodTrig is the canonical name for the Trig wrapper.
	MethodTrig = "Trig"
	// MethodLog is the canonical name for the Log wrapper.
	MethodLog = "Log"
	// MethodExponential is the canonical name for the Exponential wrapper.
	MethodExponential = "Exponential"
	// MethodPolynomial is the canonical name for the Polynomial constructor.
	MethodPolynomial = "Polynomial"
	// MethodAlgebraic is the canonical name for the Algebraic constructor.
	MethodAlgebraic = "Algebraic"
	// MethodClosedForm is the canonical name for the ClosedForm constructor.
	MethodClosedForm = "ClosedForm"
)

//-----------------------------------------------------------------------------
// Coefficient Bounds
//-----------------------------------------------------------------------------

// DefaultLowBound and DefaultHighBound delimit the half-open sampling range
// [low, high) used for polynomial coefficients when WithBounds is not given.
const (
	DefaultLowBound  = -10
	DefaultHighBound = 10
)

// Function wrappers sample their own leading coefficient from a fixed range,
// independent of the configured bounds.
const (
	FunctionCoeffLow  = -10
	FunctionCoeffHigh = 10
)

// Numeric operands (radicands, substituted trig arguments) are sampled from [1,10).
const (
	NumericOperandLow  = 1
	NumericOperandHigh = 10
)

// MaxBoundMagnitude caps |low| and |high| of a coefficient range. The working
// pool holds round((|low|+|high|)/2) values and is drawn for every coefficient.
const MaxBoundMagnitude = 10_000

// When the candidate pool cannot be drawn from [low, high), both bounds are
// multiplied by FallbackFactor and exactly FallbackPoolSize values are drawn.
const (
	FallbackFactor   = 5
	FallbackPoolSize = 5
)

//-----------------------------------------------------------------------------
// Degrees, Roots, Bases
//-----------------------------------------------------------------------------

// MinPolynomialDegree is the smallest polynomial degree; degree 0 is a constant.
const MinPolynomialDegree = 0

// MinAlgebraicDegree is the smallest degree for which a proper quotient can
// have a strictly lower-degree numerator.
const MinAlgebraicDegree = 1

// MinRoot is the smallest root index; root 1 means "no radical" in the rational branches.
const MinRoot = 1

// MinLogBase is the smallest named logarithm base; 0 selects the natural log.
const MinLogBase = 2

// DefaultTrigPower is the power-of-function degree used when TrigSpec.Power is 0.
const DefaultTrigPower = 1

// MaxIndeterminates caps the indeterminate set so the 2^n subset pool stays small.
const MaxIndeterminates = 12

//-----------------------------------------------------------------------------
// Random-configuration defaults
//-----------------------------------------------------------------------------

// DefaultMaxDegree is the upper bound of the degree drawn by the Random* constructors.
const DefaultMaxDegree = 5

// minRandomDegree is the lower bound of the degree drawn by the Random* constructors.
const minRandomDegree = 1
