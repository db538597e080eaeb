package builder_test

import (
	"testing"

	"github.com/katalvlaran/mathgen/builder"
	"github.com/katalvlaran/mathgen/expr"
)

// BenchmarkPolynomial_wxyz measures a degree-5 polynomial over four indeterminates.
func BenchmarkPolynomial_wxyz(b *testing.B) {
	con := builder.Polynomial(5, expr.Vars("wxyz"))
	opt := builder.WithSeed(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(con, opt); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRandomClosedForm measures the full re-roll path.
func BenchmarkRandomClosedForm(b *testing.B) {
	con := builder.RandomClosedForm()
	opt := builder.WithSeed(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(con, opt); err != nil {
			b.Fatal(err)
		}
	}
}
