package problemset

import (
	"context"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mathgen/builder"
	"github.com/katalvlaran/mathgen/expr"
)

// Problem is one generated problem statement.
type Problem struct {
	// ID is drawn from the problem's own stream, so it replays with the seed.
	ID uuid.UUID
	// Index is the position in the batch.
	Index int
	// Expr is the generated expression tree.
	Expr expr.Node
	// Fingerprint is the xxhash of Expr.String(); equal renderings collide.
	Fingerprint uint64
}

// Fingerprint returns the duplicate-detection hash of n.
func Fingerprint(n expr.Node) uint64 {
	return xxhash.Sum64String(n.String())
}

// makeProblem builds attempt number attempt of problem index.
func makeProblem(o *options, con builder.Constructor, index, attempt int) (Problem, error) {
	rng := problemRNG(o.seed, index, attempt)

	bopts := make([]builder.BuilderOption, 0, len(o.builderOpts)+1)
	bopts = append(bopts, o.builderOpts...)
	bopts = append(bopts, builder.WithRand(rng))

	n, err := builder.Build(con, bopts...)
	if err != nil {
		return Problem{}, fmt.Errorf("problem %d: %w", index, err)
	}
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return Problem{}, fmt.Errorf("problem %d: id: %w", index, err)
	}

	return Problem{ID: id, Index: index, Expr: n, Fingerprint: Fingerprint(n)}, nil
}

// dedupe re-rolls p until its fingerprint is not in seen, then records it.
// It returns the number of re-rolls.
func dedupe(ctx context.Context, o *options, con builder.Constructor, p Problem, seen map[uint64]struct{}) (Problem, int, error) {
	attempt := 0
	for {
		if _, dup := seen[p.Fingerprint]; !dup {
			seen[p.Fingerprint] = struct{}{}
			return p, attempt, nil
		}
		if attempt == o.maxAttempts {
			return Problem{}, attempt, fmt.Errorf("problem %d: %d re-rolls: %w", p.Index, attempt, ErrTooManyDuplicates)
		}
		if err := ctx.Err(); err != nil {
			return Problem{}, attempt, err
		}
		attempt++

		var err error
		if p, err = makeProblem(o, con, p.Index, attempt); err != nil {
			return Problem{}, attempt, err
		}
	}
}

// Generate builds n problems with con on a bounded worker pool. Problem i is
// built from a stream derived from the batch seed and i, so the result does
// not depend on the worker count. With WithUnique, duplicates are re-rolled in
// index order after the pool finishes.
//
// Errors: ErrBadCount, ErrTooManyDuplicates, builder sentinels, ctx.Err().
func Generate(ctx context.Context, n int, con builder.Constructor, opts ...Option) (problems []Problem, err error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate: %d: %w", n, ErrBadCount)
	}
	o := newOptions(opts...)

	ctx, span := o.tracer.Start(ctx, "problemset.generate",
		trace.WithAttributes(
			attribute.Int("problemset.count", n),
			attribute.Int("problemset.workers", o.workers),
			attribute.Int64("problemset.seed", o.seed),
			attribute.Bool("problemset.unique", o.unique),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	out := make([]Problem, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := makeProblem(&o, con, i, 0)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	if o.unique {
		seen := make(map[uint64]struct{}, n)
		rerolls := 0
		for i := range out {
			p, r, err := dedupe(ctx, &o, con, out[i], seen)
			rerolls += r
			if err != nil {
				span.SetAttributes(attribute.Int("problemset.rerolls", rerolls))
				return nil, fmt.Errorf("Generate: %w", err)
			}
			out[i] = p
		}
		span.SetAttributes(attribute.Int("problemset.rerolls", rerolls))
	}

	return out, nil
}

// Problems lazily yields n problems in index order on the calling goroutine.
// The sequence matches Generate with the same options. Iteration stops after
// the first error, which is yielded with a zero Problem.
func Problems(ctx context.Context, n int, con builder.Constructor, opts ...Option) iter.Seq2[Problem, error] {
	return func(yield func(Problem, error) bool) {
		if n < 1 {
			yield(Problem{}, fmt.Errorf("Problems: %d: %w", n, ErrBadCount))
			return
		}
		o := newOptions(opts...)

		var seen map[uint64]struct{}
		if o.unique {
			seen = make(map[uint64]struct{}, n)
		}
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				yield(Problem{}, fmt.Errorf("Problems: %w", err))
				return
			}
			p, err := makeProblem(&o, con, i, 0)
			if err == nil && o.unique {
				p, _, err = dedupe(ctx, &o, con, p, seen)
			}
			if err != nil {
				yield(Problem{}, fmt.Errorf("Problems: %w", err))
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}
