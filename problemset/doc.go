// Package problemset generates batches of practice problems from a builder
// constructor.
//
// Every problem gets its own random stream derived from the batch seed and the
// problem index (SplitMix64), so a batch replays exactly for the same seed
// regardless of WithWorkers. Each Problem carries a seed-stable UUID and an
// xxhash fingerprint of the rendered expression used by WithUnique.
//
// Generate runs on a bounded errgroup pool and records an OpenTelemetry span
// ("problemset.generate"); Problems is the lazy, single-goroutine iterator
// over the same sequence.
//
//	con := builder.RandomClosedForm()
//	set, err := problemset.Generate(ctx, 20, con,
//	    problemset.WithSeed(2024),
//	    problemset.WithUnique(10),
//	)
package problemset
