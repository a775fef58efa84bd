// Package batch compiles many ZFX sources concurrently. Independent
// compiles never share state, so a slice of sources can fan out across
// a bounded errgroup.Group instead of compiling one at a time. Grounded
// on the teacher's own worker-bounded fan-out idioms, generalized here
// to errgroup's SetLimit form.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sonicyouth98/poczfx/cache"
	"github.com/sonicyouth98/poczfx/compiler"
)

// CompileAll compiles every entry in sources concurrently, running up
// to maxConcurrency compilations at a time, and returns one Result per
// input in input order. The first parse failure cancels the errgroup's
// derived context, so compilations that have not started yet are
// skipped (compilations already running finish), and is returned as
// the single batch error; there is no partial result on
// failure, matching the all-or-nothing contract of a single
// compiler.Compile call.
func CompileAll(ctx context.Context, sources []string, maxConcurrency int) ([]*compiler.Result, error) {
	results := make([]*compiler.Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := compiler.Compile(src)
			if err != nil {
				return fmt.Errorf("compiling source %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CompileAllCached behaves like CompileAll, but routes each compile
// through c, so a repeated batch over unchanged sources never
// recompiles.
func CompileAllCached(ctx context.Context, sources []string, maxConcurrency int, c *cache.Cache) ([]*compiler.Result, error) {
	results := make([]*compiler.Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.CompileCached(src)
			if err != nil {
				return fmt.Errorf("compiling source %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
