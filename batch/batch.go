// Package batch applies bytestr operations to many subjects concurrently.
//
// Results come back in input order. The first failing subject, or a
// cancelled context, stops the batch and no partial results are returned.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"bytestr"
	"bytestr/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Config holds batch runner configuration. The zero value is usable.
type Config struct {
	Concurrency int            // subjects processed at once; <= 0 means GOMAXPROCS
	Finder      bytestr.Finder // zero value matches exactly
	Logger      *slog.Logger
}

// Runner fans bytestr operations out over a bounded set of goroutines.
type Runner struct {
	limit  int
	finder bytestr.Finder
	logger *slog.Logger
}

// New creates a Runner.
func New(cfg Config) *Runner {
	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Runner{
		limit:  limit,
		finder: cfg.Finder,
		logger: logging.Default(cfg.Logger).With("component", "batch", "finder", cfg.Finder.String()),
	}
}

// Replace runs Replace(subject, search, repl) for every subject.
// An empty search token fails before any work starts.
func (r *Runner) Replace(ctx context.Context, subjects []string, search, repl string) ([]string, error) {
	rep, err := r.finder.NewReplacer(search, repl)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, "replace", subjects, func(s string) (string, error) {
		return rep.Replace(s), nil
	})
}

// Split runs Split(subject, token, policy) for every subject. The parts
// are views into the corresponding subject. An empty token or unknown
// policy fails before any work starts.
func (r *Runner) Split(ctx context.Context, subjects []string, token string, policy bytestr.EmptyParts) ([][]string, error) {
	sp, err := r.finder.NewSplitter(token, policy)
	if err != nil {
		return nil, err
	}
	return run(ctx, r, "split", subjects, func(s string) ([]string, error) {
		return sp.Split(s), nil
	})
}

func run[T any](ctx context.Context, r *Runner, op string, subjects []string, fn func(string) (T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger.With("op", op)
	logger.Debug("batch started", "subjects", len(subjects), "concurrency", r.limit)

	out := make([]T, len(subjects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, s := range subjects {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(s)
			if err != nil {
				return fmt.Errorf("subject %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("batch failed", "error", err)
		return nil, err
	}

	logger.Debug("batch finished", "subjects", len(subjects))
	return out, nil
}
