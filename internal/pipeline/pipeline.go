// Package pipeline turns a declarative list of steps into a lazily evaluated query.
package pipeline

import (
	"github.com/pkg/errors"

	"lazyseq/internal/log"
	"lazyseq/linq"
)

// Source returns the root query described by cfg.
func Source(cfg *Config) linq.Query[int] {
	if cfg.Range.Step != 0 {
		r := cfg.Range
		return linq.NewQuery(linq.Range(r.Start, r.Stop, r.Step))
	}
	return linq.QueryFrom(cfg.Source)
}

// Apply appends one step to q. Nothing is evaluated.
func Apply(q linq.Query[int], s Step) (linq.Query[int], error) {
	switch s.Op {
	case OpSelect:
		f, err := Transform(s.Fn, s.Arg)
		if err != nil {
			return q, err
		}
		return linq.Map(q, f), nil
	case OpWhere:
		p, err := Predicate(s.Fn, s.Arg)
		if err != nil {
			return q, err
		}
		return q.Where(p), nil
	case OpTakeWhile:
		p, err := Predicate(s.Fn, s.Arg)
		if err != nil {
			return q, err
		}
		return q.TakeWhile(p), nil
	case OpTake:
		return q.Take(s.N), nil
	case OpSkip:
		return q.Skip(s.N), nil
	default:
		return q, errors.Errorf("unknown op %q", s.Op)
	}
}

// Build assembles the full chain described by cfg.
func Build(cfg *Config, logger log.Logger) (linq.Query[int], error) {
	q := Source(cfg)
	for i, s := range cfg.Steps {
		var err error
		if q, err = Apply(q, s); err != nil {
			return q, errors.Wrapf(err, "step %d", i)
		}
		logger.Debugw("Added step", "index", i, "step", Describe(s))
	}
	return q, nil
}

// Run builds and drains the chain described by cfg.
func Run(cfg *Config, logger log.Logger) ([]int, error) {
	q, err := Build(cfg, logger)
	if err != nil {
		return nil, err
	}
	values := q.ToSlice()
	if len(values) == 0 {
		logger.Warnw("Query yielded no elements", "steps", len(cfg.Steps))
	}
	logger.Infow("Evaluated query", "steps", len(cfg.Steps), "results", len(values))
	return values, nil
}
