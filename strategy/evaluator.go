package strategy

import (
	"context"

	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/target"
)

// Evaluator resolves a root target into the set of targets that should be
// reported in its place.
type Evaluator interface {
	// Run traverses from root and returns the accepted targets, in
	// discovery order and free of duplicates. The root itself is only
	// included if an edge independently reaches it with an accepted
	// requirement.
	Run(ctx context.Context, root target.Target) ([]target.Target, error)
}

// standardEvaluator runs a parsed strategy through the graph engine.
type standardEvaluator struct {
	name   string
	strat  Strategy
	engine *graph.Engine
}

// NewEvaluator wraps a parsed strategy and an engine into an Evaluator.
func NewEvaluator(name string, strat Strategy, engine *graph.Engine) Evaluator {
	return &standardEvaluator{name: name, strat: strat, engine: engine}
}

func (ev *standardEvaluator) Run(ctx context.Context, root target.Target) ([]target.Target, error) {
	res, err := ev.engine.Traverse(ctx, root, ev.strat.Requirements())
	if err != nil {
		return nil, err
	}
	var out []target.Target
	for _, n := range res.Nodes() {
		if ev.strat.Accepts(n) {
			out = append(out, n.Target)
		}
	}
	return out, nil
}

func (ev *standardEvaluator) String() string {
	return ev.name
}

// nullEvaluator reports the root unchanged, with zero collaborator calls.
// Used when no rollup is desired.
type nullEvaluator struct{}

func (nullEvaluator) Run(ctx context.Context, root target.Target) ([]target.Target, error) {
	return []target.Target{root}, nil
}

func (nullEvaluator) String() string {
	return NullStrategy
}
