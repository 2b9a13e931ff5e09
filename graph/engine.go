package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/pharmatlas/targetroll/target"
)

// Relation is one outgoing relation as reported by a RelationLister. The
// label is the store's free-form relationship string ("SUPERSET OF") and is
// normalized by the engine.
type Relation struct {
	Label     string
	RelatedID string
}

// TargetFinder resolves a target id into its record. Implementations must
// return an error wrapping target.ErrNotFound when the id does not resolve
// to exactly one record.
type TargetFinder interface {
	FindTarget(ctx context.Context, id string) (target.Target, error)
}

// RelationLister enumerates the outgoing relations of a target.
type RelationLister interface {
	RelationsFrom(ctx context.Context, id string) ([]Relation, error)
}

// Engine traverses the target-relation graph through a pair of lookup
// collaborators. An Engine is stateless between calls and safe for
// concurrent use; each Traverse call owns its own accumulator.
type Engine struct {
	targets   TargetFinder
	relations RelationLister
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger used for traversal progress.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracer sets the OpenTelemetry tracer for traversal spans. The
// default is a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// NewEngine creates an engine over the given lookup collaborators.
func NewEngine(targets TargetFinder, relations RelationLister, opts ...Option) *Engine {
	e := &Engine{
		targets:   targets,
		relations: relations,
		logger:    slog.Default(),
		tracer:    noop.NewTracerProvider().Tracer("targetroll/graph"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FindTarget resolves an id through the engine's target lookup
// collaborator, for callers that need the root record before traversing.
func (e *Engine) FindTarget(ctx context.Context, id string) (target.Target, error) {
	return e.targets.FindTarget(ctx, id)
}

// Traverse explores the graph from root under the permitted-edge set and
// returns every reached node. The walk is synchronous and runs to
// completion; collaborator errors abort it and propagate unmodified apart
// from wrapping.
func (e *Engine) Traverse(ctx context.Context, root target.Target, permitted []EdgeReq) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "graph.Traverse")
	defer span.End()

	patterns, err := compilePatterns(permitted)
	if err != nil {
		return nil, err
	}
	relTypes := make(map[target.RelType]bool, len(permitted))
	for _, req := range permitted {
		relTypes[req.Rel] = true
	}

	runID := uuid.NewString()[:8]
	log := e.logger.With("run", runID, "root", root.ID)
	log.Debug("starting traversal", "permitted", len(permitted))

	res := newResult()
	stack := []Node{{Depth: 0, Target: root, parent: -1}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Contains(cur.Target.ID) {
			continue
		}
		candidates, err := e.expand(ctx, cur, permitted, relTypes, patterns)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", cur.Target.ID, err)
		}
		cur.Terminal = len(candidates) == 0
		idx := res.add(cur)
		// Push in reverse so candidates pop in discovery order, matching
		// the recursive expansion this replaces.
		for i := len(candidates) - 1; i >= 0; i-- {
			c := candidates[i]
			if c.Matched.Rel == target.RelSelfLink {
				continue
			}
			if res.Contains(c.Target.ID) {
				continue
			}
			c.parent = idx
			stack = append(stack, c)
		}
	}

	log.Debug("traversal complete", "nodes", res.Len())
	return res, nil
}

// expand lists the outgoing edges of cur that satisfy some permitted
// requirement. Each satisfied (edge, requirement) pair yields one
// candidate, so the same destination can appear once per matching
// requirement; the stack's first-wins check collapses them later.
func (e *Engine) expand(ctx context.Context, cur Node, permitted []EdgeReq, relTypes map[target.RelType]bool, patterns patternSet) ([]Node, error) {
	relations, err := e.relations.RelationsFrom(ctx, cur.Target.ID)
	if err != nil {
		return nil, err
	}

	type link struct {
		rel target.RelType
		dst target.Target
	}
	links := make([]link, 0, len(relations))
	for _, r := range relations {
		rel, err := target.ParseRelType(r.Label)
		if err != nil {
			return nil, err
		}
		if !relTypes[rel] && !relTypes[target.RelAnyLink] {
			continue
		}
		dst, err := e.targets.FindTarget(ctx, r.RelatedID)
		if err != nil {
			return nil, err
		}
		links = append(links, link{rel: rel, dst: dst})
	}
	// The identity edge: matched like any other but never pushed onward.
	if relTypes[target.RelSelfLink] {
		links = append(links, link{rel: target.RelSelfLink, dst: cur.Target})
	}

	var candidates []Node
	for _, l := range links {
		for i := range permitted {
			if !permitted[i].matches(cur.Target, l.rel, l.dst, patterns) {
				continue
			}
			matched := permitted[i]
			candidates = append(candidates, Node{
				Depth:   cur.Depth + 1,
				Target:  l.dst,
				Matched: &matched,
			})
		}
	}
	return candidates, nil
}
