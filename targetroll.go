package targetroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pharmatlas/targetroll/chembl"
	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/strategy"
	"github.com/pharmatlas/targetroll/target"
)

// Client wires the ChEMBL adapters, the graph engine, and the strategy
// registry into one entry point. Safe for concurrent use.
type Client struct {
	api      *chembl.Client
	engine   *graph.Engine
	registry *strategy.Registry
}

// Option configures a Client.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	targets graph.TargetFinder
}

// WithLogger sets the structured logger used by the engine and adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTargetFinder replaces the target lookup collaborator, e.g. with a
// chembl.TargetCache wrapping the REST client.
func WithTargetFinder(finder graph.TargetFinder) Option {
	return func(o *options) {
		o.targets = finder
	}
}

// New creates a client over the ChEMBL REST API described by cfg.
func New(cfg chembl.Config, opts ...Option) *Client {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	api := chembl.NewClient(cfg, chembl.WithLogger(o.logger))
	targets := o.targets
	if targets == nil {
		targets = api
	}
	engine := graph.NewEngine(targets, api, graph.WithLogger(o.logger))
	return &Client{
		api:      api,
		engine:   engine,
		registry: strategy.NewRegistry(engine),
	}
}

// Engine returns the underlying traversal engine.
func (c *Client) Engine() *graph.Engine {
	return c.engine
}

// RegisterStrategy adds a custom strategy implementation under a name, so
// that Rollup can reference it.
func (c *Client) RegisterStrategy(name string, factory strategy.Factory) error {
	return c.registry.Register(name, factory)
}

// Resolve turns a strategy reference into an executable evaluator.
func (c *Client) Resolve(reference string) (strategy.Evaluator, error) {
	return c.registry.Resolve(reference)
}

// Rollup resolves a strategy reference, looks up the root target by id,
// and returns the targets the strategy accepts for it.
func (c *Client) Rollup(ctx context.Context, reference, id string) ([]target.Target, error) {
	ev, err := c.registry.Resolve(reference)
	if err != nil {
		return nil, err
	}
	root, err := c.engine.FindTarget(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", id, err)
	}
	return ev.Run(ctx, root)
}
