package strategy

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pharmatlas/targetroll/graph"
)

// NullStrategy is the reserved reference for the no-rollup strategy, which
// reports the source target unchanged without touching the graph.
const NullStrategy = "@null"

// Suffix is the reserved file extension for strategy rule files.
const Suffix = ".strat"

//go:embed strategies/*.strat
var builtinFS embed.FS

// Factory produces an Evaluator bound to a graph engine. Custom strategy
// implementations register one under a name; the Factory signature is the
// conformance contract, checked at compile time instead of by reflection.
type Factory func(engine *graph.Engine) (Evaluator, error)

// Registry resolves strategy references into executable Evaluators.
//
// Resolution order for a reference:
//
//  1. "@null" - the null strategy
//  2. the name of a built-in rule resource - parsed from the embedded file
//  3. a path ending in ".strat" - parsed from that file
//  4. a name registered via Register - built by its factory
//
// Anything else fails with ErrNotRegistered. Thread-safe.
type Registry struct {
	engine *graph.Engine

	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry whose evaluators run on the given engine.
func NewRegistry(engine *graph.Engine) *Registry {
	return &Registry{
		engine:    engine,
		factories: make(map[string]Factory),
	}
}

// Register adds a custom strategy implementation under a name. The name
// must not collide with the null strategy, a built-in, or a previously
// registered factory, and the factory must be non-nil.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" || name == NullStrategy || strings.HasSuffix(name, Suffix) {
		return fmt.Errorf("%w: reserved strategy name %q", ErrNotRegistered, name)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory for %q", ErrNotRegistered, name)
	}
	if hasBuiltin(name) {
		return fmt.Errorf("%w: %q shadows a built-in strategy", ErrNotRegistered, name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: duplicate strategy name %q", ErrNotRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// Resolve turns a strategy reference into an Evaluator.
func (r *Registry) Resolve(reference string) (Evaluator, error) {
	if reference == NullStrategy {
		return nullEvaluator{}, nil
	}
	if hasBuiltin(reference) {
		text, err := builtinFS.ReadFile("strategies/" + reference + Suffix)
		if err != nil {
			return nil, fmt.Errorf("reading built-in strategy %q: %w", reference, err)
		}
		return r.fromText(reference, string(text))
	}
	if strings.HasSuffix(reference, Suffix) {
		text, err := os.ReadFile(reference)
		if err != nil {
			return nil, fmt.Errorf("reading strategy file %q: %w", reference, err)
		}
		return r.fromText(reference, string(text))
	}

	r.mu.RLock()
	factory, ok := r.factories[reference]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, reference)
	}
	ev, err := factory(r.engine)
	if err != nil {
		return nil, fmt.Errorf("building strategy %q: %w", reference, err)
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: factory for %q returned no evaluator", ErrNotRegistered, reference)
	}
	return ev, nil
}

func (r *Registry) fromText(name, text string) (Evaluator, error) {
	strat, err := ParseText(text)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", name, err)
	}
	return NewEvaluator(name, strat, r.engine), nil
}

// Builtins returns the names of the embedded rule resources, sorted.
func Builtins() []string {
	entries, err := builtinFS.ReadDir("strategies")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), Suffix))
	}
	sort.Strings(names)
	return names
}

func hasBuiltin(name string) bool {
	if strings.Contains(name, "/") || strings.Contains(name, ".") {
		return false
	}
	_, err := builtinFS.ReadFile("strategies/" + name + Suffix)
	return err == nil
}
