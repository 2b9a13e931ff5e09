package strategy

import (
	"errors"

	"github.com/pharmatlas/targetroll/graph"
)

// Sentinel errors for strategy loading and resolution.
var (
	// ErrParse indicates a malformed rule line. Strategy loading is
	// atomic: a single bad line fails the whole load and no partial
	// strategy is ever returned.
	//
	// Example:
	//
	//	_, err := strategy.ParseText(text)
	//	if errors.Is(err, strategy.ErrParse) {
	//	    log.Printf("bad strategy file: %v", err)
	//	}
	ErrParse = errors.New("strategy parse error")

	// ErrNotRegistered indicates a strategy reference that is neither a
	// built-in, a rule file, nor a registered implementation. This is a
	// configuration error and fatal at resolution time.
	ErrNotRegistered = errors.New("strategy not registered")
)

// Acceptance decides whether a reached node's target is included in a
// strategy's final output.
type Acceptance string

const (
	// Always includes every node reached through the requirement.
	Always Acceptance = "always"

	// Never excludes the node; the requirement exists only to let the
	// traversal pass through.
	Never Acceptance = "never"

	// AtStart includes the node only at depth 0. Only the root sits at
	// depth 0 and the root's matched requirement is always nil, so this
	// policy is effectively unreachable; it is kept because the rule
	// grammar defines it.
	AtStart Acceptance = "at_start"

	// AtEnd includes the node only if it is terminal.
	AtEnd Acceptance = "at_end"
)

// String returns the string representation of the policy.
func (a Acceptance) String() string {
	return string(a)
}

// IsValid returns true if the policy is a recognized value.
func (a Acceptance) IsValid() bool {
	switch a {
	case Always, Never, AtStart, AtEnd:
		return true
	default:
		return false
	}
}

// Strategy is an immutable pair of a permitted-edge set and the acceptance
// policy of each requirement in it.
type Strategy struct {
	reqs       []graph.EdgeReq
	acceptance map[graph.EdgeReq]Acceptance
}

// New builds a strategy from a requirement list and acceptance map. Both
// are copied; requirements missing from the map default to Never.
func New(reqs []graph.EdgeReq, acceptance map[graph.EdgeReq]Acceptance) Strategy {
	s := Strategy{
		reqs:       make([]graph.EdgeReq, len(reqs)),
		acceptance: make(map[graph.EdgeReq]Acceptance, len(acceptance)),
	}
	copy(s.reqs, reqs)
	for req, pol := range acceptance {
		s.acceptance[req] = pol
	}
	return s
}

// Requirements returns a copy of the permitted-edge set.
func (s Strategy) Requirements() []graph.EdgeReq {
	out := make([]graph.EdgeReq, len(s.reqs))
	copy(out, s.reqs)
	return out
}

// Len returns the number of edge requirements.
func (s Strategy) Len() int {
	return len(s.reqs)
}

// Acceptance returns the policy for a requirement.
func (s Strategy) Acceptance(req graph.EdgeReq) (Acceptance, bool) {
	pol, ok := s.acceptance[req]
	return pol, ok
}

// Accepts decides whether a traversal node's target belongs in the final
// output. Nodes without a matched requirement (the root) are never
// auto-included.
func (s Strategy) Accepts(n graph.Node) bool {
	if n.Matched == nil {
		return false
	}
	pol, ok := s.acceptance[*n.Matched]
	if !ok {
		return false
	}
	switch pol {
	case Always:
		return true
	case AtStart:
		return n.Start()
	case AtEnd:
		return n.Terminal
	default:
		return false
	}
}
