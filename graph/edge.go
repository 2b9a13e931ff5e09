package graph

import (
	"fmt"
	"regexp"

	"github.com/pharmatlas/targetroll/target"
)

// EdgeReq is the matching predicate for one permitted edge: a (source
// type, relation, destination type) triple plus optional name patterns on
// either end.
//
// EdgeReq is a plain comparable value so that it can key the acceptance
// map of a strategy. Patterns are therefore held as their regular
// expression source text rather than as compiled objects; two requirements
// with the same pattern text are the same requirement. An empty pattern
// matches any name.
type EdgeReq struct {
	// SourceType is the required type tag of the edge's source target.
	SourceType target.Type

	// SourcePattern is a regular expression the source's full name must
	// match, or "" for no constraint. A target without a name never
	// matches a non-empty pattern.
	SourcePattern string

	// Rel is the required relation type. RelAnyLink matches any of the
	// four store-defined relation types.
	Rel target.RelType

	// DestType is the required type tag of the edge's destination target.
	DestType target.Type

	// DestPattern is the name pattern for the destination, or "".
	DestPattern string
}

// String renders the requirement in the strategy DSL's shape, for logs and
// error messages.
func (r EdgeReq) String() string {
	s := fmt.Sprintf("%s %s %s", r.SourceType, r.Rel, r.DestType)
	if r.SourcePattern != "" {
		s += fmt.Sprintf(" src:'''%s'''", r.SourcePattern)
	}
	if r.DestPattern != "" {
		s += fmt.Sprintf(" dest:'''%s'''", r.DestPattern)
	}
	return s
}

// Validate checks that both patterns compile. Strategy parsing calls this
// so that a broken pattern fails at load time, not mid-traversal.
func (r EdgeReq) Validate() error {
	if _, err := CompilePattern(r.SourcePattern); err != nil {
		return fmt.Errorf("source pattern: %w", err)
	}
	if _, err := CompilePattern(r.DestPattern); err != nil {
		return fmt.Errorf("dest pattern: %w", err)
	}
	return nil
}

// CompilePattern compiles a requirement name pattern, anchored so that it
// must match the whole name. Returns (nil, nil) for the empty pattern.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return re, nil
}

// patternSet holds the compiled patterns for one permitted-edge set,
// keyed by pattern source text. Built once per traversal.
type patternSet map[string]*regexp.Regexp

func compilePatterns(permitted []EdgeReq) (patternSet, error) {
	ps := make(patternSet)
	for _, req := range permitted {
		for _, expr := range []string{req.SourcePattern, req.DestPattern} {
			if expr == "" {
				continue
			}
			if _, ok := ps[expr]; ok {
				continue
			}
			re, err := CompilePattern(expr)
			if err != nil {
				return nil, err
			}
			ps[expr] = re
		}
	}
	return ps, nil
}

func (ps patternSet) matches(expr, name string) bool {
	if expr == "" {
		return true
	}
	if name == "" {
		return false
	}
	re, ok := ps[expr]
	if !ok {
		return false
	}
	return re.MatchString(name)
}

// matches reports whether the observed (src, rel, dst) triple satisfies
// the requirement. RelAnyLink in the requirement matches any concrete
// relation type; an observed self link only ever matches RelSelfLink.
func (r EdgeReq) matches(src target.Target, rel target.RelType, dst target.Target, ps patternSet) bool {
	if r.SourceType != src.Type || r.DestType != dst.Type {
		return false
	}
	if r.Rel != rel && !(r.Rel == target.RelAnyLink && rel.IsConcrete()) {
		return false
	}
	return ps.matches(r.SourcePattern, src.Name) && ps.matches(r.DestPattern, dst.Name)
}
