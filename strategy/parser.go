package strategy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/target"
)

// lineRE captures: 1 source type spec, 2 relation symbol, 3 dest type
// spec, 4 acceptance symbol, 5 source pattern, 6 dest pattern. The accept
// clause is syntactically optional here but required by Parse; see below.
var lineRE = regexp.MustCompile(
	`^\s*(@?[a-z_]+)\s*([<>~=.*])\s*(@?[a-z_]+)\s*(?:accept:([-*^$]))?\s*(?:src:'''(.+?)''')?\s*(?:dest:'''(.+?)''')?\s*(?:#.*)?$`,
)

var relSymbols = map[string]target.RelType{
	"<": target.RelSubsetOf,
	">": target.RelSupersetOf,
	"~": target.RelOverlapsWith,
	"=": target.RelEquivalentTo,
	"*": target.RelAnyLink,
	".": target.RelSelfLink,
}

var acceptSymbols = map[string]Acceptance{
	"*": Always,
	"-": Never,
	"^": AtStart,
	"$": AtEnd,
}

// ParseText parses a whole rule file. Blank lines and lines starting with
// # are skipped; everything else must parse or the load fails with
// ErrParse.
func ParseText(text string) (Strategy, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return Parse(lines)
}

// Parse compiles rule lines into a strategy. Each line expands into the
// cross product of its resolved source and destination types; all expanded
// requirements share the line's relation, patterns, and acceptance policy.
// Later lines overwrite the policy of an identical requirement.
//
// The accept clause is required: the reference grammar marks it optional,
// but a rule without a policy has no defined meaning, so omitting it is an
// error rather than a silent default.
func Parse(lines []string) (Strategy, error) {
	var reqs []graph.EdgeReq
	acceptance := make(map[graph.EdgeReq]Acceptance)
	for i, line := range lines {
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return Strategy{}, lineErr(i, line, "does not match the rule grammar")
		}
		sources, err := target.ResolveTypes(m[1])
		if err != nil {
			return Strategy{}, lineErrf(i, line, err)
		}
		rel := relSymbols[m[2]]
		dests, err := target.ResolveTypes(m[3])
		if err != nil {
			return Strategy{}, lineErrf(i, line, err)
		}
		if m[4] == "" {
			return Strategy{}, lineErr(i, line, "missing accept clause")
		}
		accept := acceptSymbols[m[4]]
		srcPattern, destPattern := m[5], m[6]
		if _, err := graph.CompilePattern(srcPattern); err != nil {
			return Strategy{}, lineErrf(i, line, err)
		}
		if _, err := graph.CompilePattern(destPattern); err != nil {
			return Strategy{}, lineErrf(i, line, err)
		}

		for _, src := range sources {
			for _, dst := range dests {
				req := graph.EdgeReq{
					SourceType:    src,
					SourcePattern: srcPattern,
					Rel:           rel,
					DestType:      dst,
					DestPattern:   destPattern,
				}
				if _, seen := acceptance[req]; !seen {
					reqs = append(reqs, req)
				}
				acceptance[req] = accept
			}
		}
	}
	return New(reqs, acceptance), nil
}

func lineErr(i int, line, msg string) error {
	return fmt.Errorf("%w: line %d %q: %s", ErrParse, i+1, line, msg)
}

func lineErrf(i int, line string, err error) error {
	return fmt.Errorf("%w: line %d %q: %v", ErrParse, i+1, line, err)
}
