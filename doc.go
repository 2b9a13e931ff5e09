// Package targetroll rolls narrow experimental targets up to biologically
// meaningful ones.
//
// Compounds in a chemical-annotation store are tested against narrow
// targets - a single protein subunit, a species-specific construct - while
// downstream consumers want annotations reported against a receptor
// complex or a protein family. targetroll resolves a source target into
// the set of targets that should be reported in its place by walking the
// store's typed relation graph under a declarative strategy.
//
// # Architecture
//
// The module is organized in layers:
//
//   - target: the vocabulary - target records, type tags, type groups,
//     and relation types
//   - graph: the traversal engine and its edge/node data model
//   - strategy: the rule DSL, evaluators, and the strategy registry
//   - chembl: REST adapters implementing the engine's lookup
//     collaborators, plus an optional Redis record cache
//
// # Getting Started
//
// Create a client over the public ChEMBL API and roll a target up:
//
//	client := targetroll.New(chembl.DefaultConfig())
//	targets, err := client.Rollup(ctx, "smart_all", "CHEMBL1833")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range targets {
//	    fmt.Println(t.ID, t.Name)
//	}
//
// Strategy references resolve through the registry: "@null" for no
// rollup, a built-in name, a path to a *.strat rule file, or the name of
// an implementation registered with RegisterStrategy.
package targetroll
