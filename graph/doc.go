// Package graph implements traversal of the target-relation graph.
//
// The annotation store links narrow experimental targets (a single protein
// subunit, a species-specific construct) to broader ones (a receptor
// complex, a protein family) through typed relations. This package walks
// those links from a root target under a set of permitted edge
// requirements, producing the set of reachable nodes with their depth,
// provenance, and terminal status.
//
// # Edge Requirements
//
// An EdgeReq is a predicate over one (source, relation, destination)
// triple: the source and destination type tags, the relation type, and
// optional anchored name patterns. The permitted set handed to Traverse is
// the whole of the traversal policy; acceptance of the reached nodes is
// layered on top by the strategy package.
//
// # Traversal Semantics
//
// Traverse preserves the path-order-dependent expansion of a plain
// recursive depth-first walk, implemented with an explicit stack so that
// densely interconnected hierarchies cannot exhaust the call stack. A
// target appears at most once in a result: the first discovered path wins,
// and the depth recorded is the depth along that path, which is not
// necessarily a global shortest-path distance. A node is terminal iff it
// had no matching outgoing candidate edges at the moment it was expanded.
//
// Self-link requirements contribute an implicit identity edge that is
// matched but never traversed onward, so self loops cannot recurse.
//
// # Collaborators
//
// The engine performs no I/O of its own; it calls a TargetFinder to resolve
// ids into records and a RelationLister to enumerate outgoing relations.
// Both are blocking and must handle their own timeouts and retries - the
// engine adds none, and any error they return aborts the traversal.
package graph
