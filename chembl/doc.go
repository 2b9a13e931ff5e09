// Package chembl adapts the ChEMBL REST API into the lookup collaborators
// the graph engine consumes.
//
// The Client maps /target onto graph.TargetFinder and /target_relation
// onto graph.RelationLister. It performs no retries, backoff, or caching
// of its own; errors propagate to the caller, and a lookup that does not
// resolve to exactly one record fails with target.ErrNotFound.
//
// TargetCache is an optional read-through Redis cache for target records.
// It caches lookups only - traversal results are never persisted.
package chembl
