package strategy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatlas/targetroll/graph"
	"github.com/pharmatlas/targetroll/target"
)

// fakeStore is an in-memory pair of lookup collaborators that counts calls.
type fakeStore struct {
	targets   map[string]target.Target
	relations map[string][]graph.Relation
	calls     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		targets:   make(map[string]target.Target),
		relations: make(map[string][]graph.Relation),
	}
}

func (f *fakeStore) FindTarget(ctx context.Context, id string) (target.Target, error) {
	f.calls++
	t, ok := f.targets[id]
	if !ok {
		return target.Target{}, fmt.Errorf("%w: %s", target.ErrNotFound, id)
	}
	return t, nil
}

func (f *fakeStore) RelationsFrom(ctx context.Context, id string) ([]graph.Relation, error) {
	f.calls++
	return f.relations[id], nil
}

func (f *fakeStore) add(t target.Target, rels ...graph.Relation) {
	f.targets[t.ID] = t
	f.relations[t.ID] = rels
}

func (f *fakeStore) engine() *graph.Engine {
	return graph.NewEngine(f, f)
}

func TestEvaluator_SingleHopRollup(t *testing.T) {
	store := newFakeStore()
	store.add(target.Target{ID: "A", Name: "subunit", Type: target.TypeSingleProtein},
		graph.Relation{Label: "SUBSET OF", RelatedID: "B"})
	store.add(target.Target{ID: "B", Name: "family", Type: target.TypeProteinFamily})

	strat, err := Parse([]string{"single_protein < protein_family accept:*"})
	require.NoError(t, err)

	got, err := NewEvaluator("test", strat, store.engine()).Run(context.Background(), store.targets["A"])
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].ID)
}

func TestEvaluator_RootWithNoRelations(t *testing.T) {
	store := newFakeStore()
	store.add(target.Target{ID: "A", Name: "subunit", Type: target.TypeSingleProtein})

	strat, err := Parse([]string{"single_protein < protein_family accept:*"})
	require.NoError(t, err)

	got, err := NewEvaluator("test", strat, store.engine()).Run(context.Background(), store.targets["A"])
	require.NoError(t, err)
	assert.Empty(t, got, "the root is never auto-included")
}

func TestEvaluator_AtEndKeepsOnlyTerminalNodes(t *testing.T) {
	// A -> B -> C, all subset links; only C is terminal.
	store := newFakeStore()
	store.add(target.Target{ID: "A", Name: "a", Type: target.TypeSingleProtein},
		graph.Relation{Label: "SUBSET OF", RelatedID: "B"})
	store.add(target.Target{ID: "B", Name: "b", Type: target.TypeProteinFamily},
		graph.Relation{Label: "SUBSET OF", RelatedID: "C"})
	store.add(target.Target{ID: "C", Name: "c", Type: target.TypeProteinFamily})

	strat, err := Parse([]string{"@known < protein_family accept:$"})
	require.NoError(t, err)

	got, err := NewEvaluator("test", strat, store.engine()).Run(context.Background(), store.targets["A"])
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].ID)
}

func TestEvaluator_NeverPolicyTraversesWithoutReporting(t *testing.T) {
	// The never edge lets the walk pass through B to reach C.
	store := newFakeStore()
	store.add(target.Target{ID: "A", Name: "a", Type: target.TypeSingleProtein},
		graph.Relation{Label: "SUBSET OF", RelatedID: "B"})
	store.add(target.Target{ID: "B", Name: "b", Type: target.TypeProteinComplex},
		graph.Relation{Label: "OVERLAPS WITH", RelatedID: "C"})
	store.add(target.Target{ID: "C", Name: "c", Type: target.TypeProteinComplexGroup})

	strat, err := Parse([]string{
		"single_protein < protein_complex accept:-",
		"protein_complex ~ protein_complex_group accept:*",
	})
	require.NoError(t, err)

	got, err := NewEvaluator("test", strat, store.engine()).Run(context.Background(), store.targets["A"])
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].ID)
}

func TestEvaluator_OutputIsSubsetOfTraversal(t *testing.T) {
	store := newFakeStore()
	store.add(target.Target{ID: "A", Name: "a", Type: target.TypeSingleProtein},
		graph.Relation{Label: "SUBSET OF", RelatedID: "B"},
		graph.Relation{Label: "SUBSET OF", RelatedID: "C"})
	store.add(target.Target{ID: "B", Name: "b", Type: target.TypeProteinFamily})
	store.add(target.Target{ID: "C", Name: "c", Type: target.TypeProteinFamily})

	strat, err := Parse([]string{"single_protein < protein_family accept:$"})
	require.NoError(t, err)

	res, err := store.engine().Traverse(context.Background(), store.targets["A"], strat.Requirements())
	require.NoError(t, err)

	got, err := NewEvaluator("test", strat, store.engine()).Run(context.Background(), store.targets["A"])
	require.NoError(t, err)

	for _, tgt := range got {
		assert.True(t, res.Contains(tgt.ID))
		assert.NotEqual(t, "A", tgt.ID)
	}
}

func TestNullEvaluator_ReturnsRootWithoutCalls(t *testing.T) {
	store := newFakeStore()
	root := target.Target{ID: "X", Name: "anything", Type: target.TypeTissue}

	got, err := nullEvaluator{}.Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []target.Target{root}, got)
	assert.Equal(t, 0, store.calls)
}
