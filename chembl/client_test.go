package chembl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmatlas/targetroll/target"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	return NewClient(cfg)
}

func TestClient_FindTarget(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/target.json", r.URL.Path)
		assert.Equal(t, "CHEMBL1833", r.URL.Query().Get("target_chembl_id"))
		w.Write([]byte(`{"targets": [{
			"target_chembl_id": "CHEMBL1833",
			"pref_name": "Serotonin 2b (5-HT2b) receptor",
			"target_type": "SINGLE PROTEIN"
		}]}`))
	})

	got, err := c.FindTarget(context.Background(), "CHEMBL1833")
	require.NoError(t, err)

	assert.Equal(t, "CHEMBL1833", got.ID)
	assert.Equal(t, "Serotonin 2b (5-HT2b) receptor", got.Name)
	assert.Equal(t, target.TypeSingleProtein, got.Type)
}

func TestClient_FindTargetZeroMatches(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"targets": []}`))
	})

	_, err := c.FindTarget(context.Background(), "CHEMBL0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, target.ErrNotFound))
}

func TestClient_FindTargetMultipleMatches(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"targets": [
			{"target_chembl_id": "CHEMBL1", "target_type": "SINGLE PROTEIN"},
			{"target_chembl_id": "CHEMBL2", "target_type": "SINGLE PROTEIN"}
		]}`))
	})

	_, err := c.FindTarget(context.Background(), "CHEMBL1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, target.ErrNotFound))
}

func TestClient_FindTargetHTTPNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.FindTarget(context.Background(), "CHEMBL1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, target.ErrNotFound))
}

func TestClient_FindTargetServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FindTarget(context.Background(), "CHEMBL1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, target.ErrNotFound))
}

func TestClient_RelationsFrom(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/target_relation.json", r.URL.Path)
		w.Write([]byte(`{"target_relations": [
			{"related_target_chembl_id": "CHEMBL2093872", "relationship": "SUBSET OF"},
			{"related_target_chembl_id": "CHEMBL2096904", "relationship": "OVERLAPS WITH"}
		]}`))
	})

	got, err := c.RelationsFrom(context.Background(), "CHEMBL1833")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "CHEMBL2093872", got[0].RelatedID)
	assert.Equal(t, "SUBSET OF", got[0].Label)
	assert.Equal(t, "OVERLAPS WITH", got[1].Label)
}

func TestClient_RelationsFromEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"target_relations": []}`))
	})

	got, err := c.RelationsFrom(context.Background(), "CHEMBL1833")
	require.NoError(t, err)
	assert.Empty(t, got)
}
