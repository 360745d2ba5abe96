package qdrant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// fakeQdrant emulates the subset of the Qdrant REST API the store uses.
type fakeQdrant struct {
	collections map[string]bool
	points      []map[string]any
	getFailures int
}

func (f *fakeQdrant) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		if f.getFailures > 0 {
			f.getFailures--
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !f.collections[r.PathValue("name")] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		f.collections[r.PathValue("name")] = true
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		if !f.collections[r.PathValue("name")] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(f.collections, r.PathValue("name"))
		f.points = nil
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PUT /collections/{name}/points", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Points []map[string]any `json:"points"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.points = append(f.points, body.Points...)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /collections/{name}/points/search", func(w http.ResponseWriter, r *http.Request) {
		if !f.collections[r.PathValue("name")] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		results := make([]map[string]any, 0, len(f.points))
		for _, p := range f.points {
			results = append(results, map[string]any{
				"score":   0.9,
				"payload": p["payload"],
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"result": results})
	})
	return mux
}

func newTestStore(t *testing.T) (*Store, *fakeQdrant) {
	t.Helper()
	fake := &fakeQdrant{collections: map[string]bool{}}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewStore(Config{URL: srv.URL, Collection: "document_chunks"}), fake
}

func TestStore_EnsureCreatesOnce(t *testing.T) {
	s, fake := newTestStore(t)

	created, err := s.EnsureCollection(4)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, fake.collections["document_chunks"])

	created, err = s.EnsureCollection(4)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestStore_EnsureSurfacesBackendFault(t *testing.T) {
	s, fake := newTestStore(t)
	fake.getFailures = 1

	_, err := s.EnsureCollection(4)
	require.Error(t, err)
	// a faulting existence check must not be answered with a create
	assert.False(t, fake.collections["document_chunks"])

	created, err := s.EnsureCollection(4)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestStore_AddAndQueryRoundTrip(t *testing.T) {
	s, fake := newTestStore(t)
	_, err := s.EnsureCollection(2)
	require.NoError(t, err)

	chunks := []domain.Chunk{{
		ID:       "11111111-1111-1111-1111-111111111111",
		Text:     "the sky is blue",
		Metadata: map[string]string{"source": "uploaded"},
	}}
	require.NoError(t, s.Add(chunks, [][]float64{{1, 0}}))
	require.Len(t, fake.points, 1)

	res, err := s.Query([]float64{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "the sky is blue", res[0].Text)
	assert.Equal(t, map[string]string{"source": "uploaded"}, res[0].Metadata)
}

func TestStore_QueryMissingCollection(t *testing.T) {
	s, _ := newTestStore(t)
	res, err := s.Query([]float64{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestStore_DropMissingCollection(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.DropCollection())
}
