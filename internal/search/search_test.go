package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_catalog/internal/models"
)

type fakeES struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
}

func newFakeES(t *testing.T) (*fakeES, *httptest.Server) {
	f := &fakeES{bodies: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path

		f.mu.Lock()
		f.requests = append(f.requests, key)
		f.bodies[key] = string(body)
		f.mu.Unlock()

		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/":
			_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"index_not_found_exception","status":404}`)
		case r.Method == http.MethodPut:
			_, _ = io.WriteString(w, `{"acknowledged":true}`)
		case strings.HasSuffix(r.URL.Path, "/_bulk"):
			_, _ = io.WriteString(w, `{"errors":false,"items":[]}`)
		case strings.HasSuffix(r.URL.Path, "/_search"):
			_, _ = io.WriteString(w, `{"hits":{"total":{"value":2},"hits":[
				{"_source":{"id":3,"name":"Red Shoe","price":10,"categoryId":1}},
				{"_source":{"id":1,"name":"Red Hat","price":5,"categoryId":2}}]}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{}`)
		}
	}))
	t.Cleanup(srv.Close)
	return f, srv
}

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	t.Parallel()

	c, err := NewClient(context.Background(), Config{})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.False(t, c.Enabled())
	assert.NoError(t, c.Reindex(context.Background(), nil))

	_, _, err = c.Search(context.Background(), "x", 0, 20)
	assert.Error(t, err)
}

func TestSearch_SendsFuzzyQuery(t *testing.T) {
	t.Parallel()
	f, srv := newFakeES(t)

	c, err := NewClient(context.Background(), Config{URL: srv.URL, Index: "products"})
	require.NoError(t, err)

	total, docs, err := c.Search(context.Background(), "red", 20, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, docs, 2)
	assert.EqualValues(t, 3, docs[0].ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(f.bodies["POST /products/_search"]), &sent))
	assert.EqualValues(t, 20, sent["from"])
	assert.EqualValues(t, 20, sent["size"])
	mm := sent["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "red", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
}

func TestReindex_RecreatesAndBulkLoads(t *testing.T) {
	t.Parallel()
	f, srv := newFakeES(t)

	c, err := NewClient(context.Background(), Config{URL: srv.URL, Index: "products"})
	require.NoError(t, err)

	docs := []ProductDoc{
		DocFromProduct(models.Product{ID: 1, Name: "Red Hat", CategoryID: 2, Category: &models.Category{Name: "Hats"}}),
		DocFromProduct(models.Product{ID: 2, Name: "Blue Hat", CategoryID: 2}),
	}
	require.NoError(t, c.Reindex(context.Background(), docs))

	assert.Contains(t, f.requests, "DELETE /products")
	assert.Contains(t, f.requests, "PUT /products")
	assert.Contains(t, f.requests, "POST /products/_bulk")

	bulk := f.bodies["POST /products/_bulk"]
	lines := strings.Split(strings.TrimSpace(bulk), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"_id":"1"`)
	assert.Contains(t, lines[1], `"categoryName":"Hats"`)
}
