// Package search keeps a product index in Elasticsearch and runs fuzzy name queries against it.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/shop_catalog/internal/models"
)

type Config struct {
	URL      string
	User     string
	Password string
	Index    string
}

type Client struct {
	es    *elasticsearch.Client
	index string
}

type ProductDoc struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
}

func DocFromProduct(p models.Product) ProductDoc {
	d := ProductDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
	if p.Category != nil {
		d.CategoryName = p.Category.Name
	}
	return d
}

// NewClient returns nil when no URL is configured.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.User,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := es.Info(es.Info.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, responseError("info", res.StatusCode, res.Body)
	}

	index := cfg.Index
	if index == "" {
		index = "products"
	}
	return &Client{es: es, index: index}, nil
}

func (c *Client) Enabled() bool { return c != nil && c.es != nil }

func responseError(op string, status int, body io.Reader) error {
	b, _ := io.ReadAll(io.LimitReader(body, 4<<10))
	return fmt.Errorf("elasticsearch %s: status %d: %s", op, status, bytes.TrimSpace(b))
}

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":           {"type": "long"},
      "name":         {"type": "text", "fields": {"keyword": {"type": "keyword"}}},
      "description":  {"type": "text"},
      "price":        {"type": "double"},
      "categoryId":   {"type": "long"},
      "categoryName": {"type": "keyword"}
    }
  }
}`

// Reindex drops the index and loads docs into a fresh one.
func (c *Client) Reindex(ctx context.Context, docs []ProductDoc) error {
	if !c.Enabled() {
		return nil
	}

	del, err := c.es.Indices.Delete([]string{c.index}, c.es.Indices.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elasticsearch delete index: %w", err)
	}
	del.Body.Close()
	if del.IsError() && del.StatusCode != http.StatusNotFound {
		return fmt.Errorf("elasticsearch delete index: status %d", del.StatusCode)
	}

	cr, err := c.es.Indices.Create(c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(bytes.NewReader([]byte(indexMapping))),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch create index: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return responseError("create index", cr.StatusCode, cr.Body)
	}

	if len(docs) == 0 {
		return nil
	}
	return c.bulkIndex(ctx, docs)
}

func (c *Client) bulkIndex(ctx context.Context, docs []ProductDoc) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, d := range docs {
		meta := map[string]any{"index": map[string]any{"_id": strconv.FormatUint(uint64(d.ID), 10)}}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(d); err != nil {
			return err
		}
	}

	res, err := c.es.Bulk(&buf,
		c.es.Bulk.WithContext(ctx),
		c.es.Bulk.WithIndex(c.index),
		c.es.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch bulk: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return responseError("bulk", res.StatusCode, res.Body)
	}

	var out struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return fmt.Errorf("elasticsearch bulk decode: %w", err)
	}
	if out.Errors {
		return errors.New("elasticsearch bulk: some documents failed to index")
	}
	return nil
}

// Search runs a fuzzy multi_match over name and description.
func (c *Client) Search(ctx context.Context, query string, from, size int) (int64, []ProductDoc, error) {
	if !c.Enabled() {
		return 0, nil, errors.New("elasticsearch is disabled")
	}

	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description", "categoryName"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search encode: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, responseError("search", res.StatusCode, res.Body)
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ProductDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search decode: %w", err)
	}

	docs := make([]ProductDoc, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		docs[i] = hit.Source
	}
	return r.Hits.Total.Value, docs, nil
}
