package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		by, dir string
		want    *repo.Sort
	}{
		{name: "none", want: nil},
		{name: "price asc", by: "price", dir: "asc", want: &repo.Sort{Column: "price"}},
		{name: "createdAt DESC", by: "createdAt", dir: "DESC", want: &repo.Sort{Column: "created_at", Desc: true}},
		{name: "only field", by: "price"},
		{name: "only direction", dir: "asc"},
		{name: "unknown field", by: "password", dir: "asc"},
		{name: "injection", by: "price; DROP TABLE users", dir: "asc"},
		{name: "bad direction", by: "price", dir: "sideways"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSort(tt.by, tt.dir)
			if tt.want == nil && (tt.by != "" || tt.dir != "") {
				requireKind(t, err, apperr.KindValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func names(items []models.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}

func TestListProducts_Matrix(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	t.Run("category with sort", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, SortBy: "price", AscOrDesc: "desc", Category: "Hats"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Hat 3", "Hat 2", "Hat 1"}, names(items))
		require.NotNil(t, items[0].Category)
		assert.Equal(t, "Hats", items[0].Category.Name)
	})

	t.Run("category without sort", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, Category: "Hats"})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("all with sort", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, SortBy: "price", AscOrDesc: "asc", Category: "all"})
		require.NoError(t, err)
		require.Len(t, items, 20)
		assert.Equal(t, "Hat 1", items[0].Name)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
		}
	})

	t.Run("all without sort", func(t *testing.T) {
		page1, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, Category: "all"})
		require.NoError(t, err)
		assert.Len(t, page1, 20)

		page2, err := s.Catalog.ListProducts(ctx, ListParams{Page: 2, Category: "all"})
		require.NoError(t, err)
		assert.Len(t, page2, 8)
	})

	t.Run("missing category means all", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 2})
		require.NoError(t, err)
		assert.Len(t, items, 8)
	})

	t.Run("unknown category is an empty page", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, Category: "Gloves"})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("page past the end", func(t *testing.T) {
		items, err := s.Catalog.ListProducts(ctx, ListParams{Page: 9, Category: "all"})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("invalid page", func(t *testing.T) {
		_, err := s.Catalog.ListProducts(ctx, ListParams{Page: 0})
		requireKind(t, err, apperr.KindValidation)
	})

	t.Run("partial sort", func(t *testing.T) {
		_, err := s.Catalog.ListProducts(ctx, ListParams{Page: 1, SortBy: "price"})
		requireKind(t, err, apperr.KindValidation)
	})
}

func TestProductByName_Unslugs(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	p, err := s.Catalog.ProductByName(ctx, "Shoe-07")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Shoe 07", p.Name)
	require.NotNil(t, p.Category)

	p, err = s.Catalog.ProductByName(ctx, "Nope")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestCountAndAllProducts(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	n, err := s.Catalog.CountProducts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 28, n)

	all, err := s.Catalog.AllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 28)
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	page, err := s.Catalog.SearchProducts(ctx, "Shoe", 2, "")
	require.NoError(t, err)
	assert.EqualValues(t, 25, page.Count)
	assert.Len(t, page.Products, 5)

	page, err = s.Catalog.SearchProducts(ctx, "Hat", 1, "Hats")
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Count)

	page, err = s.Catalog.SearchProducts(ctx, "Hat", 1, "Gloves")
	require.NoError(t, err)
	assert.Zero(t, page.Count)
	assert.NotNil(t, page.Products)

	_, err = s.Catalog.SearchProducts(ctx, "Hat", 0, "")
	requireKind(t, err, apperr.KindValidation)
}

func TestCategories(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	all, err := s.Catalog.AllCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].Products, 25)

	c, err := s.Catalog.CategoryByName(ctx, "Hats")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Products, 3)

	c, err = s.Catalog.CategoryByName(ctx, "Winter-Gloves")
	require.NoError(t, err)
	assert.Nil(t, c)

	page, err := s.Catalog.SearchCategories(ctx, "o", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Count)
	require.Len(t, page.Categories, 1)
	assert.Equal(t, "Shoes", page.Categories[0].Name)
	assert.Len(t, page.Categories[0].Products, 25)
}

func TestSearchIndexed_DisabledWithoutClient(t *testing.T) {
	t.Parallel()
	s := newServices(t)

	_, err := s.Catalog.SearchIndexed(context.Background(), "shoe", 1)
	requireKind(t, err, apperr.KindNotFound)

	n, err := s.Catalog.Reindex(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
