package service

import (
	"context"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/cache"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
	"github.com/Skotchmaster/shop_catalog/internal/search"
	"github.com/Skotchmaster/shop_catalog/internal/util"
)

const AllCategories = "all"

type CatalogService struct {
	Repo   *repo.GormRepo
	Cache  *cache.Cache
	Search *search.Client
}

type ListParams struct {
	Page      int
	SortBy    string
	AscOrDesc string
	Category  string
}

type ProductPage struct {
	Products []models.Product `json:"products"`
	Count    int64            `json:"count"`
}

type CategoryPage struct {
	Categories []models.CategoryProducts `json:"categories"`
	Count      int64             `json:"count"`
}

func pageBounds(page int) (int, int, error) {
	offset, limit, err := util.Calculate(page)
	if err != nil {
		return 0, 0, apperr.Wrap(apperr.KindValidation, err.Error(), err)
	}
	return offset, limit, nil
}

// resolveCategory returns (nil, true) for "all" or empty, (nil, false) for an unknown name.
func (s *CatalogService) resolveCategory(ctx context.Context, name string) (*uint, bool, error) {
	if name == "" || name == AllCategories {
		return nil, true, nil
	}
	c, err := s.Repo.CategoryByName(ctx, name)
	if err != nil {
		if notFound(err) {
			return nil, false, nil
		}
		return nil, false, internal(err)
	}
	return &c.ID, true, nil
}

// ListProducts returns one page of products, optionally filtered by category name and sorted.
// An unknown category yields an empty page.
func (s *CatalogService) ListProducts(ctx context.Context, p ListParams) ([]models.Product, error) {
	offset, limit, err := pageBounds(p.Page)
	if err != nil {
		return nil, err
	}
	sort, err := ParseSort(p.SortBy, p.AscOrDesc)
	if err != nil {
		return nil, err
	}

	categoryID, known, err := s.resolveCategory(ctx, p.Category)
	if err != nil {
		return nil, err
	}
	if !known {
		return []models.Product{}, nil
	}

	items, err := s.Repo.ListProductsPage(ctx, repo.ProductQuery{
		CategoryID: categoryID,
		Sort:       sort,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

// ProductByName returns nil without error when nothing matches.
func (s *CatalogService) ProductByName(ctx context.Context, slug string) (*models.Product, error) {
	p, err := s.Repo.ProductByName(ctx, util.Unslug(slug))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return p, nil
}

func (s *CatalogService) AllProducts(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (s *CatalogService) CountProducts(ctx context.Context) (int64, error) {
	l := logging.With(ctx, "svc", "catalog.count_products")

	var n int64
	if ok, err := s.Cache.GetJSON(ctx, cache.KeyProductCount, &n); err != nil {
		l.Warn().Err(err).Msg("cache_get_failed")
	} else if ok {
		return n, nil
	}

	n, err := s.Repo.CountProducts(ctx)
	if err != nil {
		return 0, internal(err)
	}
	if err := s.Cache.SetJSON(ctx, cache.KeyProductCount, n); err != nil {
		l.Warn().Err(err).Msg("cache_set_failed")
	}
	return n, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, name string, page int, category string) (*ProductPage, error) {
	offset, limit, err := pageBounds(page)
	if err != nil {
		return nil, err
	}
	categoryID, known, err := s.resolveCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if !known {
		return &ProductPage{Products: []models.Product{}}, nil
	}

	total, items, err := s.Repo.SearchProducts(ctx, name, categoryID, offset, limit)
	if err != nil {
		return nil, internal(err)
	}
	return &ProductPage{Products: items, Count: total}, nil
}

// SearchIndexed queries Elasticsearch and hydrates hits from the database.
func (s *CatalogService) SearchIndexed(ctx context.Context, query string, page int) (*ProductPage, error) {
	if !s.Search.Enabled() {
		return nil, apperr.NotFound(MsgSearchDisabled)
	}
	if query == "" {
		return nil, apperr.Validation("q is required")
	}
	offset, limit, err := pageBounds(page)
	if err != nil {
		return nil, err
	}

	total, docs, err := s.Search.Search(ctx, query, offset, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	ids := make([]uint, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	items, err := s.Repo.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, internal(err)
	}
	return &ProductPage{Products: items, Count: total}, nil
}

func (s *CatalogService) AllCategories(ctx context.Context) ([]models.CategoryProducts, error) {
	l := logging.With(ctx, "svc", "catalog.all_categories")

	var cached []models.CategoryProducts
	if ok, err := s.Cache.GetJSON(ctx, cache.KeyCategories, &cached); err != nil {
		l.Warn().Err(err).Msg("cache_get_failed")
	} else if ok {
		return cached, nil
	}

	cats, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, internal(err)
	}
	items := models.CategoriesWithProducts(cats)
	if err := s.Cache.SetJSON(ctx, cache.KeyCategories, items); err != nil {
		l.Warn().Err(err).Msg("cache_set_failed")
	}
	return items, nil
}

// CategoryByName returns nil without error when nothing matches.
func (s *CatalogService) CategoryByName(ctx context.Context, slug string) (*models.CategoryProducts, error) {
	c, err := s.Repo.CategoryWithProducts(ctx, util.Unslug(slug))
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, internal(err)
	}
	view := models.NewCategoryProducts(*c)
	return &view, nil
}

func (s *CatalogService) SearchCategories(ctx context.Context, name string, page int) (*CategoryPage, error) {
	offset, limit, err := pageBounds(page)
	if err != nil {
		return nil, err
	}
	total, items, err := s.Repo.SearchCategories(ctx, name, offset, limit)
	if err != nil {
		return nil, internal(err)
	}
	return &CategoryPage{Categories: models.CategoriesWithProducts(items), Count: total}, nil
}

// Reindex pushes every product into the search index and drops cached aggregates.
func (s *CatalogService) Reindex(ctx context.Context) (int, error) {
	if err := s.Cache.Delete(ctx, cache.KeyProductCount, cache.KeyCategories); err != nil {
		l := logging.With(ctx, "svc", "catalog.reindex")
		l.Warn().Err(err).Msg("cache_flush_failed")
	}
	if !s.Search.Enabled() {
		return 0, nil
	}

	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return 0, internal(err)
	}
	docs := make([]search.ProductDoc, len(items))
	for i, p := range items {
		docs[i] = search.DocFromProduct(p)
	}
	if err := s.Search.Reindex(ctx, docs); err != nil {
		return 0, apperr.Internal(err)
	}
	return len(docs), nil
}
