package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/service"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
	"github.com/Skotchmaster/shop_catalog/internal/util"
)

func (h *ShopHTTP) ListProductsPage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.list_page")

	page, err := util.ParsePage(c.Param("pagenr"))
	if err != nil {
		return fail(l, "list_products_failed", apperr.Wrap(apperr.KindValidation, err.Error(), err))
	}

	items, err := h.Catalog.ListProducts(ctx, service.ListParams{
		Page:      page,
		SortBy:    c.QueryParam("sortBy"),
		AscOrDesc: c.QueryParam("ascOrDesc"),
		Category:  c.QueryParam("category"),
	})
	if err != nil {
		return fail(l, "list_products_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ShopHTTP) ProductByName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.by_name")

	p, err := h.Catalog.ProductByName(ctx, c.Param("name"))
	if err != nil {
		return fail(l, "get_product_failed", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ShopHTTP) AllProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.all")

	items, err := h.Catalog.AllProducts(ctx)
	if err != nil {
		return fail(l, "get_products_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ShopHTTP) CountProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.count")

	n, err := h.Catalog.CountProducts(ctx)
	if err != nil {
		return fail(l, "count_products_failed", err)
	}
	return c.JSON(http.StatusOK, transport.CountResponse{Count: n})
}

func (h *ShopHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.search")

	var req transport.SearchRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "search_products_failed", err)
	}

	page, err := h.Catalog.SearchProducts(ctx, req.Name, int(req.Page), req.Category)
	if err != nil {
		return fail(l, "search_products_failed", err)
	}
	return c.JSON(http.StatusOK, page)
}

// FullTextSearch serves /searchProducts?q=&page= from the search index.
func (h *ShopHTTP) FullTextSearch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "product.full_text_search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	res, err := h.Catalog.SearchIndexed(ctx, c.QueryParam("q"), page)
	if err != nil {
		return fail(l, "full_text_search_failed", err)
	}
	return c.JSON(http.StatusOK, res)
}
