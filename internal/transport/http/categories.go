package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
)

func (h *ShopHTTP) AllCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "category.all")

	items, err := h.Catalog.AllCategories(ctx)
	if err != nil {
		return fail(l, "get_categories_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ShopHTTP) CategoryByName(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "category.by_name")

	cat, err := h.Catalog.CategoryByName(ctx, c.Param("name"))
	if err != nil {
		return fail(l, "get_category_failed", err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ShopHTTP) SearchCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "category.search")

	var req transport.SearchRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "search_categories_failed", err)
	}

	page, err := h.Catalog.SearchCategories(ctx, req.Name, int(req.Page))
	if err != nil {
		return fail(l, "search_categories_failed", err)
	}
	return c.JSON(http.StatusOK, page)
}
