package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/logging"
	authmw "github.com/Skotchmaster/shop_catalog/internal/middleware/auth"
	"github.com/Skotchmaster/shop_catalog/internal/service"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
)

func itemInput(req transport.ItemRequest) service.ItemInput {
	return service.ItemInput{UserID: req.UserID, ProductID: req.ProductID, Quantity: req.Quantity}
}

func (h *ShopHTTP) AllBought(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "bought.all")

	items, err := h.Items.AllBought(ctx)
	if err != nil {
		return fail(l, "get_bought_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ShopHTTP) BoughtByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "bought.by_id")

	id, err := idParam(c, "id")
	if err != nil {
		return fail(l, "get_bought_failed", err)
	}

	b, err := h.Items.BoughtByID(ctx, id)
	if err != nil {
		return fail(l, "get_bought_failed", err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ShopHTTP) CreateBought(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "bought.create")

	var req transport.ItemRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "create_bought_failed", err)
	}

	res, err := h.Items.CreateBought(ctx, authmw.UserID(c), itemInput(req))
	if err != nil {
		return fail(l, "create_bought_failed", err)
	}

	l.Info().Uint("user_id", req.UserID).Uint("product_id", req.ProductID).
		Bool("created", res.CreatedBought != nil).Msg("create_bought_success")
	return c.JSON(http.StatusOK, res)
}

func (h *ShopHTTP) CreateWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "wishlist.create")

	var req transport.ItemRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "create_wishlist_failed", err)
	}

	res, err := h.Items.CreateWishlist(ctx, authmw.UserID(c), itemInput(req))
	if err != nil {
		return fail(l, "create_wishlist_failed", err)
	}

	l.Info().Uint("user_id", req.UserID).Uint("product_id", req.ProductID).
		Bool("created", res.CreatedWishlist != nil).Msg("create_wishlist_success")
	return c.JSON(http.StatusOK, res)
}

func (h *ShopHTTP) UpdateBought(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "bought.update")

	id, err := idParam(c, "id")
	if err != nil {
		return fail(l, "update_bought_failed", err)
	}

	var req transport.ItemRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "update_bought_failed", err)
	}

	res, err := h.Items.UpdateBought(ctx, authmw.UserID(c), id, itemInput(req))
	if err != nil {
		return fail(l, "update_bought_failed", err)
	}

	l.Info().Uint("bought_id", id).Msg("update_bought_success")
	return c.JSON(http.StatusOK, res)
}

func (h *ShopHTTP) DeleteBought(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "bought.delete")

	id, err := idParam(c, "id")
	if err != nil {
		return fail(l, "delete_bought_failed", err)
	}

	var req transport.UserIDRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "delete_bought_failed", err)
	}

	res, err := h.Items.DeleteBought(ctx, authmw.UserID(c), id, req.UserID)
	if err != nil {
		return fail(l, "delete_bought_failed", err)
	}

	l.Info().Uint("bought_id", id).Msg("delete_bought_success")
	return c.JSON(http.StatusOK, res)
}

func (h *ShopHTTP) DeleteWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "wishlist.delete")

	id, err := idParam(c, "id")
	if err != nil {
		return fail(l, "delete_wishlist_failed", err)
	}

	var req transport.UserIDRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "delete_wishlist_failed", err)
	}

	res, err := h.Items.DeleteWishlist(ctx, authmw.UserID(c), id, req.UserID)
	if err != nil {
		return fail(l, "delete_wishlist_failed", err)
	}

	l.Info().Uint("wishlist_id", id).Msg("delete_wishlist_success")
	return c.JSON(http.StatusOK, res)
}
