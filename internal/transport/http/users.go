package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
)

func (h *ShopHTTP) AllUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "user.all")

	users, err := h.Users.AllUsers(ctx)
	if err != nil {
		return fail(l, "get_users_failed", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *ShopHTTP) UserByID(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "user.by_id")

	id, err := idParam(c, "id")
	if err != nil {
		return fail(l, "get_user_failed", err)
	}

	u, err := h.Users.UserByID(ctx, id)
	if err != nil {
		return fail(l, "get_user_failed", err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *ShopHTTP) BoughtCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "user.bought_count")

	var req transport.UserIDRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "bought_count_failed", err)
	}

	n, err := h.Users.BoughtCount(ctx, req.UserID)
	if err != nil {
		return fail(l, "bought_count_failed", err)
	}
	return c.JSON(http.StatusOK, transport.CountResponse{Count: n})
}

func (h *ShopHTTP) WishlistCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "user.wishlist_count")

	var req transport.UserIDRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "wishlist_count_failed", err)
	}

	n, err := h.Users.WishlistCount(ctx, req.UserID)
	if err != nil {
		return fail(l, "wishlist_count_failed", err)
	}
	return c.JSON(http.StatusOK, transport.CountResponse{Count: n})
}
