package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
)

func (h *ShopHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "auth.register")

	var req transport.RegisterRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "register_failed", err)
	}

	res, err := h.Auth.Register(ctx, req.Email, req.Password, req.UserName)
	if err != nil {
		return fail(l, "register_failed", err)
	}

	l.Info().Uint("user_id", res.User.ID).Msg("register_success")
	return c.JSON(http.StatusOK, res)
}

func (h *ShopHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "auth.login")

	var req transport.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return fail(l, "login_failed", err)
	}

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login_failed", err)
	}

	l.Info().Uint("user_id", res.User.ID).Msg("login_success")
	return c.JSON(http.StatusOK, res)
}

// Validate resolves the raw Authorization header into the user it was issued for.
func (h *ShopHTTP) Validate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.With(ctx, "handler", "auth.validate")

	user, err := h.Auth.Resolve(ctx, c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return fail(l, "validate_failed", err)
	}
	return c.JSON(http.StatusOK, user)
}
