package httpserver

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/service"
)

type ShopHTTP struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Users   *service.UserService
	Items   *service.ItemService
}

func idParam(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Validation(name + " must be a positive integer")
	}
	return uint(n), nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid body", err)
	}
	return nil
}

// fail logs err under event and hands it back to echo's error handler.
func fail(l zerolog.Logger, event string, err error) error {
	kind := apperr.KindOf(err)
	ev := l.Warn()
	if kind == apperr.KindInternal {
		ev = l.Error()
	}
	ev.Str("kind", kind.String()).Err(err).Msg(event)
	return err
}
