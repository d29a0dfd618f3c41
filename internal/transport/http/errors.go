package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/transport"
)

// ErrorHandler renders every error as {"error": msg}. Service errors are mapped through
// apperr.Status; framework errors keep their own status code.
func ErrorHandler(strict bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := resolve(err, strict)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, transport.ErrorResponse{Error: msg})
	}
}

func resolve(err error, strict bool) (int, string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return apperr.Status(ae.Kind, strict), apperr.Message(ae, strict)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			msg = m
		case error:
			msg = m.Error()
		case nil:
		default:
			msg = fmt.Sprint(m)
		}
		return he.Code, msg
	}

	kind := apperr.KindOf(err)
	return apperr.Status(kind, strict), apperr.Message(err, strict)
}
