package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/Skotchmaster/shop_catalog/internal/middleware/auth"
)

type Deps struct {
	Handler *ShopHTTP

	JWTSecret        []byte
	EnforceOwnership bool
	SearchEnabled    bool
	StaticDir        string

	// Ready backs /health/ready. Nil means always ready.
	Ready func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	h := d.Handler

	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Server Up and Running") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	if d.StaticDir != "" {
		e.Static("/", d.StaticDir)
	}

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.GET("/validate", h.Validate)

	e.GET("/getAllProducts/page/:pagenr", h.ListProductsPage)
	e.GET("/getProductByName/:name", h.ProductByName)
	e.GET("/getAllProducts", h.AllProducts)
	e.GET("/getAllProductsCount", h.CountProducts)
	e.POST("/searchProductNameByCategory", h.SearchProducts)
	if d.SearchEnabled {
		e.GET("/searchProducts", h.FullTextSearch)
	}

	e.GET("/getAllUsers", h.AllUsers)
	e.GET("/getUserById/:id", h.UserByID)

	e.GET("/getAllCategories", h.AllCategories)
	e.GET("/getCategoryByName/:name", h.CategoryByName)
	e.POST("/searchCategoriesByName", h.SearchCategories)

	e.GET("/getAllBoughtProducts", h.AllBought)
	e.GET("/getBoughtItemById/:id", h.BoughtByID)
	e.POST("/getBoughtCount", h.BoughtCount)
	e.POST("/getWishlistCount", h.WishlistCount)

	var mw []echo.MiddlewareFunc
	if d.EnforceOwnership {
		mw = append(mw, authmw.RequireUser(d.JWTSecret))
	}
	items := e.Group("", mw...)
	items.PATCH("/updateBoughtItemById/:id", h.UpdateBought)
	items.DELETE("/deleteBoughtItemById/:id", h.DeleteBought)
	items.DELETE("/deleteWishlistItemById/:id", h.DeleteWishlist)
	items.POST("/createBoughtItem", h.CreateBought)
	items.POST("/createWishlistItem", h.CreateWishlist)
}
