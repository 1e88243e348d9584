package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Newはechoを組み立ててルートを登録する。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	menuH *handler.MenuHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authH.RegisterRoutes(e)
	menuH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)

	return e
}

func Start(
	addr string,
	cfg config.Config,
	authH *handler.AuthHandler,
	menuH *handler.MenuHandler,
	orderH *handler.OrderHandler,
) error {
	return New(cfg, authH, menuH, orderH).Start(addr)
}
