package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /menu（注文フォームのセレクト用）
type MenuHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewMenuHandler(uc *usecase.CatalogUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/menu")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
}

func (h *MenuHandler) list(c echo.Context) error {
	cat, err := h.uc.Load(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat.Items)
}
