package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// AuthJWTミドルウェアが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 注文フォームの入力。JSONでもform POSTでも受ける。
// place_orderは元のフォームの送信マーカー。値は見ない。
type OrderCreateRequest struct {
	ItemID     int64   `json:"item_id" form:"item_id"`
	Quantity   int64   `json:"quantity" form:"quantity"`
	CashGiven  float64 `json:"cash_given" form:"cash_given"`
	PlaceOrder string  `json:"place_order,omitempty" form:"place_order"`
}

type OrderCreateResponse struct {
	Order        usecase.OrderOutput         `json:"order"`
	RecentOrders []usecase.RecentOrderOutput `json:"recent_orders"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.POST("/quote", h.quote)
	g.GET("/recent", h.recent)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		CashGiven: req.CashGiven,
	})
	if err != nil {
		return writeError(c, err)
	}

	//画面は成功メッセージと直近5件を一緒に出す
	//履歴の読み取り失敗で確定済みの注文を失敗にはしない。空リストで返す。
	recent, err := h.uc.ListRecentOrders(c.Request().Context(), userID)
	if err != nil {
		recent = []usecase.RecentOrderOutput{}
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{
		Order:        out,
		RecentOrders: recent,
	})
}

// 保存なしの見積もり（フォームのライブプレビュー）
func (h *OrderHandler) quote(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Quote(c.Request().Context(), usecase.PlaceOrderInput{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		CashGiven: req.CashGiven,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) recent(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListRecentOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
