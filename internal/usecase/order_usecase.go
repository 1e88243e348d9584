package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/domain/pricing"
	repo "app/internal/repository"
)

// 履歴表示は直近5件固定
const recentOrdersLimit = 5

type OrderUsecase struct {
	catalog *CatalogUsecase
	orders  repo.OrderRepository
	taxRate float64
}

func NewOrderUsecase(catalog *CatalogUsecase, orders repo.OrderRepository, taxRate float64) *OrderUsecase {
	return &OrderUsecase{catalog: catalog, orders: orders, taxRate: taxRate}
}

type PlaceOrderInput struct {
	ItemID    int64
	Quantity  int64
	CashGiven float64
}

type OrderOutput struct {
	ItemName  string  `json:"item_name"`
	Quantity  int64   `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ChangeDue float64 `json:"change_due"`
	Message   string  `json:"message"`
}

type QuoteOutput struct {
	ItemID     int64   `json:"item_id"`
	ItemName   string  `json:"item_name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int64   `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
	CashGiven  float64 `json:"cash_given"`
	Affordable bool    `json:"affordable"`
	ChangeDue  float64 `json:"change_due"`
	Shortfall  float64 `json:"shortfall"`
}

type RecentOrderOutput struct {
	ItemName  string    `json:"item_name"`
	Quantity  int64     `json:"quantity"`
	OrderDate time.Time `json:"order_date"`
}

// PlaceOrderは注文確定の一本道:
// 入力検証 → 金額計算 → 預かり金チェック → INSERT。
// 途中で落ちたらそこで終わり（リトライなし）。失敗時は何も保存しない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// カタログ読み込み失敗はfatal（部分的なメニューで注文を受けない）
	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return OrderOutput{}, err
	}

	// 選択の検証
	if in.ItemID <= 0 || in.Quantity <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "please select a valid item and quantity")
	}
	item, ok := cat.Find(in.ItemID)
	if !ok {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "please select a valid item and quantity")
	}

	// 金額計算（ここでは不足でもエラーにしない）
	priced := pricing.Quote(item, in.Quantity, in.CashGiven, u.taxRate)

	// 預かり金チェック。不足なら保存せず終了。
	change, err := pricing.CheckAffordability(priced)
	if err != nil {
		var ife *pricing.InsufficientFundsError
		if errors.As(err, &ife) {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, ife.Error())
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	// 品名スナップショットで保存。金額内訳は保存しない（既知の制限）。
	_, err = u.orders.Create(ctx, model.Order{
		UserID:   userID,
		ItemName: item.Name,
		Quantity: in.Quantity,
	})
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "error placing order: "+err.Error())
	}

	return OrderOutput{
		ItemName:  item.Name,
		Quantity:  in.Quantity,
		Subtotal:  priced.Subtotal,
		Tax:       priced.Tax,
		Total:     priced.Total,
		ChangeDue: change,
		Message: fmt.Sprintf("Order placed! Item: %s x %d. Total: $%.2f. Change Due: $%.2f",
			item.Name, in.Quantity, priced.Total, change),
	}, nil
}

// Quoteは保存なしの見積もり。注文フォームのライブプレビュー用。
// PlaceOrderと同じ純関数を通すので、表示と確定がずれない。
func (u *OrderUsecase) Quote(ctx context.Context, in PlaceOrderInput) (QuoteOutput, error) {
	cat, err := u.catalog.Load(ctx)
	if err != nil {
		return QuoteOutput{}, err
	}

	if in.ItemID <= 0 || in.Quantity <= 0 {
		return QuoteOutput{}, NewHTTPError(http.StatusBadRequest, "please select a valid item and quantity")
	}
	item, ok := cat.Find(in.ItemID)
	if !ok {
		return QuoteOutput{}, NewHTTPError(http.StatusBadRequest, "please select a valid item and quantity")
	}

	priced := pricing.Quote(item, in.Quantity, in.CashGiven, u.taxRate)

	out := QuoteOutput{
		ItemID:    item.ID,
		ItemName:  item.Name,
		UnitPrice: item.Price,
		Quantity:  in.Quantity,
		Subtotal:  priced.Subtotal,
		Tax:       priced.Tax,
		Total:     priced.Total,
		CashGiven: in.CashGiven,
	}

	change, err := pricing.CheckAffordability(priced)
	if err == nil {
		out.Affordable = true
		out.ChangeDue = change
		return out, nil
	}

	var ife *pricing.InsufficientFundsError
	if errors.As(err, &ife) {
		out.Shortfall = ife.Shortfall()
	}
	return out, nil
}

// ListRecentOrdersは直近5件をorder_date降順で返す。
func (u *OrderUsecase) ListRecentOrders(ctx context.Context, userID int64) ([]RecentOrderOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListRecentByUserID(ctx, userID, recentOrdersLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]RecentOrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, RecentOrderOutput{
			ItemName:  o.ItemName,
			Quantity:  o.Quantity,
			OrderDate: o.OrderDate,
		})
	}
	return outs, nil
}
