package pricing

import (
	"fmt"
	"math"

	"app/internal/domain/model"
)

// 税率のデフォルト（8%）。実際の値はconfigから渡す。
const DefaultTaxRate = 0.08

// 金額計算の結果。永続化はしない表示用の内訳。
type PricedOrder struct {
	Item      model.MenuItem
	Quantity  int64
	Subtotal  float64
	Tax       float64
	Total     float64
	CashGiven float64
	ChangeDue float64
}

// 預かり金が合計に足りない
type InsufficientFundsError struct {
	Total     float64
	CashGiven float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("cash given ($%.2f) is less than the total cost ($%.2f)", e.CashGiven, e.Total)
}

// 不足額
func (e *InsufficientFundsError) Shortfall() float64 {
	return Round2(e.Total - e.CashGiven)
}

// 小数第2位に丸める（0.5は0から遠い方へ）。
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Quoteは内訳を計算する純関数。注文確定とプレビューの両方が使う。
// 各段階（小計→税→合計）を個別に丸めてから次に使う。最後にまとめて丸めない。
// 預かり金不足でもエラーにしない。内訳は表示できる必要がある。
func Quote(item model.MenuItem, quantity int64, cashGiven float64, taxRate float64) PricedOrder {
	subtotal := Round2(item.Price * float64(quantity))
	tax := Round2(subtotal * taxRate)
	total := Round2(subtotal + tax)

	return PricedOrder{
		Item:      item,
		Quantity:  quantity,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		CashGiven: cashGiven,
	}
}

// CheckAffordabilityはお釣りを返すか、不足ならInsufficientFundsErrorを返す。
func CheckAffordability(p PricedOrder) (float64, error) {
	if p.CashGiven >= p.Total {
		return Round2(p.CashGiven - p.Total), nil
	}
	return 0, &InsufficientFundsError{Total: p.Total, CashGiven: p.CashGiven}
}
