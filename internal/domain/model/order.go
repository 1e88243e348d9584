package model

import "time"

// 注文履歴の1行。書き込んだら不変。
// 品名はスナップショット保存（メニュー編集後も履歴が変わらない）。
// 金額内訳（小計/税/合計/お釣り）はこのスキーマでは保存しない。
type Order struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	ItemName  string    `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	OrderDate time.Time `gorm:"column:order_date;not null;autoCreateTime;index" json:"order_date"`
}

func (Order) TableName() string {
	return "orders"
}
