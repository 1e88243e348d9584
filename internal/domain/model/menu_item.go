package model

// メニュー1品。リクエスト中は不変で、メニュー編集はこのコアの外。
type MenuItem struct {
	ID    int64   `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Price float64 `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (MenuItem) TableName() string {
	return "menu"
}
