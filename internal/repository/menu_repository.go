package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの読み取りだけを約束。書き込みはこのコアの外。
type MenuRepository interface {
	// 名前昇順で全件
	ListByName(ctx context.Context) ([]model.MenuItem, error)
}
