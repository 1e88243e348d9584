package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// Catalogは1リクエスト分のメニュー。読み込んだら不変。
type Catalog struct {
	// 名前昇順（画面のセレクト用）
	Items []model.MenuItem

	byID map[int64]model.MenuItem
}

// idで1件引く
func (c Catalog) Find(itemID int64) (model.MenuItem, bool) {
	item, ok := c.byID[itemID]
	return item, ok
}

type CatalogUsecase struct {
	menu repo.MenuRepository
}

// DI
func NewCatalogUsecase(menu repo.MenuRepository) *CatalogUsecase {
	return &CatalogUsecase{menu: menu}
}

// Loadはメニュー全件を読み込む。リクエストごとに呼ぶ。
// 読み取り失敗はリクエスト全体のfatal。空や部分的なカタログで続行しない。
func (u *CatalogUsecase) Load(ctx context.Context) (Catalog, error) {
	items, err := u.menu.ListByName(ctx)
	if err != nil {
		return Catalog{}, NewHTTPError(http.StatusInternalServerError, "could not fetch menu data: "+err.Error())
	}

	byID := make(map[int64]model.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	return Catalog{Items: items, byID: byID}, nil
}
