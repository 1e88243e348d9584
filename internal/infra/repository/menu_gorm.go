package repository

import (
	"context"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type menuGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewMenuGormRepository(db *gorm.DB) domainrepo.MenuRepository {
	return &menuGormRepository{db: db}
}

// 名前昇順で全件取得。読み取り失敗はそのまま返す（呼び出し側でfatal扱い）。
func (r *menuGormRepository) ListByName(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
