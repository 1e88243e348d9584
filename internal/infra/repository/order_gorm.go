package repository

import (
	"context"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type orderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) domainrepo.OrderRepository {
	return &orderGormRepository{db: db}
}

func (r *orderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *orderGormRepository) ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]model.Order, error) {
	var items []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.Order{}, err
	}
	return items, nil
}
