package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	// order_date降順で最新limit件
	ListRecentByUserID(ctx context.Context, userID int64, limit int) ([]model.Order, error)
}
