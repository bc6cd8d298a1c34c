package repository

import (
	"context"

	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	CreateItem(ctx context.Context, tx *gorm.DB, item *models.OrderItem) error
	UpdateTotal(ctx context.Context, tx *gorm.DB, orderID uint, total float64) error
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) CreateItem(ctx context.Context, tx *gorm.DB, item *models.OrderItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *orderRepoImpl) UpdateTotal(ctx context.Context, tx *gorm.DB, orderID uint, total float64) error {
	return tx.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_price", total).Error
}

func (r *orderRepoImpl) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
