package repository

import (
	"context"
	"time"

	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

// CartRepository is keyed by user ID so the checkout logic stays decoupled
// from whatever storage holds the cart.
type CartRepository interface {
	Get(ctx context.Context, userID uint) (*models.Cart, error)
	SaveItem(ctx context.Context, userID uint, item *models.CartItem) error
	RemoveItem(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

// Get returns the user's cart with its items, creating an empty cart row on
// first use.
func (r *cartRepoImpl) Get(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// SaveItem inserts or updates a cart line. The caller fills UnitPrice from
// the catalog; re-saving an existing product keeps the original snapshot.
func (r *cartRepoImpl) SaveItem(ctx context.Context, userID uint, item *models.CartItem) error {
	cart, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	var existing models.CartItem
	err = r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, item.ProductID).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		item.CartID = cart.CartID
		item.AddedAt = time.Now()
		return r.db.WithContext(ctx).Create(item).Error
	}
	if err != nil {
		return err
	}

	existing.Quantity = item.Quantity
	existing.RentalDays = item.RentalDays
	existing.AddedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*item = existing
	return nil
}

func (r *cartRepoImpl) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepoImpl) Clear(ctx context.Context, userID uint) error {
	cart, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cart.CartID).
		Delete(&models.CartItem{}).Error
}
