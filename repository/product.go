package repository

import (
	"context"

	"github.com/eya415/RentHub/models"
	"gorm.io/gorm"
)

// ProductRepository is the catalog lookup surface used at checkout. Missing
// products surface as gorm.ErrRecordNotFound.
type ProductRepository interface {
	Get(ctx context.Context, id uint) (*models.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
