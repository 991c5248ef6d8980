// Package restaurantrepo reads restaurants for the order core.
package restaurantrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type RestaurantDTO struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Slug string `gorm:"size:100;not null;uniqueIndex"`
	Name string `gorm:"size:200;not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type GormRestaurantCatalog struct {
	db *gorm.DB
}

func NewGormRestaurantCatalog(db *gorm.DB) *GormRestaurantCatalog {
	return &GormRestaurantCatalog{db: db}
}

func (c *GormRestaurantCatalog) GetBySlug(ctx context.Context, slug string) (ports.Restaurant, error) {
	var dto RestaurantDTO
	if err := c.db.WithContext(ctx).Where("slug = ?", slug).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurant", slug)
		}
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{ID: dto.ID, Slug: dto.Slug, Name: dto.Name}, nil
}
