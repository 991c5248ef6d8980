package userrepo

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) GetByUsername(ctx context.Context, username string) (ports.User, error) {
	var dto UserDTO
	if err := d.db.WithContext(ctx).Where("username = ?", username).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("user", username)
		}
		return ports.User{}, err
	}

	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return ports.User{}, fmt.Errorf("user %s: %w", dto.Username, err)
	}

	user := ports.User{
		ID:        dto.ID,
		Username:  dto.Username,
		FullName:  dto.FullName,
		Role:      role,
		AddressID: dto.AddressID,
	}
	if dto.RestaurantID != nil {
		user.RestaurantID = *dto.RestaurantID
	}
	return user, nil
}
