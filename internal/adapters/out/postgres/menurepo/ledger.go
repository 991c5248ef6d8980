package menurepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryLedger implements ports.InventoryLedger.
//
// Stock changes are single UPDATE statements guarded by the remaining
// inventory, so concurrent reservations of the same item are serialized by the
// row lock the store takes and can never drive stock below zero.
type GormInventoryLedger struct {
	db *gorm.DB
}

func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

func (l *GormInventoryLedger) Get(ctx context.Context, restaurantID, itemID uint64) (*menu.MenuItem, error) {
	var dto MenuItemDTO
	err := l.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", itemID, restaurantID).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", itemID)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (l *GormInventoryLedger) Reserve(ctx context.Context, itemID uint64, quantity int) error {
	if err := menu.ValidateQuantity(quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ? AND inventory >= ?", itemID, quantity).
		UpdateColumn("inventory", gorm.Expr("inventory - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var dto MenuItemDTO
	if err := l.db.WithContext(ctx).Select("id", "inventory").First(&dto, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("menu item", itemID)
		}
		return err
	}
	return errs.NewInsufficientStockError(itemID, quantity, dto.Inventory)
}

func (l *GormInventoryLedger) Release(ctx context.Context, itemID uint64, quantity int) error {
	if err := menu.ValidateQuantity(quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", itemID).
		UpdateColumn("inventory", gorm.Expr("inventory + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", itemID)
	}
	return nil
}

func (l *GormInventoryLedger) SetInventory(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", item.ID()).
		UpdateColumns(map[string]any{
			"inventory": item.Inventory(),
			"available": item.Available(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID())
	}
	return nil
}
