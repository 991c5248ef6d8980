// Package menurepo persists menu items and implements the inventory ledger.
package menurepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row. The check constraint keeps stock from
// going negative even for writes that bypass the ledger.
type MenuItemDTO struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	RestaurantID uint64          `gorm:"not null;index"`
	Name         string          `gorm:"size:200;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Inventory    int             `gorm:"not null;check:inventory >= 0"`
	Available    bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func FromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID(),
		RestaurantID: item.RestaurantID(),
		Name:         item.Name(),
		Price:        item.Price().Amount(),
		Inventory:    item.Inventory(),
		Available:    item.Available(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenuItem(dto.ID, dto.RestaurantID, dto.Name, price, dto.Inventory, dto.Available)
}
