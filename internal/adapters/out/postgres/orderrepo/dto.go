// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Orders and their line items live in two tables joined by order id; the order
// number is unique across all orders.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	Number         string          `gorm:"size:8;not null;uniqueIndex"`
	Customer       string          `gorm:"size:150;not null;index"`
	RestaurantID   uint64          `gorm:"not null;index"`
	AddressID      uint64          `gorm:"not null"`
	Status         int             `gorm:"not null;index"`
	TotalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryPerson *string         `gorm:"size:150;index"`
	LineItems      []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO stores one line of an order together with the item name and unit
// price the customer saw when submitting.
type LineItemDTO struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `gorm:"not null;index"`
	OrderNumber string          `gorm:"size:8;not null"`
	MenuItemID  uint64          `gorm:"not null"`
	Name        string          `gorm:"size:200;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity    int             `gorm:"not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.LineItems()
	lines := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineItemDTO{
			OrderID:     aggregate.ID(),
			OrderNumber: item.OrderNumber().String(),
			MenuItemID:  item.MenuItemID(),
			Name:        item.Name(),
			UnitPrice:   item.UnitPrice().Amount(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID(),
		Number:         aggregate.Number().String(),
		Customer:       aggregate.Customer(),
		RestaurantID:   aggregate.RestaurantID(),
		AddressID:      aggregate.AddressID(),
		Status:         int(aggregate.Status()),
		TotalPrice:     aggregate.TotalPrice(),
		DeliveryPerson: aggregate.DeliveryPerson(),
		LineItems:      lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, line := range dto.LineItems {
		price, priceErr := kernel.NewPrice(line.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(line.MenuItemID, line.Name, price, line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		dto.Customer,
		dto.RestaurantID,
		dto.AddressID,
		items,
		order.Status(dto.Status),
		dto.DeliveryPerson,
	)
}
